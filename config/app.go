package config

import (
	"fmt"

	"github.com/skillsenselab/langflow-gateway/gateway"
	"github.com/skillsenselab/langflow-gateway/langflow"
	"github.com/skillsenselab/langflow-gateway/logger"
	"github.com/skillsenselab/langflow-gateway/observability"
	"github.com/skillsenselab/langflow-gateway/util"
)

// Config is the full gateway configuration.
type Config struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Version     string `yaml:"version" mapstructure:"version"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	Logging   logger.Config        `yaml:"logging" mapstructure:"logging"`
	Server    gateway.Config       `yaml:"server" mapstructure:"server"`
	Langflow  langflow.Config      `yaml:"langflow" mapstructure:"langflow"`
	Telemetry observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// Load reads the gateway configuration from files and environment and
// returns it with defaults applied and validated.
func Load(opts ...LoaderOption) (*Config, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	cfg := &Config{}
	if err := load(cfg, lc); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyDefaults fills unset fields across all sections.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "langflow-gateway"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ServiceName = util.Coalesce(c.Logging.ServiceName, c.Name)
	if c.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Telemetry.ServiceName = util.Coalesce(c.Telemetry.ServiceName, c.Name)
	c.Telemetry.ServiceVersion = util.Coalesce(c.Telemetry.ServiceVersion, c.Version)
	c.Telemetry.Environment = util.Coalesce(c.Telemetry.Environment, c.Environment)

	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Langflow.ApplyDefaults()
	c.Telemetry.ApplyDefaults()
}

// Validate checks every section, returning the first failure.
func (c *Config) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	ok := false
	for _, v := range validEnvs {
		if c.Environment == v {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("environment must be one of [development, staging, production] (got: %s)", c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Langflow.Validate(); err != nil {
		return fmt.Errorf("langflow: %w", err)
	}
	if err := c.Telemetry.Validate(); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	return nil
}
