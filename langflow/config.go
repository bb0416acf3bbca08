package langflow

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL    = "http://localhost:7860"
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3

	// Connection pool bounds for one client session.
	maxConnsPerHost     = 10
	maxIdleConnsPerHost = 5
)

// Config configures the Langflow client.
type Config struct {
	// BaseURL is the root URL of the Langflow instance.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout bounds each individual request attempt, not the whole
	// retry sequence. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// MaxRetries is the number of retries after the initial attempt.
	// Defaults to 3, so at most 4 attempts per request.
	MaxRetries int `yaml:"max_retries" mapstructure:"max_retries"`

	// APIKey, when set, is sent as the x-api-key header on every request.
	// Empty for local unauthenticated instances.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
}

// ApplyDefaults fills in zero-value fields with the documented defaults.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = defaultMaxRetries
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("langflow: base_url must be a valid absolute URL (got: %q)", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("langflow: timeout must be positive")
	}
	return nil
}
