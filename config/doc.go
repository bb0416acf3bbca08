// Package config loads gateway configuration from YAML files, .env files
// and environment variables, in that order of increasing precedence.
//
// The loader searches a few conventional locations (cmd/gateway/config.yml,
// ./config.yml) so the binary works from the repo root as well as from the
// command directory. Environment variables override file values, with
// UNDERSCORE_KEYS mapped onto the nested config structure, so
// LANGFLOW_BASE_URL sets langflow.base_url.
package config
