// Package config loads and validates application configuration from
// environment variables (prefix REV) layered over an optional YAML file.
// Environment values take precedence over file values, which take precedence
// over struct defaults.
package config
