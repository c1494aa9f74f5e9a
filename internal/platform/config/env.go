package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseEnvWithPrefix loads configuration from environment variables whose
// names are prefixed with prefix, e.g. "GRATITUDE_WEB_".
func ParseEnvWithPrefix(target any, prefix string) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("parse env %s*: %w", prefix, err)
	}
	return nil
}

// Environment names the deployment environment a process runs in.
type Environment string

const (
	EnvironmentDev        Environment = "dev"
	EnvironmentProduction Environment = "production"
)

// ParseEnvironment normalizes an environment name. Blank and unknown values
// resolve to production; "development" and "local" are aliases for dev.
func ParseEnvironment(raw string) Environment {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "dev", "development", "local":
		return EnvironmentDev
	default:
		return EnvironmentProduction
	}
}

// IsDev reports whether debug conveniences may be enabled.
func (e Environment) IsDev() bool {
	return e == EnvironmentDev
}
