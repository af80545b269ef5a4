package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion pins the .env layout this binary understands.
const ExpectedEnvSchemaVersion = "1.0"

// Placeholder secrets from .env.example that must not reach a real
// environment.
const (
	examplePassword = "change_this_secure_password"
	exampleAPIKey   = "generate_with_openssl_rand_hex_32"
)

// requiredEnvVars must all be present before startup: the backend Postgres
// coordinates plus the service API key.
var requiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

// ValidateEnv rejects startup when the environment schema version does not
// match or any required variable is unset.
func ValidateEnv() error {
	switch v := os.Getenv("ENV_SCHEMA_VERSION"); {
	case v == "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set, expected %s", ExpectedEnvSchemaVersion)
	case v != ExpectedEnvSchemaVersion:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s", ExpectedEnvSchemaVersion, v)
	}

	var missing []string
	for _, name := range requiredEnvVars {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and additionally flags example
// placeholder secrets carried into a live configuration.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if os.Getenv("DB_PASSWORD") == examplePassword {
		warnings = append(warnings, "DB_PASSWORD still holds the example value, set a real password")
	}
	if os.Getenv("API_KEY") == exampleAPIKey {
		warnings = append(warnings, "API_KEY still holds the example value, generate one with: openssl rand -hex 32")
	}
	return warnings, nil
}