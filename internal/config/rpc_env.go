package config

import (
	"regexp"
)

// envVarPattern matches a value that is exactly one ${VAR_NAME} or $VAR_NAME reference
var envVarPattern = regexp.MustCompile(`^\$(?:\{([A-Za-z_][A-Za-z0-9_]*)\}|([A-Za-z_][A-Za-z0-9_]*))$`)

// DetectEnvVar checks if a raw TOML value is a single env var reference.
// Returns the variable name and true if it is.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if matches == nil {
		return "", false
	}
	if matches[1] != "" {
		return matches[1], true
	}
	return matches[2], true
}
