package types

import (
	"strconv"
	"strings"
)

var secretPatterns = []string{
	"password", "passwd", "pass", "pwd",
	"secret", "token", "credential",
	"api_key", "apikey", "private_key",
}

// ClassifyEnvVar guesses what kind of value an env-file entry carries and
// whether it should be masked when printed.
func ClassifyEnvVar(name, value string) (EnvType, bool) {
	nameLower := strings.ToLower(name)

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		return EnvTypeReference, false
	}

	for _, pattern := range secretPatterns {
		if strings.Contains(nameLower, pattern) {
			return EnvTypeSecret, true
		}
	}

	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") ||
		strings.Contains(nameLower, "url") {
		return EnvTypeURL, false
	}

	if isPortName(nameLower) && isNumeric(value) {
		return EnvTypePort, false
	}

	switch strings.ToLower(value) {
	case "true", "false", "y", "n":
		return EnvTypeBoolean, false
	}

	if strings.HasPrefix(value, "/") || strings.HasPrefix(value, "./") {
		return EnvTypePath, false
	}

	return EnvTypeConfig, false
}

// IsSensitive reports whether the value of name must be masked on output.
func IsSensitive(name string) bool {
	_, sensitive := ClassifyEnvVar(name, "")
	return sensitive
}

// Mask hides all but the first two characters of a secret value.
func Mask(value string) string {
	if len(value) <= 2 {
		return strings.Repeat("*", len(value))
	}
	return value[:2] + strings.Repeat("*", len(value)-2)
}

func isPortName(nameLower string) bool {
	return strings.HasSuffix(nameLower, "_port") ||
		strings.Contains(nameLower, "_port_") ||
		strings.HasSuffix(nameLower, "_web_manager") ||
		strings.HasSuffix(nameLower, "multiprotocolport")
}

func isNumeric(value string) bool {
	_, err := strconv.Atoi(value)
	return err == nil
}
