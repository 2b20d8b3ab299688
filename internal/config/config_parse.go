package config

import (
	"strings"
)

// parseConfig parses the configuration from a string.
// Each line is "key: value"; blank lines and '#' comments are skipped.
// Unknown keys are ignored so older binaries can read newer files.
func parseConfig(content string) (*Config, error) {
	cfg := DefaultConfig()

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		parts := strings.SplitN(trimmed, ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := unquote(strings.TrimSpace(parts[1]))

		switch key {
		case "provider":
			if value != "" {
				cfg.Provider = Provider(strings.ToLower(value))
			}
		case "serial":
			cfg.Serial = value
		case "package":
			if value != "" {
				cfg.Package = value
			}
		case "db":
			cfg.DB = value
		case "theme":
			if value != "" {
				cfg.Theme = Theme(strings.ToLower(value))
			}
		case "default_type":
			if value != "" {
				cfg.DefaultType = value
			}
		}
	}

	return cfg, nil
}

// unquote strips one pair of matching surrounding quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
