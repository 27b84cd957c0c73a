package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateTabs(config)...)
	validationErrors = append(validationErrors, validateKeybindings(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

// Validate reports every invalid value in config.
func Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("config is nil")
	}
	return validateConfig(config)
}

func validateTabs(config *Config) []string {
	var validationErrors []string
	if config.Tabs.DefaultActive < 0 {
		validationErrors = append(validationErrors, "tabs.default_active must be non-negative")
	}
	if n := len(config.Tabs.Labels); n > 0 && config.Tabs.DefaultActive >= n {
		validationErrors = append(validationErrors,
			fmt.Sprintf("tabs.default_active (%d) must be less than the number of labels (%d)", config.Tabs.DefaultActive, n))
	}
	for _, idx := range config.Tabs.Disabled {
		if idx < 0 {
			validationErrors = append(validationErrors, fmt.Sprintf("tabs.disabled contains negative index %d", idx))
		}
	}
	return validationErrors
}

func validateKeybindings(config *Config) []string {
	var validationErrors []string
	owners := make(map[string]string)
	check := func(action string, keys []string) {
		for _, k := range keys {
			if k == "" {
				validationErrors = append(validationErrors, fmt.Sprintf("keybindings.%s contains an empty key", action))
				continue
			}
			if prev, ok := owners[k]; ok && prev != action {
				validationErrors = append(validationErrors,
					fmt.Sprintf("key %q is bound to both keybindings.%s and keybindings.%s", k, prev, action))
				continue
			}
			owners[k] = action
		}
	}
	kb := config.Keybindings
	check("next", kb.Next)
	check("prev", kb.Prev)
	check("first", kb.First)
	check("last", kb.Last)
	check("delete", kb.Delete)
	check("activate", kb.Activate)
	check("quit", kb.Quit)
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := zerolog.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}
