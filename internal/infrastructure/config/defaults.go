package config

// Default configuration constants
const (
	defaultTabSetName = "default"
	defaultLogLevel   = "info"
	defaultLogFormat  = "console"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Tabs: TabsConfig{
			Name:             defaultTabSetName,
			DefaultActive:    0,
			ManualActivation: false,
			PreventScroll:    false,
			Labels:           []string{"Overview", "Details", "Settings"},
			Disabled:         []int{},
			RememberActive:   true,
		},
		Keybindings: DefaultKeybindings(),
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Database: DatabaseConfig{
			Enabled: true,
		},
	}
}

// DefaultKeybindings returns the default key assignments.
func DefaultKeybindings() KeybindingsConfig {
	return KeybindingsConfig{
		Next:     []string{"right", "l"},
		Prev:     []string{"left", "h"},
		First:    []string{"home", "g"},
		Last:     []string{"end", "G"},
		Delete:   []string{"delete", "x"},
		Activate: []string{"enter", " "},
		Quit:     []string{"q", "esc", "ctrl+c"},
	}
}
