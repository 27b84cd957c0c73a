// Package config loads, validates and watches the tabs configuration.
package config

// Config represents the complete configuration.
type Config struct {
	// Tabs controls the tab set behaviour.
	Tabs TabsConfig `mapstructure:"tabs" yaml:"tabs" toml:"tabs" json:"tabs"`
	// Keybindings maps key names to tab commands.
	Keybindings KeybindingsConfig `mapstructure:"keybindings" yaml:"keybindings" toml:"keybindings" json:"keybindings"`
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	// Database controls persistence of the last active tab.
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
}

// TabsConfig holds tab set preferences.
type TabsConfig struct {
	// Name identifies the tab set when remembering the active tab.
	Name string `mapstructure:"name" yaml:"name" toml:"name" json:"name"`
	// DefaultActive is the initially active tab of an uncontrolled tab set.
	DefaultActive int `mapstructure:"default_active" yaml:"default_active" toml:"default_active" json:"default_active" jsonschema:"minimum=0"`
	// ManualActivation requires an explicit activation instead of following focus.
	ManualActivation bool `mapstructure:"manual_activation" yaml:"manual_activation" toml:"manual_activation" json:"manual_activation"`
	// PreventScroll suppresses viewport scrolling on focus transfers.
	PreventScroll bool `mapstructure:"prevent_scroll" yaml:"prevent_scroll" toml:"prevent_scroll" json:"prevent_scroll"`
	// Labels are the tab titles shown by the demo.
	Labels []string `mapstructure:"labels" yaml:"labels" toml:"labels" json:"labels"`
	// Disabled lists tab indices that cannot be activated.
	Disabled []int `mapstructure:"disabled" yaml:"disabled" toml:"disabled" json:"disabled"`
	// RememberActive restores the last active tab on start.
	RememberActive bool `mapstructure:"remember_active" yaml:"remember_active" toml:"remember_active" json:"remember_active"`
}

// KeybindingsConfig holds the keys bound to each tab command.
type KeybindingsConfig struct {
	Next     []string `mapstructure:"next" yaml:"next" toml:"next" json:"next"`
	Prev     []string `mapstructure:"prev" yaml:"prev" toml:"prev" json:"prev"`
	First    []string `mapstructure:"first" yaml:"first" toml:"first" json:"first"`
	Last     []string `mapstructure:"last" yaml:"last" toml:"last" json:"last"`
	Delete   []string `mapstructure:"delete" yaml:"delete" toml:"delete" json:"delete"`
	Activate []string `mapstructure:"activate" yaml:"activate" toml:"activate" json:"activate"`
	Quit     []string `mapstructure:"quit" yaml:"quit" toml:"quit" json:"quit"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File receives log output while the terminal UI owns the screen.
	File string `mapstructure:"file" yaml:"file" toml:"file" json:"file"`
}

// DatabaseConfig holds database settings.
type DatabaseConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled" toml:"enabled" json:"enabled"`
	Path    string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
}
