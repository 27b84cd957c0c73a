package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	dir       string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager rooted at dir.
// An empty dir selects the XDG config directory.
func NewManager(dir string) (*Manager, error) {
	if dir == "" {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		dir = configDir
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	// TABS_TABS_MANUAL_ACTIVATION, TABS_DATABASE_PATH, ...
	v.SetEnvPrefix("TABS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "TABS_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TABS_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TABS_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TABS_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		dir:       dir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written when none exists.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.ConfigFile(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config at %s: %w", m.dir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Tabs.Name = strings.TrimSpace(config.Tabs.Name)
	if config.Tabs.Name == "" {
		config.Tabs.Name = defaultTabSetName
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}

	defaults := DefaultKeybindings()
	fillKeys(&config.Keybindings.Next, defaults.Next)
	fillKeys(&config.Keybindings.Prev, defaults.Prev)
	fillKeys(&config.Keybindings.First, defaults.First)
	fillKeys(&config.Keybindings.Last, defaults.Last)
	fillKeys(&config.Keybindings.Delete, defaults.Delete)
	fillKeys(&config.Keybindings.Activate, defaults.Activate)
	fillKeys(&config.Keybindings.Quit, defaults.Quit)
}

func fillKeys(keys *[]string, fallback []string) {
	if len(*keys) == 0 {
		*keys = append([]string(nil), fallback...)
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// ConfigFile returns the path of the configuration file.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.dir, configName)
}

// Dir returns the configuration directory.
func (m *Manager) Dir() string {
	return m.dir
}

// createDefaultConfig writes the defaults as a TOML config file.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return err
	}

	configFile := filepath.Join(m.dir, configName)
	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setTabsDefaults(defaults)
	m.setKeybindingDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.viper.SetDefault("database.enabled", defaults.Database.Enabled)
	// database.path is resolved in Load so the XDG location is never written to disk.
}

func (m *Manager) setTabsDefaults(defaults *Config) {
	m.viper.SetDefault("tabs.name", defaults.Tabs.Name)
	m.viper.SetDefault("tabs.default_active", defaults.Tabs.DefaultActive)
	m.viper.SetDefault("tabs.manual_activation", defaults.Tabs.ManualActivation)
	m.viper.SetDefault("tabs.prevent_scroll", defaults.Tabs.PreventScroll)
	m.viper.SetDefault("tabs.labels", defaults.Tabs.Labels)
	m.viper.SetDefault("tabs.disabled", defaults.Tabs.Disabled)
	m.viper.SetDefault("tabs.remember_active", defaults.Tabs.RememberActive)
}

func (m *Manager) setKeybindingDefaults(defaults *Config) {
	m.viper.SetDefault("keybindings.next", defaults.Keybindings.Next)
	m.viper.SetDefault("keybindings.prev", defaults.Keybindings.Prev)
	m.viper.SetDefault("keybindings.first", defaults.Keybindings.First)
	m.viper.SetDefault("keybindings.last", defaults.Keybindings.Last)
	m.viper.SetDefault("keybindings.delete", defaults.Keybindings.Delete)
	m.viper.SetDefault("keybindings.activate", defaults.Keybindings.Activate)
	m.viper.SetDefault("keybindings.quit", defaults.Keybindings.Quit)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
}
