package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessible-ui/tabs/internal/domain/build"
	"github.com/accessible-ui/tabs/internal/infrastructure/config"
)

// execute runs the root command against an isolated XDG layout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))

	configDir = ""
	schemaWrite = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	SetBuildInfo(build.Info{Version: "v0.3.0", Commit: "deadbeef", BuildDate: "2026-10-01", GoVersion: "go1.25.3"})
	t.Cleanup(func() { SetBuildInfo(build.Info{}) })

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tabs v0.3.0 (commit deadbeef")
	assert.Nil(t, GetApp(), "version must not initialize the app")
}

func TestConfigPathCommand_CreatesDefaultConfig(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "config", "path", "--config-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "config.toml"))
	assert.FileExists(t, filepath.Join(dir, "config.toml"))
}

func TestConfigShowCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[tabs]
name = "settings"
labels = ["General", "Privacy"]
manual_activation = true
`), 0o644))

	out, err := execute(t, "config", "show", "--config-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "tabs.name")
	assert.Contains(t, out, "settings")
	assert.Contains(t, out, "General, Privacy")
	assert.Nil(t, GetApp(), "app must be closed after the command")
}

func TestConfigShowCommand_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[tabs]
labels = ["Only"]
default_active = 3
`), 0o644))

	_, err := execute(t, "config", "show", "--config-dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialize app")
	assert.Contains(t, err.Error(), "default_active")
}

func TestConfigSchemaCommand(t *testing.T) {
	out, err := execute(t, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "Tabs Configuration")
}

func TestConfigSchemaCommand_Write(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "config", "schema", "--write", "--config-dir", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "config.schema.json"))
}

func TestDemoConfig(t *testing.T) {
	base := config.DefaultConfig()

	tests := []struct {
		name    string
		flags   demoFlags
		check   func(t *testing.T, cfg *config.Config)
		wantErr string
	}{
		{
			name:  "no overrides",
			flags: demoFlags{active: -1},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, base.Tabs, cfg.Tabs)
			},
		},
		{
			name:  "manual and active",
			flags: demoFlags{manual: true, active: 2},
			check: func(t *testing.T, cfg *config.Config) {
				assert.True(t, cfg.Tabs.ManualActivation)
				assert.Equal(t, 2, cfg.Tabs.DefaultActive)
			},
		},
		{
			name:  "labels and disabled",
			flags: demoFlags{active: -1, labels: []string{"a", "b"}, disabled: []int{1}},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, []string{"a", "b"}, cfg.Tabs.Labels)
				assert.Equal(t, []int{1}, cfg.Tabs.Disabled)
			},
		},
		{
			name:  "no remember",
			flags: demoFlags{active: -1, noRemember: true},
			check: func(t *testing.T, cfg *config.Config) {
				assert.False(t, cfg.Tabs.RememberActive)
			},
		},
		{
			name:    "active out of range",
			flags:   demoFlags{active: 7},
			wantErr: "default_active",
		},
		{
			name:    "negative disabled index",
			flags:   demoFlags{active: -1, disabled: []int{-2}},
			wantErr: "disabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := demoConfig(base, tt.flags)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}

	assert.Equal(t, config.DefaultConfig().Tabs, base.Tabs, "base config must not be mutated")
}
