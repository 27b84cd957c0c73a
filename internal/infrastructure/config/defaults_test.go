package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, validateConfig(cfg))

	assert.Equal(t, "default", cfg.Tabs.Name)
	assert.Equal(t, 0, cfg.Tabs.DefaultActive)
	assert.False(t, cfg.Tabs.ManualActivation)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestDefaultKeybindings_ArrowKeys(t *testing.T) {
	kb := DefaultKeybindings()
	assert.Contains(t, kb.Next, "right")
	assert.Contains(t, kb.Prev, "left")
	assert.Contains(t, kb.First, "home")
	assert.Contains(t, kb.Last, "end")
	assert.Contains(t, kb.Delete, "delete")
}
