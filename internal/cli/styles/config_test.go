package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessible-ui/tabs/internal/cli/styles"
	"github.com/accessible-ui/tabs/internal/infrastructure/config"
)

func TestConfigRenderer_RenderConfig(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())
	cfg := config.DefaultConfig()
	cfg.Tabs.Disabled = []int{1, 2}

	out := r.RenderConfig("/tmp/tabs/config.toml", cfg)

	require.Contains(t, out, "config.toml")
	assert.Contains(t, out, "tabs.manual_activation")
	assert.Contains(t, out, "Overview, Details, Settings")
	assert.Contains(t, out, "1, 2")
}

func TestConfigRenderer_RenderError(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderError(errors.New("boom"))

	assert.Contains(t, out, "Config error: boom")
}

func TestConfigRenderer_RenderSchemaWritten(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())
	assert.Contains(t, r.RenderSchemaWritten("/tmp/config.schema.json"), "config.schema.json")
}
