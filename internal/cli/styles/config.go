package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/accessible-ui/tabs/internal/infrastructure/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfig renders the effective configuration and where it came from.
func (r *ConfigRenderer) RenderConfig(path string, cfg *config.Config) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Highlight
	valueStyle := lipgloss.NewStyle().Foreground(r.theme.Text)

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  %s Config %s\n\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))

	row := func(key, value string) {
		fmt.Fprintf(&sb, "    %s %s %s\n", iconStyle.Render(IconCursor), keyStyle.Render(key), valueStyle.Render(value))
	}
	row("tabs.name", cfg.Tabs.Name)
	row("tabs.labels", strings.Join(cfg.Tabs.Labels, ", "))
	row("tabs.default_active", strconv.Itoa(cfg.Tabs.DefaultActive))
	row("tabs.disabled", formatInts(cfg.Tabs.Disabled))
	row("tabs.manual_activation", strconv.FormatBool(cfg.Tabs.ManualActivation))
	row("tabs.prevent_scroll", strconv.FormatBool(cfg.Tabs.PreventScroll))
	row("tabs.remember_active", strconv.FormatBool(cfg.Tabs.RememberActive))
	row("keybindings.next", strings.Join(cfg.Keybindings.Next, " "))
	row("keybindings.prev", strings.Join(cfg.Keybindings.Prev, " "))
	row("keybindings.first", strings.Join(cfg.Keybindings.First, " "))
	row("keybindings.last", strings.Join(cfg.Keybindings.Last, " "))
	row("keybindings.delete", strings.Join(cfg.Keybindings.Delete, " "))
	row("logging.level", cfg.Logging.Level)
	row("database.path", cfg.Database.Path)

	return sb.String()
}

// RenderSchemaWritten renders the success message after writing the schema file.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Generated JSON schema %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

func formatInts(values []int) string {
	if len(values) == 0 {
		return "none"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
