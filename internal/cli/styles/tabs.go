package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// TabItem is one trigger as rendered in the tab bar.
type TabItem struct {
	Label    string
	Active   bool
	Focused  bool
	Disabled bool
}

// TabStyle returns the style for item.
func (t *Theme) TabStyle(item TabItem) lipgloss.Style {
	style := t.InactiveTab
	switch {
	case item.Active:
		style = t.ActiveTab
	case item.Disabled:
		style = t.DisabledTab
	}
	if item.Focused {
		style = style.Inherit(t.FocusRing)
	}
	return style
}

// RenderTabBar renders a horizontal tab bar of the given width.
// A width of zero or less renders without padding to a width.
func (t *Theme) RenderTabBar(items []TabItem, width int) string {
	tabs := make([]string, 0, len(items))
	for _, item := range items {
		tabs = append(tabs, t.TabStyle(item).Render(item.Label))
	}

	gap := lipgloss.NewStyle().
		Foreground(t.Border).
		Render(" │ ")

	row := lipgloss.JoinHorizontal(lipgloss.Top, join(tabs, gap)...)
	if width <= 0 {
		return t.TabBar.Render(row)
	}
	return t.TabBar.Width(width).Render(row)
}

// join inserts a separator between items.
func join(items []string, sep string) []string {
	if len(items) == 0 {
		return items
	}
	result := make([]string, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			result = append(result, sep)
		}
		result = append(result, item)
	}
	return result
}
