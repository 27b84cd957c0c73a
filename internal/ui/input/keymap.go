// Package input decodes terminal key presses into tab commands and routes
// them to the handler set of the focused trigger.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/accessible-ui/tabs/internal/domain/entity"
	"github.com/accessible-ui/tabs/internal/infrastructure/config"
)

// KeyMap defines keybindings for a tab list.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	First    key.Binding
	Last     key.Binding
	Delete   key.Binding
	Activate key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to show in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Activate, k.Delete, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.Activate, k.Delete},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the arrow-key bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultKeybindings())
}

// NewKeyMap builds a keymap from configured key names.
func NewKeyMap(cfg config.KeybindingsConfig) KeyMap {
	return KeyMap{
		Next:     binding(cfg.Next, "next tab"),
		Prev:     binding(cfg.Prev, "prev tab"),
		First:    binding(cfg.First, "first tab"),
		Last:     binding(cfg.Last, "last tab"),
		Delete:   binding(cfg.Delete, "delete"),
		Activate: binding(cfg.Activate, "activate"),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: binding(cfg.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

var keySymbols = map[string]string{
	"right":  "→",
	"left":   "←",
	"up":     "↑",
	"down":   "↓",
	" ":      "space",
	"delete": "del",
}

func helpKeys(keys []string) string {
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		if sym, ok := keySymbols[k]; ok {
			k = sym
		}
		labels = append(labels, k)
	}
	return strings.Join(labels, "/")
}

// Command decodes msg into a tab command.
func (k KeyMap) Command(msg tea.KeyMsg) entity.Command {
	switch {
	case key.Matches(msg, k.Next):
		return entity.CommandNext
	case key.Matches(msg, k.Prev):
		return entity.CommandPrev
	case key.Matches(msg, k.First):
		return entity.CommandFirst
	case key.Matches(msg, k.Last):
		return entity.CommandLast
	case key.Matches(msg, k.Delete):
		return entity.CommandDelete
	default:
		return entity.CommandNone
	}
}
