// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/accessible-ui/tabs/internal/application/usecase"
	"github.com/accessible-ui/tabs/internal/cli/styles"
	"github.com/accessible-ui/tabs/internal/domain/entity"
	"github.com/accessible-ui/tabs/internal/domain/tree"
	"github.com/accessible-ui/tabs/internal/infrastructure/config"
	"github.com/accessible-ui/tabs/internal/logging"
	"github.com/accessible-ui/tabs/internal/ui/component"
	"github.com/accessible-ui/tabs/internal/ui/input"
)

// TabsOptions configures the tabs demo.
type TabsOptions struct {
	Config *config.Config
	Theme  *styles.Theme
	// TabState restores and remembers the active tab. Nil disables persistence.
	TabState *usecase.TabStateUseCase
	// Controlled makes the model own the active index and feed it back.
	Controlled bool
}

// configChangedMsg is sent when the config file was reloaded.
type configChangedMsg struct {
	cfg *config.Config
}

// ConfigChanged wraps a reloaded config for delivery through tea.Program.Send.
func ConfigChanged(cfg *config.Config) tea.Msg {
	return configChangedMsg{cfg: cfg}
}

// triggerTarget moves terminal focus onto a tab trigger.
type triggerTarget struct {
	m     *TabsModel
	index entity.TabIndex
}

func (t *triggerTarget) Focus(entity.FocusOptions) {
	t.m.focusTrigger(t.index)
}

// panelTarget moves terminal focus into a panel.
type panelTarget struct {
	m     *TabsModel
	index entity.TabIndex
}

func (p *panelTarget) Focus(entity.FocusOptions) {
	p.m.panelFocused = true
	logging.FromContext(p.m.ctx).Debug().Int("panel", int(p.index)).Msg("panel took focus")
}

// TabsModel is the Bubble Tea model for the interactive tabs demo.
type TabsModel struct {
	// UI components
	help       help.Model
	keys       input.KeyMap
	toggle     key.Binding
	dispatcher *input.Dispatcher

	// Tab set
	tabs     *component.Tabs
	triggers []*component.Tab
	panels   []*component.Panel
	labels   []string
	disabled map[string]bool

	// State
	focused       entity.TabIndex
	panelFocused  bool
	width         int
	statusMessage string
	err           error

	// Dependencies
	ctx      context.Context
	cfg      *config.Config
	tabState *usecase.TabStateUseCase
	theme    *styles.Theme
}

// NewTabsModel creates the demo model and mounts its tab set.
func NewTabsModel(ctx context.Context, opts TabsOptions) (*TabsModel, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme()
	}
	ctx = logging.WithTabSet(ctx, cfg.Tabs.Name)

	keys := input.NewKeyMap(cfg.Keybindings)
	m := &TabsModel{
		help:       help.New(),
		keys:       keys,
		toggle:     key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "trigger/panel")),
		dispatcher: input.NewDispatcher(keys),
		labels:     slices.Clone(cfg.Tabs.Labels),
		disabled:   make(map[string]bool),
		ctx:        ctx,
		cfg:        cfg,
		tabState:   opts.TabState,
		theme:      theme,
	}
	for _, idx := range cfg.Tabs.Disabled {
		if idx >= 0 && idx < len(m.labels) {
			m.disabled[m.labels[idx]] = true
		}
	}

	active := entity.TabIndex(cfg.Tabs.DefaultActive)
	if cfg.Tabs.RememberActive && m.tabState != nil {
		active = m.tabState.Restore(ctx, cfg.Tabs.Name, active)
	}
	if int(active) >= len(m.labels) || m.disabled[m.labelAt(active)] {
		active = entity.TabIndex(cfg.Tabs.DefaultActive)
	}

	tabOpts := component.Options{
		ManualActivation: cfg.Tabs.ManualActivation,
		PreventScroll:    cfg.Tabs.PreventScroll,
		OnChange:         m.onChange,
	}
	start := int(active)
	if opts.Controlled {
		tabOpts.Active = &start
		tabOpts.OnRequest = m.onRequest
	} else {
		tabOpts.DefaultActive = &start
	}

	tabs, err := component.NewTabs(ctx, tabOpts)
	if err != nil {
		return nil, fmt.Errorf("create tab set: %w", err)
	}
	m.tabs = tabs
	m.focused = active
	m.mount()

	return m, nil
}

func (m *TabsModel) labelAt(index entity.TabIndex) string {
	if index < 0 || int(index) >= len(m.labels) {
		return ""
	}
	return m.labels[index]
}

// mount builds the presentation tree, indexes it and mounts triggers and panels.
func (m *TabsModel) mount() {
	list := make([]*entity.Node, 0, len(m.labels))
	panels := make([]*entity.Node, 0, len(m.labels))
	for _, label := range m.labels {
		list = append(list, entity.TabNode(label, entity.TextNode(label)))
		panels = append(panels, entity.PanelNode(label, entity.TextNode(label)))
	}
	nodes := m.tabs.Mount(append([]*entity.Node{entity.TabListNode("tablist", list...)}, panels...))

	for _, n := range tree.Collect(nodes, entity.RoleTab) {
		index := n.Index
		m.triggers = append(m.triggers, component.NewTab(m.tabs, m.dispatcher, component.TabProps{
			Index:    n.Index,
			Disabled: m.disabled[n.Key],
			Handle:   &triggerTarget{m: m, index: n.Index},
			OnDelete: func(ctx context.Context, ev input.KeyEvent) {
				m.deleteTab(ctx, index, ev)
			},
		}))
	}
	for _, n := range tree.Collect(nodes, entity.RolePanel) {
		m.panels = append(m.panels, component.NewPanel(m.tabs, component.PanelProps{
			Index:   n.Index,
			Content: &panelTarget{m: m, index: n.Index},
		}))
	}
}

// unmount releases every trigger and panel.
func (m *TabsModel) unmount() {
	for _, t := range m.triggers {
		t.Close()
	}
	for _, p := range m.panels {
		p.Close()
	}
	m.triggers = nil
	m.panels = nil
}

func (m *TabsModel) focusTrigger(index entity.TabIndex) {
	m.focused = index
	m.panelFocused = false
	if trigger := m.trigger(index); trigger != nil {
		trigger.Focused()
	}
}

func (m *TabsModel) trigger(index entity.TabIndex) *component.Tab {
	for _, t := range m.triggers {
		if t.Index() == index {
			return t
		}
	}
	return nil
}

func (m *TabsModel) onChange(ev entity.ChangeEvent) {
	log := logging.FromContext(m.ctx)
	log.Info().Int("from", int(ev.Previous)).Int("to", int(ev.Next)).Msg("active tab changed")

	if m.tabState == nil || !m.cfg.Tabs.RememberActive {
		return
	}
	if err := m.tabState.Remember(m.ctx, m.cfg.Tabs.Name, ev); err != nil {
		log.Warn().Err(err).Msg("failed to remember active tab")
		m.statusMessage = fmt.Sprintf("Error: %v", err)
	}
}

// onRequest accepts every request while the model owns the active index.
func (m *TabsModel) onRequest(index entity.TabIndex) {
	if err := m.tabs.SetActive(index); err != nil {
		m.err = err
	}
}

// deleteTab removes the tab at index and remounts the remaining ones.
// The active tab keeps its label when it survives the deletion.
func (m *TabsModel) deleteTab(ctx context.Context, index entity.TabIndex, ev input.KeyEvent) {
	log := logging.FromContext(ctx)

	label := m.labelAt(index)
	if label == "" {
		return
	}
	log.Info().Str("label", label).Str("key", ev.Key).Msg("deleting tab")

	active := m.tabs.Active()
	m.unmount()
	m.labels = slices.Delete(m.labels, int(index), int(index)+1)
	m.mount()
	m.statusMessage = fmt.Sprintf("%s Deleted %s", styles.IconTrash, label)

	if len(m.labels) == 0 {
		m.focused = entity.NoTab
		m.panelFocused = false
		m.tabs.Clear()
		return
	}

	last := entity.TabIndex(m.tabs.Registry().Len() - 1)
	switch {
	case active > index:
		m.tabs.Activate(active - 1)
	case active == index:
		m.tabs.Activate(min(index, last))
	}
	m.focused = min(index, last)
}

// Init implements tea.Model.
func (m *TabsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *TabsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case configChangedMsg:
		m.applyConfig(msg.cfg)
		return m, nil
	}

	return m, nil
}

func (m *TabsModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMessage = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.unmount()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.toggle):
		if m.panelFocused {
			m.focusTrigger(m.focused)
		} else if m.tabs.IsActive(m.focused) {
			m.panelFocused = true
		}
		return m, nil
	}

	if m.panelFocused || m.focused == entity.NoTab {
		return m, nil
	}

	if key.Matches(msg, m.keys.Activate) {
		if trigger := m.trigger(m.focused); trigger != nil && !trigger.Click() {
			m.statusMessage = fmt.Sprintf("%s Tab %d is disabled", styles.IconInfo, m.focused)
		}
		return m, nil
	}

	m.dispatcher.Dispatch(m.ctx, m.focused, msg)
	return m, nil
}

// applyConfig picks up keybinding changes from a reloaded config.
func (m *TabsModel) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	logging.FromContext(m.ctx).Info().Msg("config reloaded, applying keybindings")
	m.cfg.Keybindings = cfg.Keybindings
	m.keys = input.NewKeyMap(cfg.Keybindings)
	m.dispatcher.SetKeyMap(m.keys)
	m.statusMessage = fmt.Sprintf("%s Keybindings reloaded", styles.IconConfig)
}

// Active returns the resolved active index.
func (m *TabsModel) Active() entity.TabIndex {
	return m.tabs.Active()
}

// Focused returns the trigger holding terminal focus.
func (m *TabsModel) Focused() entity.TabIndex {
	return m.focused
}

// PanelFocused reports whether focus is inside the active panel.
func (m *TabsModel) PanelFocused() bool {
	return m.panelFocused
}

// Labels returns the mounted tab labels.
func (m *TabsModel) Labels() []string {
	return slices.Clone(m.labels)
}

// View implements tea.Model.
func (m *TabsModel) View() string {
	if m.err != nil {
		return m.theme.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if len(m.triggers) == 0 {
		b.WriteString(m.theme.Subtle.Render("  No tabs left."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTabBar())
		b.WriteString("\n")
		b.WriteString(m.renderPanel())
		b.WriteString("\n")
	}

	if m.statusMessage != "" {
		b.WriteString(m.theme.Subtle.Render(m.statusMessage))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m *TabsModel) renderHeader() string {
	mode := "automatic"
	if m.tabs.ManualActivation() {
		mode = "manual"
	}
	if m.tabs.Controlled() {
		mode += ", controlled"
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.theme.Title.Render(m.cfg.Tabs.Name),
		" ",
		m.theme.Subtle.Render("("+mode+" activation)"),
	)
}

func (m *TabsModel) renderTabBar() string {
	items := make([]styles.TabItem, 0, len(m.triggers))
	for _, t := range m.triggers {
		items = append(items, styles.TabItem{
			Label:    m.labelAt(t.Index()),
			Active:   t.Active(),
			Focused:  !m.panelFocused && t.Index() == m.focused,
			Disabled: t.Disabled(),
		})
	}
	return m.theme.RenderTabBar(items, m.width)
}

func (m *TabsModel) renderPanel() string {
	for _, p := range m.panels {
		if p.Hidden() {
			continue
		}
		attrs := p.Attrs()
		body := fmt.Sprintf("%s\n\n%s",
			m.theme.Highlight.Render(m.labelAt(p.Index())),
			m.theme.Subtle.Render(fmt.Sprintf("panel %d  id=%s  tabindex=%d", p.Index(), attrs.ID, attrs.TabIndex)),
		)
		style := m.theme.Panel
		if m.panelFocused {
			style = m.theme.PanelFocused
		}
		return style.Render(body)
	}
	return m.theme.Subtle.Render("  No active tab.")
}
