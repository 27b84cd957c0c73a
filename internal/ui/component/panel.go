package component

import (
	"context"

	"github.com/accessible-ui/tabs/internal/domain/entity"
	"github.com/accessible-ui/tabs/internal/logging"
	"github.com/accessible-ui/tabs/internal/ui/focus"
)

// PanelProps configures a tab panel.
type PanelProps struct {
	Index entity.TabIndex
	// Content receives focus when a manual activation selects this panel.
	Content entity.FocusTarget
}

// PanelAttrs are the accessibility attributes a host renders on a panel.
type PanelAttrs struct {
	ID       string
	Hidden   bool
	TabIndex int
}

// Panel is a mounted tab panel.
type Panel struct {
	ctx     context.Context
	tabs    *Tabs
	props   PanelProps
	sync    *focus.PanelSync
	unwatch func()
	closed  bool
}

// NewPanel mounts a panel. Mounting an already active panel does not pull focus.
func NewPanel(tabs *Tabs, props PanelProps) *Panel {
	p := &Panel{
		ctx:   logging.WithTabIndex(tabs.Context(), int(props.Index)),
		tabs:  tabs,
		props: props,
		sync:  focus.NewPanelSync(tabs.IsActive(props.Index)),
	}
	p.watch()
	return p
}

func (p *Panel) watch() {
	p.unwatch = p.tabs.Watch(p.props.Index, func(TabView) {
		p.Evaluate()
	})
}

// Evaluate re-reads the active state and pulls focus onto the content on an
// inactive to active transition under manual activation.
func (p *Panel) Evaluate() bool {
	if p.closed {
		return false
	}
	if !p.sync.Evaluate(p.Active(), p.tabs.ManualActivation()) {
		return false
	}

	log := logging.FromContext(p.ctx)
	if p.props.Content == nil {
		log.Debug().Msg("panel activated without focusable content")
		return false
	}
	log.Debug().Msg("pulling focus onto panel content")
	p.props.Content.Focus(entity.FocusOptions{
		IncludeRoot:   true,
		PreventScroll: p.tabs.PreventScroll(),
	})
	return true
}

// Update applies new props. A changed index moves the watch and is evaluated
// like any other state change.
func (p *Panel) Update(props PanelProps) {
	if p.closed {
		return
	}
	moved := props.Index != p.props.Index
	p.props = props
	if !moved {
		return
	}

	p.unwatch()
	p.ctx = logging.WithTabIndex(p.tabs.Context(), int(props.Index))
	p.watch()
	p.Evaluate()
}

// Close unmounts the panel. Calling it twice is harmless.
func (p *Panel) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.unwatch()
}

// Index returns the panel's index.
func (p *Panel) Index() entity.TabIndex {
	return p.props.Index
}

// Active returns true if the panel's tab is active.
func (p *Panel) Active() bool {
	return p.tabs.IsActive(p.props.Index)
}

// Hidden returns true while the panel's tab is inactive.
func (p *Panel) Hidden() bool {
	return !p.Active()
}

// ID returns the id registered by the panel's trigger, empty while it is unmounted.
func (p *Panel) ID() string {
	return p.tabs.ID(p.props.Index)
}

// Attrs returns the panel's accessibility attributes.
func (p *Panel) Attrs() PanelAttrs {
	tabIndex := -1
	if p.Active() {
		tabIndex = 0
	}
	return PanelAttrs{
		ID:       p.ID(),
		Hidden:   p.Hidden(),
		TabIndex: tabIndex,
	}
}
