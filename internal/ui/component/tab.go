package component

import (
	"context"

	"github.com/accessible-ui/tabs/internal/domain/entity"
	"github.com/accessible-ui/tabs/internal/logging"
	"github.com/accessible-ui/tabs/internal/ui/focus"
	"github.com/accessible-ui/tabs/internal/ui/input"
)

// TabProps configures a tab trigger.
type TabProps struct {
	Index    entity.TabIndex
	ID       string
	Disabled bool
	// Handle receives focus when the trigger is navigated to.
	Handle entity.FocusTarget
	// OnDelete receives the delete command verbatim.
	OnDelete func(ctx context.Context, ev input.KeyEvent)
}

// TabAttrs are the accessibility attributes a host renders on a trigger.
type TabAttrs struct {
	Role         string
	Controls     string
	Selected     bool
	AriaDisabled bool
	TabIndex     int
}

// Tab is a mounted tab trigger.
type Tab struct {
	ctx        context.Context
	tabs       *Tabs
	dispatcher *input.Dispatcher
	rover      *focus.Rover

	props TabProps
	id    string

	release    func()
	unregister func()
	closed     bool
}

// NewTab mounts a trigger: it registers at props.Index and installs its key
// handlers on dispatcher. A nil dispatcher leaves keyboard navigation to the caller.
func NewTab(tabs *Tabs, dispatcher *input.Dispatcher, props TabProps) *Tab {
	t := &Tab{
		ctx:        logging.WithTabIndex(tabs.Context(), int(props.Index)),
		tabs:       tabs,
		dispatcher: dispatcher,
		rover:      focus.NewRover(entity.FocusOptions{PreventScroll: tabs.PreventScroll()}),
		props:      props,
	}
	t.id = t.resolveID(props.ID)
	t.register()
	return t
}

func (t *Tab) resolveID(id string) string {
	if id != "" {
		return id
	}
	// Keep a generated id stable across updates.
	if t.id != "" && t.props.ID == "" {
		return t.id
	}
	return t.tabs.NewID()
}

func (t *Tab) register() {
	t.release = t.tabs.RegisterTab(t.props.Index, entity.TabRecord{
		Handle:   t.props.Handle,
		ID:       t.id,
		Disabled: t.props.Disabled,
	})
	if t.dispatcher != nil {
		t.unregister = t.dispatcher.Register(t.props.Index, t.handlers())
	}
}

func (t *Tab) unmount() {
	if t.release != nil {
		t.release()
		t.release = nil
	}
	if t.unregister != nil {
		t.unregister()
		t.unregister = nil
	}
}

func (t *Tab) handlers() input.Handlers {
	navigate := func(ctx context.Context, ev input.KeyEvent) {
		t.rover.Handle(ctx, t.tabs.Registry(), ev.Command, t.props.Index)
	}
	return input.Handlers{
		entity.CommandNext:  navigate,
		entity.CommandPrev:  navigate,
		entity.CommandFirst: navigate,
		entity.CommandLast:  navigate,
		entity.CommandDelete: func(ctx context.Context, ev input.KeyEvent) {
			if t.props.OnDelete != nil {
				t.props.OnDelete(ctx, ev)
			}
		},
	}
}

// Update applies new props, re-registering when the index, id, disabled
// flag or focus handle changed.
func (t *Tab) Update(props TabProps) {
	if t.closed {
		return
	}

	id := t.resolveID(props.ID)
	changed := props.Index != t.props.Index ||
		id != t.id ||
		props.Disabled != t.props.Disabled ||
		props.Handle != t.props.Handle

	// OnDelete is read at dispatch time and never needs re-registration.
	t.props = props
	if !changed {
		return
	}

	log := logging.FromContext(t.ctx)
	log.Debug().Int("index", int(props.Index)).Str("id", id).Bool("disabled", props.Disabled).Msg("re-registering tab")

	// Register the replacement before releasing the old slot; at an
	// unchanged index the old release is then stale and does nothing.
	release, unregister := t.release, t.unregister
	t.ctx = logging.WithTabIndex(t.tabs.Context(), int(props.Index))
	t.id = id
	t.register()
	release()
	if unregister != nil {
		unregister()
	}
}

// Close unmounts the trigger. Calling it twice is harmless.
func (t *Tab) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.unmount()
}

// Index returns the trigger's index.
func (t *Tab) Index() entity.TabIndex {
	return t.props.Index
}

// ID returns the id shared by the trigger and its panel.
func (t *Tab) ID() string {
	return t.id
}

// Active returns true if this trigger's tab is active.
func (t *Tab) Active() bool {
	return t.tabs.IsActive(t.props.Index)
}

// Disabled returns the trigger's own disabled prop.
func (t *Tab) Disabled() bool {
	return t.props.Disabled
}

// Click activates the tab.
func (t *Tab) Click() bool {
	return t.tabs.Activate(t.props.Index)
}

// Focused activates the tab unless the tab set uses manual activation.
func (t *Tab) Focused() bool {
	if t.tabs.ManualActivation() {
		return false
	}
	return t.tabs.Activate(t.props.Index)
}

// HandleKey runs a decoded command as if dispatched to this trigger.
func (t *Tab) HandleKey(ev input.KeyEvent) bool {
	handler, ok := t.handlers()[ev.Command]
	if !ok || t.closed {
		return false
	}
	handler(t.ctx, ev)
	return true
}

// TabIndexAttr returns 0 for the active trigger and -1 for the others.
func (t *Tab) TabIndexAttr() int {
	if t.Active() {
		return 0
	}
	return -1
}

// Attrs returns the trigger's accessibility attributes.
func (t *Tab) Attrs() TabAttrs {
	active := t.Active()
	return TabAttrs{
		Role:         "tab",
		Controls:     t.id,
		Selected:     active,
		AriaDisabled: active || t.props.Disabled,
		TabIndex:     t.TabIndexAttr(),
	}
}
