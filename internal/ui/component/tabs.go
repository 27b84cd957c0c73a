// Package component implements the tab set, its triggers and its panels
// over the headless domain state.
package component

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/accessible-ui/tabs/internal/application/port"
	"github.com/accessible-ui/tabs/internal/domain/entity"
	"github.com/accessible-ui/tabs/internal/domain/tree"
	"github.com/accessible-ui/tabs/internal/infrastructure/identity"
	"github.com/accessible-ui/tabs/internal/logging"
)

var (
	// ErrNoActiveTab is returned when an uncontrolled tab set has no resolvable default.
	ErrNoActiveTab = errors.New("no active tab")
	// ErrInvalidIndex is returned for a negative controlling index.
	ErrInvalidIndex = errors.New("invalid tab index")
)

// Options configures a tab set.
type Options struct {
	// Active, when set, controls the active index from outside.
	Active *int
	// DefaultActive seeds an uncontrolled tab set. Nil means 0.
	DefaultActive *int
	// ManualActivation stops focus from activating tabs.
	ManualActivation bool
	// PreventScroll is passed to every focus transfer.
	PreventScroll bool

	// Callbacks
	OnChange  func(ev entity.ChangeEvent)
	OnRequest func(index entity.TabIndex)

	IDs port.IDGenerator
}

// TabView is the per-index slice of tab set state watched by triggers and panels.
type TabView struct {
	Index    entity.TabIndex
	Active   bool
	Disabled bool
	ID       string
}

type subscription struct {
	token uint64
	fn    func(entity.ChangeEvent)
}

type watcher struct {
	index entity.TabIndex
	fn    func(TabView)
	last  TabView
}

// Tabs owns the registry and activation state of one tab set.
// It is not safe for concurrent use; drive it from a single goroutine.
type Tabs struct {
	ctx        context.Context
	opts       Options
	ids        port.IDGenerator
	registry   *entity.Registry
	activation *entity.Activation

	subscribers []subscription
	watchers    map[uint64]*watcher
	seq         uint64
}

// NewTabs creates a tab set. No change event is emitted for the initial state.
func NewTabs(ctx context.Context, opts Options) (*Tabs, error) {
	ctx = logging.WithComponent(ctx, "tabs")
	log := logging.FromContext(ctx)

	defaultActive := 0
	if opts.DefaultActive != nil {
		defaultActive = *opts.DefaultActive
	}

	activation := entity.NewActivation(entity.TabIndex(defaultActive))
	if opts.Active != nil {
		if *opts.Active < 0 {
			return nil, fmt.Errorf("controlled active %d: %w", *opts.Active, ErrInvalidIndex)
		}
		activation.SetControlled(entity.TabIndex(*opts.Active))
	} else if defaultActive < 0 {
		return nil, fmt.Errorf("default active %d: %w", defaultActive, ErrNoActiveTab)
	}

	ids := opts.IDs
	if ids == nil {
		ids = identity.NewGenerator("tab")
	}

	t := &Tabs{
		ctx:        ctx,
		opts:       opts,
		ids:        ids,
		registry:   entity.NewRegistry(),
		activation: activation,
		watchers:   make(map[uint64]*watcher),
	}
	if opts.OnChange != nil {
		t.Subscribe(opts.OnChange)
	}

	log.Debug().
		Int("active", int(activation.Resolved())).
		Bool("controlled", activation.Controlled()).
		Bool("manual_activation", opts.ManualActivation).
		Msg("tab set created")

	return t, nil
}

// Context returns the tab set's logging context.
func (t *Tabs) Context() context.Context {
	return t.ctx
}

// Registry returns the registry of mounted triggers.
func (t *Tabs) Registry() *entity.Registry {
	return t.registry
}

// Active returns the resolved active index, NoTab when none.
func (t *Tabs) Active() entity.TabIndex {
	return t.activation.Resolved()
}

// IsActive returns true if index is the active tab.
func (t *Tabs) IsActive(index entity.TabIndex) bool {
	return t.activation.IsActive(index)
}

// Controlled returns true while an external value drives the active index.
func (t *Tabs) Controlled() bool {
	return t.activation.Controlled()
}

// Disabled returns true if the trigger at index is registered as disabled.
func (t *Tabs) Disabled(index entity.TabIndex) bool {
	return t.registry.Disabled(index)
}

// ID returns the id registered at index.
func (t *Tabs) ID(index entity.TabIndex) string {
	return t.registry.ID(index)
}

// ManualActivation reports whether focus alone leaves the active tab untouched.
func (t *Tabs) ManualActivation() bool {
	return t.opts.ManualActivation
}

// PreventScroll reports whether focus transfers suppress scrolling.
func (t *Tabs) PreventScroll() bool {
	return t.opts.PreventScroll
}

// NewID returns a fresh id from the id generator.
func (t *Tabs) NewID() string {
	return t.ids()
}

// View returns the watched slice of state for index.
func (t *Tabs) View(index entity.TabIndex) TabView {
	record, _ := t.registry.Get(index)
	return TabView{
		Index:    index,
		Active:   t.activation.IsActive(index),
		Disabled: record.Disabled,
		ID:       record.ID,
	}
}

// Activate requests index to become active. Requests for unregistered,
// disabled or negative indices are ignored. Returns true if accepted.
func (t *Tabs) Activate(index entity.TabIndex) bool {
	log := logging.FromContext(t.ctx)

	if !t.activation.Accepts(index, t.registry) {
		log.Debug().Int("index", int(index)).Msg("activation rejected")
		return false
	}

	ev, changed := t.activation.Request(index, t.registry)
	if t.opts.OnRequest != nil {
		t.opts.OnRequest(index)
	}
	if changed {
		t.emit(ev)
	}
	return true
}

// Clear deactivates every tab of an uncontrolled tab set.
func (t *Tabs) Clear() {
	if ev, changed := t.activation.Clear(); changed {
		t.emit(ev)
	}
}

// SetActive sets the controlling index.
func (t *Tabs) SetActive(index entity.TabIndex) error {
	if !index.Valid() {
		return fmt.Errorf("controlled active %d: %w", index, ErrInvalidIndex)
	}
	if ev, changed := t.activation.SetControlled(index); changed {
		t.emit(ev)
	}
	return nil
}

// Uncontrol drops the controlling index; the internally tracked index takes over.
func (t *Tabs) Uncontrol() {
	if ev, changed := t.activation.ReleaseControl(); changed {
		t.emit(ev)
	}
}

// Subscribe registers fn for change events, delivered synchronously after
// the state is written.
func (t *Tabs) Subscribe(fn func(entity.ChangeEvent)) (unsubscribe func()) {
	t.seq++
	token := t.seq
	t.subscribers = append(t.subscribers, subscription{token: token, fn: fn})

	return func() {
		for i, sub := range t.subscribers {
			if sub.token == token {
				t.subscribers = append(t.subscribers[:i:i], t.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Watch calls fn whenever the view of index changes.
func (t *Tabs) Watch(index entity.TabIndex, fn func(TabView)) (unwatch func()) {
	t.seq++
	token := t.seq
	t.watchers[token] = &watcher{index: index, fn: fn, last: t.View(index)}

	return func() {
		delete(t.watchers, token)
	}
}

// RegisterTab records a mounted trigger at index and returns its release.
func (t *Tabs) RegisterTab(index entity.TabIndex, record entity.TabRecord) (release func()) {
	log := logging.FromContext(t.ctx)
	log.Debug().Int("index", int(index)).Str("id", record.ID).Bool("disabled", record.Disabled).Msg("registering tab")

	releaseSlot := t.registry.Register(index, record)
	t.refresh()

	return func() {
		releaseSlot()
		t.refresh()
	}
}

// Mount assigns implicit indices to the tabs and panels of a tree.
func (t *Tabs) Mount(nodes []*entity.Node) []*entity.Node {
	return tree.IndexTree(nodes)
}

func (t *Tabs) emit(ev entity.ChangeEvent) {
	log := logging.FromContext(t.ctx)
	log.Debug().Int("previous", int(ev.Previous)).Int("next", int(ev.Next)).Msg("active tab changed")

	subs := make([]subscription, len(t.subscribers))
	copy(subs, t.subscribers)
	for _, sub := range subs {
		sub.fn(ev)
	}
	t.refresh()
}

// refresh notifies watchers whose view changed, in subscription order.
func (t *Tabs) refresh() {
	for _, token := range slices.Sorted(maps.Keys(t.watchers)) {
		w, ok := t.watchers[token]
		if !ok {
			continue
		}
		view := t.View(w.index)
		if view == w.last {
			continue
		}
		w.last = view
		w.fn(view)
	}
}
