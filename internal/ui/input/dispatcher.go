package input

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/accessible-ui/tabs/internal/domain/entity"
	"github.com/accessible-ui/tabs/internal/logging"
)

// KeyEvent is a decoded key press delivered to a handler.
type KeyEvent struct {
	Command entity.Command
	Key     string
}

// Handler receives a decoded key press.
type Handler func(ctx context.Context, ev KeyEvent)

// Handlers maps commands to the handler that serves them.
type Handlers map[entity.Command]Handler

type registration struct {
	token    uint64
	handlers Handlers
}

// Dispatcher routes decoded commands to the handler set of the focused trigger.
// It is not safe for concurrent use.
type Dispatcher struct {
	keys   KeyMap
	owners map[entity.TabIndex]registration
	seq    uint64
}

// NewDispatcher creates a dispatcher decoding keys with keys.
func NewDispatcher(keys KeyMap) *Dispatcher {
	return &Dispatcher{
		keys:   keys,
		owners: make(map[entity.TabIndex]registration),
	}
}

// KeyMap returns the bindings used for decoding.
func (d *Dispatcher) KeyMap() KeyMap {
	return d.keys
}

// Register installs handlers for owner, replacing any previous set.
// The returned function removes them only while they are still installed.
func (d *Dispatcher) Register(owner entity.TabIndex, handlers Handlers) (unregister func()) {
	d.seq++
	token := d.seq
	d.owners[owner] = registration{token: token, handlers: handlers}

	return func() {
		if current, ok := d.owners[owner]; ok && current.token == token {
			delete(d.owners, owner)
		}
	}
}

// Dispatch decodes msg and invokes the handler of the focused owner.
// Returns true if a handler ran.
func (d *Dispatcher) Dispatch(ctx context.Context, focused entity.TabIndex, msg tea.KeyMsg) bool {
	cmd := d.keys.Command(msg)
	if cmd == entity.CommandNone {
		return false
	}
	return d.Invoke(ctx, focused, KeyEvent{Command: cmd, Key: msg.String()})
}

// Invoke runs the handler registered by owner for ev.Command.
func (d *Dispatcher) Invoke(ctx context.Context, owner entity.TabIndex, ev KeyEvent) bool {
	log := logging.FromContext(ctx)

	reg, ok := d.owners[owner]
	if !ok {
		log.Debug().Int("owner", int(owner)).Str("command", ev.Command.String()).Msg("no handlers for focused trigger")
		return false
	}
	handler, ok := reg.handlers[ev.Command]
	if !ok || handler == nil {
		return false
	}

	log.Debug().Int("owner", int(owner)).Str("command", ev.Command.String()).Str("key", ev.Key).Msg("dispatching key command")
	handler(ctx, ev)
	return true
}

// SetKeyMap replaces the bindings used for decoding.
func (d *Dispatcher) SetKeyMap(keys KeyMap) {
	d.keys = keys
}
