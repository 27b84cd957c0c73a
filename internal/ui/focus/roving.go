// Package focus provides roving keyboard focus across tab triggers and
// focus synchronisation for tab panels.
package focus

import (
	"context"

	"github.com/accessible-ui/tabs/internal/domain/entity"
	"github.com/accessible-ui/tabs/internal/logging"
)

// Slots is the read view of the tab registry used for navigation.
type Slots interface {
	Get(index entity.TabIndex) (entity.TabRecord, bool)
	Len() int
}

// Next returns the index after current, wrapping from the last position to
// index 0. The destination may be an unmounted hole.
func Next(slots Slots, current entity.TabIndex) (entity.TabIndex, bool) {
	n := slots.Len()
	if n == 0 {
		return entity.NoTab, false
	}
	if int(current) >= n-1 {
		return 0, true
	}
	return current + 1, true
}

// Prev returns the index before current, wrapping from index 0 to the last
// position. Holes are not skipped.
func Prev(slots Slots, current entity.TabIndex) (entity.TabIndex, bool) {
	n := slots.Len()
	if n == 0 {
		return entity.NoTab, false
	}
	if current <= 0 {
		return entity.TabIndex(n - 1), true
	}
	return current - 1, true
}

// First returns index 0, mounted or not.
func First(slots Slots) (entity.TabIndex, bool) {
	if slots.Len() == 0 {
		return entity.NoTab, false
	}
	return 0, true
}

// Last returns the last position, which is always the highest mounted index.
func Last(slots Slots) (entity.TabIndex, bool) {
	n := slots.Len()
	if n == 0 {
		return entity.NoTab, false
	}
	return entity.TabIndex(n - 1), true
}

// Rover moves input focus between registered tab triggers.
// Focus and activation are decoupled: disabled triggers still receive focus.
type Rover struct {
	opts entity.FocusOptions
}

// NewRover creates a rover passing opts to every focus transfer.
func NewRover(opts entity.FocusOptions) *Rover {
	return &Rover{opts: opts}
}

// FocusIndex focuses the trigger registered at index.
// Returns false if nothing is mounted there.
func (r *Rover) FocusIndex(ctx context.Context, slots Slots, index entity.TabIndex) bool {
	log := logging.FromContext(ctx)

	record, ok := slots.Get(index)
	if !ok || record.Handle == nil {
		log.Debug().Int("index", int(index)).Msg("no focus target at index")
		return false
	}

	record.Handle.Focus(r.opts)
	return true
}

// FocusNext focuses the trigger after current.
func (r *Rover) FocusNext(ctx context.Context, slots Slots, current entity.TabIndex) bool {
	target, ok := Next(slots, current)
	return ok && r.FocusIndex(ctx, slots, target)
}

// FocusPrev focuses the trigger before current.
func (r *Rover) FocusPrev(ctx context.Context, slots Slots, current entity.TabIndex) bool {
	target, ok := Prev(slots, current)
	return ok && r.FocusIndex(ctx, slots, target)
}

// FocusFirst focuses the first registered trigger.
func (r *Rover) FocusFirst(ctx context.Context, slots Slots) bool {
	target, ok := First(slots)
	return ok && r.FocusIndex(ctx, slots, target)
}

// FocusLast focuses the last registered trigger.
func (r *Rover) FocusLast(ctx context.Context, slots Slots) bool {
	target, ok := Last(slots)
	return ok && r.FocusIndex(ctx, slots, target)
}

// Handle performs the navigation command from the trigger at current.
// Non-navigational commands return false.
func (r *Rover) Handle(ctx context.Context, slots Slots, cmd entity.Command, current entity.TabIndex) bool {
	switch cmd {
	case entity.CommandNext:
		return r.FocusNext(ctx, slots, current)
	case entity.CommandPrev:
		return r.FocusPrev(ctx, slots, current)
	case entity.CommandFirst:
		return r.FocusFirst(ctx, slots)
	case entity.CommandLast:
		return r.FocusLast(ctx, slots)
	default:
		return false
	}
}
