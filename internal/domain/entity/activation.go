package entity

// ChangeEvent describes a transition of the resolved active index.
type ChangeEvent struct {
	Previous TabIndex
	Next     TabIndex
}

// Activation resolves the single active index from a controlling value,
// when one is supplied, or from the internally tracked value.
type Activation struct {
	internal   TabIndex
	controlled TabIndex
	hasControl bool
}

// NewActivation creates an uncontrolled activation state starting at defaultActive.
func NewActivation(defaultActive TabIndex) *Activation {
	return &Activation{
		internal:   defaultActive,
		controlled: NoTab,
	}
}

// Resolved returns the authoritative active index.
func (a *Activation) Resolved() TabIndex {
	if a.hasControl {
		return a.controlled
	}
	return a.internal
}

// Internal returns the internally tracked index.
func (a *Activation) Internal() TabIndex {
	return a.internal
}

// Controlled returns true while an external value drives resolution.
func (a *Activation) Controlled() bool {
	return a.hasControl
}

// IsActive returns true if index is the resolved active index.
func (a *Activation) IsActive(index TabIndex) bool {
	return index != NoTab && index == a.Resolved()
}

// Accepts returns true if an activation request for index may be applied.
// Unregistered and disabled tabs are not activatable.
func (a *Activation) Accepts(index TabIndex, registry *Registry) bool {
	if !index.Valid() || registry == nil {
		return false
	}
	record, ok := registry.Get(index)
	return ok && !record.Disabled
}

// Request applies an activation request. The internal value is written even
// in controlled mode; the returned flag is true only if the resolved index changed.
func (a *Activation) Request(index TabIndex, registry *Registry) (ChangeEvent, bool) {
	if !a.Accepts(index, registry) {
		return ChangeEvent{}, false
	}
	return a.apply(func() { a.internal = index })
}

// Clear resets the internal value to NoTab.
func (a *Activation) Clear() (ChangeEvent, bool) {
	return a.apply(func() { a.internal = NoTab })
}

// SetControlled makes index the controlling value.
func (a *Activation) SetControlled(index TabIndex) (ChangeEvent, bool) {
	return a.apply(func() {
		a.controlled = index
		a.hasControl = true
	})
}

// ReleaseControl drops the controlling value; resolution falls back to the internal value.
func (a *Activation) ReleaseControl() (ChangeEvent, bool) {
	return a.apply(func() {
		a.controlled = NoTab
		a.hasControl = false
	})
}

func (a *Activation) apply(write func()) (ChangeEvent, bool) {
	prev := a.Resolved()
	write()
	next := a.Resolved()
	return ChangeEvent{Previous: prev, Next: next}, prev != next
}
