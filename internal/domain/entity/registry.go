package entity

// TabRecord is what a mounted tab trigger registers at its index.
type TabRecord struct {
	Handle   FocusTarget
	ID       string
	Disabled bool
}

type registration struct {
	record TabRecord
	token  uint64
}

// Registry maps tab indices to the records of mounted triggers.
// Unregistered indices leave holes instead of compacting, so positions stay
// stable while the remaining tabs are mounted.
type Registry struct {
	slots map[TabIndex]registration
	next  uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		slots: make(map[TabIndex]registration),
	}
}

// Register inserts or replaces the record at index.
// The returned release removes that exact registration; once a newer
// registration replaced the slot, calling it does nothing.
func (r *Registry) Register(index TabIndex, record TabRecord) (release func()) {
	if !index.Valid() {
		return func() {}
	}

	r.next++
	token := r.next
	r.slots[index] = registration{record: record, token: token}

	return func() {
		if current, ok := r.slots[index]; ok && current.token == token {
			delete(r.slots, index)
		}
	}
}

// Get returns the record at index.
func (r *Registry) Get(index TabIndex) (TabRecord, bool) {
	reg, ok := r.slots[index]
	return reg.record, ok
}

// Disabled returns true if a disabled record is registered at index.
func (r *Registry) Disabled(index TabIndex) bool {
	reg, ok := r.slots[index]
	return ok && reg.record.Disabled
}

// ID returns the external id registered at index, or "".
func (r *Registry) ID(index TabIndex) string {
	return r.slots[index].record.ID
}

// Len returns the highest registered index plus one, so holes still count
// as positions.
func (r *Registry) Len() int {
	highest := NoTab
	for index := range r.slots {
		if index > highest {
			highest = index
		}
	}
	return int(highest) + 1
}
