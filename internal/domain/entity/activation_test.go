package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func registryWith(records map[TabIndex]TabRecord) *Registry {
	reg := NewRegistry()
	for index, record := range records {
		reg.Register(index, record)
	}
	return reg
}

func TestActivation_RequestActivates(t *testing.T) {
	reg := registryWith(map[TabIndex]TabRecord{0: {}, 1: {}})
	a := NewActivation(0)

	ev, changed := a.Request(1, reg)

	assert.True(t, changed)
	assert.Equal(t, ChangeEvent{Previous: 0, Next: 1}, ev)
	assert.True(t, a.IsActive(1))
	assert.False(t, a.IsActive(0))
}

func TestActivation_SameIndexDoesNotChange(t *testing.T) {
	reg := registryWith(map[TabIndex]TabRecord{0: {}})
	a := NewActivation(0)

	_, changed := a.Request(0, reg)

	assert.False(t, changed)
	assert.Equal(t, TabIndex(0), a.Resolved())
}

func TestActivation_RejectsInvalidTargets(t *testing.T) {
	reg := registryWith(map[TabIndex]TabRecord{0: {}, 1: {Disabled: true}})

	tests := []struct {
		name  string
		index TabIndex
	}{
		{name: "disabled", index: 1},
		{name: "unregistered", index: 5},
		{name: "negative", index: NoTab},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewActivation(0)
			_, changed := a.Request(tt.index, reg)

			assert.False(t, changed)
			assert.Equal(t, TabIndex(0), a.Resolved())
			assert.Equal(t, TabIndex(0), a.Internal(), "rejected requests leave no trace")
		})
	}
}

func TestActivation_ControlledDrivesResolution(t *testing.T) {
	reg := registryWith(map[TabIndex]TabRecord{0: {}, 1: {}})
	a := NewActivation(0)
	a.SetControlled(0)

	_, changed := a.Request(1, reg)

	assert.False(t, changed, "controlled value wins over the internal write")
	assert.Equal(t, TabIndex(0), a.Resolved())
	assert.Equal(t, TabIndex(1), a.Internal())

	ev, changed := a.SetControlled(1)
	assert.True(t, changed)
	assert.Equal(t, ChangeEvent{Previous: 0, Next: 1}, ev)

	_, changed = a.SetControlled(1)
	assert.False(t, changed)
}

func TestActivation_ReleaseControlFallsBack(t *testing.T) {
	reg := registryWith(map[TabIndex]TabRecord{0: {}, 2: {}})
	a := NewActivation(0)
	a.SetControlled(0)
	a.Request(2, reg)

	ev, changed := a.ReleaseControl()

	assert.True(t, changed)
	assert.Equal(t, ChangeEvent{Previous: 0, Next: 2}, ev)
	assert.False(t, a.Controlled())
}

func TestActivation_Clear(t *testing.T) {
	a := NewActivation(3)

	ev, changed := a.Clear()

	assert.True(t, changed)
	assert.Equal(t, ChangeEvent{Previous: 3, Next: NoTab}, ev)
	assert.False(t, a.IsActive(NoTab), "NoTab is never active")
}

func TestActivation_DisabledAfterTheFactStaysActive(t *testing.T) {
	reg := registryWith(map[TabIndex]TabRecord{0: {}, 1: {}})
	a := NewActivation(0)
	a.Request(1, reg)

	reg.Register(1, TabRecord{Disabled: true})

	assert.True(t, a.IsActive(1))
}
