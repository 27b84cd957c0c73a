package identity

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator_Prefix(t *testing.T) {
	gen := NewGenerator("tab")

	id := gen()

	require.True(t, strings.HasPrefix(id, "tab-"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "tab-"))
	assert.NoError(t, err)
}

func TestNewGenerator_Unique(t *testing.T) {
	gen := NewGenerator("")
	seen := make(map[string]struct{})
	for range 100 {
		id := gen()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
