// Package identity generates external ids for tab and panel pairs.
package identity

import (
	"github.com/google/uuid"

	"github.com/accessible-ui/tabs/internal/application/port"
)

// NewGenerator returns an id generator producing "<prefix>-<uuid>".
// An empty prefix yields bare uuids.
func NewGenerator(prefix string) port.IDGenerator {
	return func() string {
		id := uuid.NewString()
		if prefix == "" {
			return id
		}
		return prefix + "-" + id
	}
}
