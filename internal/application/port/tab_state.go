package port

import (
	"context"

	"github.com/accessible-ui/tabs/internal/domain/entity"
)

//go:generate mockgen -source=tab_state.go -destination=mocks/mock_tab_state.go -package=mocks

// ActiveTabStore persists the last active tab of a named tab set.
type ActiveTabStore interface {
	// SaveActive records index as the active tab of tabset.
	SaveActive(ctx context.Context, tabset string, index entity.TabIndex) error
	// GetActive returns the stored index; ok is false if nothing was stored.
	GetActive(ctx context.Context, tabset string) (index entity.TabIndex, ok bool, err error)
}
