package usecase

import (
	"context"
	"fmt"

	"github.com/accessible-ui/tabs/internal/application/port"
	"github.com/accessible-ui/tabs/internal/domain/entity"
	"github.com/accessible-ui/tabs/internal/logging"
)

// TabStateUseCase restores and remembers the active tab of a named tab set.
type TabStateUseCase struct {
	store port.ActiveTabStore
}

// NewTabStateUseCase creates a new tab state use case.
// A nil store disables persistence.
func NewTabStateUseCase(store port.ActiveTabStore) *TabStateUseCase {
	return &TabStateUseCase{store: store}
}

// Restore returns the stored active index of tabset, or fallback when
// nothing usable was stored. Lookup failures are logged and never fatal.
func (uc *TabStateUseCase) Restore(ctx context.Context, tabset string, fallback entity.TabIndex) entity.TabIndex {
	log := logging.FromContext(ctx)

	if uc.store == nil {
		return fallback
	}

	index, ok, err := uc.store.GetActive(ctx, tabset)
	if err != nil {
		log.Warn().Err(err).Str("tabset", tabset).Msg("failed to restore active tab")
		return fallback
	}
	if !ok || !index.Valid() {
		log.Debug().Str("tabset", tabset).Msg("no stored active tab")
		return fallback
	}

	log.Debug().
		Str("tabset", tabset).
		Int("index", int(index)).
		Msg("restored active tab")
	return index
}

// Remember stores the new active index carried by a change event.
// Transitions to no active tab are not stored.
func (uc *TabStateUseCase) Remember(ctx context.Context, tabset string, ev entity.ChangeEvent) error {
	if uc.store == nil || !ev.Next.Valid() {
		return nil
	}

	if err := uc.store.SaveActive(ctx, tabset, ev.Next); err != nil {
		return fmt.Errorf("save active tab for %s: %w", tabset, err)
	}

	logging.FromContext(ctx).Debug().
		Str("tabset", tabset).
		Int("from", int(ev.Previous)).
		Int("to", int(ev.Next)).
		Msg("active tab saved")
	return nil
}
