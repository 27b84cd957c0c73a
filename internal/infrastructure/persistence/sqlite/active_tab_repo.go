package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/accessible-ui/tabs/internal/application/port"
	"github.com/accessible-ui/tabs/internal/domain/entity"
	"github.com/accessible-ui/tabs/internal/logging"
)

const (
	upsertActiveTab = `INSERT INTO tab_state (tabset, active, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(tabset) DO UPDATE SET active = excluded.active, updated_at = excluded.updated_at`

	selectActiveTab = `SELECT active FROM tab_state WHERE tabset = ?`
)

type activeTabRepo struct {
	provider port.DatabaseProvider
	now      func() time.Time
}

// NewActiveTabRepository creates a repository remembering the active tab per tab set.
func NewActiveTabRepository(provider port.DatabaseProvider) port.ActiveTabStore {
	return &activeTabRepo{
		provider: provider,
		now:      time.Now,
	}
}

// SaveActive stores index as the active tab of tabset.
func (r *activeTabRepo) SaveActive(ctx context.Context, tabset string, index entity.TabIndex) error {
	log := logging.FromContext(ctx)
	if !index.Valid() {
		return fmt.Errorf("save active tab %d: %w", index, errInvalidIndex)
	}

	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	log.Debug().Str("tabset", tabset).Int("active", int(index)).Msg("saving active tab")
	if _, err := db.ExecContext(ctx, upsertActiveTab, tabset, int64(index), r.now().UTC()); err != nil {
		return fmt.Errorf("save active tab: %w", err)
	}
	return nil
}

// GetActive returns the stored active tab of tabset.
func (r *activeTabRepo) GetActive(ctx context.Context, tabset string) (entity.TabIndex, bool, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return entity.NoTab, false, err
	}

	var active int64
	err = db.QueryRowContext(ctx, selectActiveTab, tabset).Scan(&active)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.NoTab, false, nil
	}
	if err != nil {
		return entity.NoTab, false, fmt.Errorf("get active tab: %w", err)
	}
	return entity.TabIndex(active), true, nil
}

var errInvalidIndex = errors.New("invalid tab index")
