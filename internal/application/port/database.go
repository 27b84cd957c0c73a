package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the shared database connection.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	Close() error
}
