package kvstore

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/travelbook/internal/dbx"
)

// SQLiteStore is a Store backed by a *sql.DB. Plain Repository calls run in
// autocommit mode; Update runs fn inside a single transaction.
type SQLiteStore struct {
	*SQLiteRepository
	db *sql.DB
}

// NewSQLiteStore returns a Store over db. The "collections" table must exist
// (see storage.InitDatabase).
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{SQLiteRepository: NewSQLiteRepository(db), db: db}
}

func (s *SQLiteStore) Update(ctx context.Context, fn func(ctx context.Context, r Repository) error) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, NewSQLiteRepository(tx))
	})
}
