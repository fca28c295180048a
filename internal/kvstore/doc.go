// Package kvstore provides the durable local key-value store that backs the
// user registry and the destination collection.
//
// # Overview
//
// Values are opaque byte slices keyed by collection name ("users",
// "destinations", "session"). Repository is the plain CRUD surface; Store
// adds Update, which runs a read-modify-write function atomically so that a
// mutation either lands completely or not at all.
//
// Key Types
//
//   - Repository: Get/Set/Delete/List/Clear over collection keys
//   - Store: Repository plus atomic Update
//   - SQLiteRepository: Repository over a dbx.DBTX (table "collections")
//   - SQLiteStore: Store over *sql.DB, Update runs in a transaction
//   - MemoryStore: Store over a guarded map, for tests and ephemeral runs
//
// Typical Usage
//
//	store := kvstore.NewSQLiteStore(db)
//	err := store.Update(ctx, func(ctx context.Context, r kvstore.Repository) error {
//	    raw, err := r.Get(ctx, "users")
//	    ...
//	    return r.Set(ctx, "users", updated)
//	})
package kvstore
