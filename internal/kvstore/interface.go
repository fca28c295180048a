package kvstore

import "context"

// Repository is a key-value view over named collections.
// Get returns (nil, nil) for an absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Store is a Repository that can also apply a group of reads and writes
// atomically. If fn returns an error none of its writes are kept.
type Store interface {
	Repository
	Update(ctx context.Context, fn func(ctx context.Context, r Repository) error) error
}
