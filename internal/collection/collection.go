// Package collection stores typed record slices as JSON arrays under a single
// key of a kvstore.Repository.
//
// A collection that is absent, empty or fails to decode loads as an empty
// slice. Decode failures are logged at WARN and never returned. The next Save
// overwrites the corrupt value.
package collection

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/travelbook/internal/kvstore"
	"github.com/dmitrijs2005/travelbook/internal/logging"
)

// Collection is a JSON array of T stored under Key.
type Collection[T any] struct {
	Key    string
	Logger logging.Logger
}

func New[T any](key string, logger logging.Logger) Collection[T] {
	if logger == nil {
		logger = logging.Nop()
	}
	return Collection[T]{Key: key, Logger: logger}
}

// Load reads and decodes the whole collection. Only storage errors are returned.
func (c Collection[T]) Load(ctx context.Context, r kvstore.Repository) ([]T, error) {
	raw, err := r.Get(ctx, c.Key)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		c.Logger.Warn(ctx, "corrupt collection treated as empty", "key", c.Key, "error", err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save encodes items and replaces the stored collection.
func (c Collection[T]) Save(ctx context.Context, r kvstore.Repository, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection[%s]: %w", c.Key, err)
	}
	return r.Set(ctx, c.Key, raw)
}
