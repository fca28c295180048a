package destinations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/travelbook/internal/collection"
	"github.com/dmitrijs2005/travelbook/internal/common"
	"github.com/dmitrijs2005/travelbook/internal/kvstore"
	"github.com/dmitrijs2005/travelbook/internal/logging"
	"github.com/dmitrijs2005/travelbook/internal/models"
	"github.com/google/uuid"
)

// Repository manages the destination collection.
type Repository struct {
	kv     kvstore.Store
	items  collection.Collection[models.Destination]
	logger logging.Logger

	newID func() string
	now   func() time.Time
}

type Option func(*Repository)

func WithLogger(l logging.Logger) Option {
	return func(r *Repository) { r.logger = l }
}

// WithIDGenerator replaces uuid.NewString as the id source.
func WithIDGenerator(fn func() string) Option {
	return func(r *Repository) { r.newID = fn }
}

// WithClock replaces time.Now as the creation timestamp source.
func WithClock(fn func() time.Time) Option {
	return func(r *Repository) { r.now = fn }
}

func NewRepository(kv kvstore.Store, opts ...Option) *Repository {
	r := &Repository{
		kv:     kv,
		logger: logging.Nop(),
		newID:  uuid.NewString,
		now:    time.Now,
	}
	for _, o := range opts {
		o(r)
	}
	r.items = collection.New[models.Destination](common.DestinationsCollection, r.logger)
	return r
}

// Create appends a new destination owned by ownerEmail and returns it.
func (r *Repository) Create(ctx context.Context, ownerEmail, title, description, imageURL string) (models.Destination, error) {
	d := models.Destination{
		ID:          r.newID(),
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		UserID:      ownerEmail,
		CreatedAt:   r.now().UnixMilli(),
	}

	err := r.kv.Update(ctx, func(ctx context.Context, tx kvstore.Repository) error {
		all, err := r.items.Load(ctx, tx)
		if err != nil {
			return err
		}
		if indexOf(all, d.ID) >= 0 {
			return fmt.Errorf("duplicate destination id %q", d.ID)
		}
		return r.items.Save(ctx, tx, append(all, d))
	})
	if err != nil {
		return models.Destination{}, fmt.Errorf("failed to create destination: %w", err)
	}

	r.logger.Debug(ctx, "destination created", "id", d.ID, "owner", ownerEmail)
	return d, nil
}

// Get returns the destination with the given id regardless of owner.
func (r *Repository) Get(ctx context.Context, id string) (models.Destination, error) {
	all, err := r.items.Load(ctx, r.kv)
	if err != nil {
		return models.Destination{}, fmt.Errorf("failed to load destinations: %w", err)
	}
	i := indexOf(all, id)
	if i < 0 {
		return models.Destination{}, common.ErrorNotFound
	}
	return all[i], nil
}

// Update merges patch into the destination with the given id and returns the
// result. ID, UserID and CreatedAt are never changed.
func (r *Repository) Update(ctx context.Context, id string, patch models.DestinationPatch) (models.Destination, error) {
	var updated models.Destination

	err := r.kv.Update(ctx, func(ctx context.Context, tx kvstore.Repository) error {
		all, err := r.items.Load(ctx, tx)
		if err != nil {
			return err
		}
		i := indexOf(all, id)
		if i < 0 {
			return common.ErrorNotFound
		}
		updated = patch.Apply(all[i])
		all[i] = updated
		return r.items.Save(ctx, tx, all)
	})
	if err != nil {
		return models.Destination{}, wrap("update", err)
	}

	r.logger.Debug(ctx, "destination updated", "id", id)
	return updated, nil
}

// Delete permanently removes the destination with the given id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	err := r.kv.Update(ctx, func(ctx context.Context, tx kvstore.Repository) error {
		all, err := r.items.Load(ctx, tx)
		if err != nil {
			return err
		}
		i := indexOf(all, id)
		if i < 0 {
			return common.ErrorNotFound
		}
		return r.items.Save(ctx, tx, append(all[:i], all[i+1:]...))
	})
	if err != nil {
		return wrap("delete", err)
	}

	r.logger.Debug(ctx, "destination deleted", "id", id)
	return nil
}

// ListFor returns the destinations owned by ownerEmail in stored order.
func (r *Repository) ListFor(ctx context.Context, ownerEmail string) ([]models.Destination, error) {
	all, err := r.items.Load(ctx, r.kv)
	if err != nil {
		return nil, fmt.Errorf("failed to load destinations: %w", err)
	}

	owned := make([]models.Destination, 0, len(all))
	for _, d := range all {
		if d.UserID == ownerEmail {
			owned = append(owned, d)
		}
	}
	return owned, nil
}

// Search returns the owner's destinations whose title or description contains
// query, ignoring case. An empty query matches everything. Order is preserved.
func (r *Repository) Search(ctx context.Context, ownerEmail, query string) ([]models.Destination, error) {
	owned, err := r.ListFor(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return owned, nil
	}

	q := strings.ToLower(query)
	matched := make([]models.Destination, 0, len(owned))
	for _, d := range owned {
		if strings.Contains(strings.ToLower(d.Title), q) || strings.Contains(strings.ToLower(d.Description), q) {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

func indexOf(all []models.Destination, id string) int {
	for i, d := range all {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// wrap leaves ErrorNotFound bare so callers can compare it directly.
func wrap(op string, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return err
	}
	return fmt.Errorf("failed to %s destination: %w", op, err)
}
