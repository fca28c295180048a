package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/travelbook/internal/collection"
	"github.com/dmitrijs2005/travelbook/internal/common"
	"github.com/dmitrijs2005/travelbook/internal/cryptox"
	"github.com/dmitrijs2005/travelbook/internal/kvstore"
	"github.com/dmitrijs2005/travelbook/internal/logging"
	"github.com/dmitrijs2005/travelbook/internal/models"
)

// Store owns the user registry and the active session.
type Store struct {
	kv       kvstore.Store
	users    collection.Collection[models.User]
	logger   logging.Logger
	remember bool

	current *models.User
}

type Option func(*Store)

// WithLogger sets the logger used for debug traces and corrupt-data warnings.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithRemember enables persisting the active identity across processes.
func WithRemember(remember bool) Option {
	return func(s *Store) { s.remember = remember }
}

// NewStore returns a logged-out Store over kv.
func NewStore(kv kvstore.Store, opts ...Option) *Store {
	s := &Store{kv: kv, logger: logging.Nop()}
	for _, o := range opts {
		o(s)
	}
	s.users = collection.New[models.User](common.UsersCollection, s.logger)
	return s
}

type sessionRecord struct {
	Email string `json:"email"`
}

// Register adds a user to the registry and returns it without its credential.
// It does not log the user in.
func (s *Store) Register(ctx context.Context, email string, password []byte, name string) (models.User, error) {
	if strings.TrimSpace(email) == "" || len(password) == 0 {
		return models.User{}, fmt.Errorf("%w: email and password are required", common.ErrInvalidInput)
	}

	user := models.User{Email: email, Password: cryptox.HashPassword(password), Name: name}

	err := s.kv.Update(ctx, func(ctx context.Context, r kvstore.Repository) error {
		users, err := s.users.Load(ctx, r)
		if err != nil {
			return err
		}
		if _, ok := findUser(users, email); ok {
			return common.ErrDuplicateEmail
		}
		return s.users.Save(ctx, r, append(users, user))
	})
	if err != nil {
		return models.User{}, err
	}

	s.logger.Debug(ctx, "user registered", "email", email)
	return user.Public(), nil
}

// Login checks the credentials and makes the user the active session.
func (s *Store) Login(ctx context.Context, email string, password []byte) (models.User, error) {
	users, err := s.users.Load(ctx, s.kv)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to load users: %w", err)
	}

	u, ok := findUser(users, email)
	if !ok || !cryptox.VerifyPassword(u.Password, password) {
		return models.User{}, common.ErrInvalidCredentials
	}

	if s.remember {
		if err := s.persist(ctx, email); err != nil {
			return models.User{}, err
		}
	}

	pub := u.Public()
	s.current = &pub
	s.logger.Debug(ctx, "logged in", "email", email)
	return pub, nil
}

// Logout ends the active session. It is a no-op when nobody is logged in.
// The in-memory session is always cleared; an error is returned only if the
// remembered identity could not be removed from storage.
func (s *Store) Logout(ctx context.Context) error {
	s.current = nil
	if !s.remember {
		return nil
	}
	if err := s.kv.Delete(ctx, common.SessionCollection); err != nil {
		return fmt.Errorf("failed to forget session: %w", err)
	}
	return nil
}

// CurrentUser returns the active user, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}

// Restore re-establishes a remembered session. It reports false when
// remember-me is off, nothing is remembered, or the remembered user no longer
// exists (in which case the stale record is dropped).
func (s *Store) Restore(ctx context.Context) (models.User, bool, error) {
	if !s.remember {
		return models.User{}, false, nil
	}

	raw, err := s.kv.Get(ctx, common.SessionCollection)
	if err != nil {
		return models.User{}, false, fmt.Errorf("failed to read session: %w", err)
	}
	if len(raw) == 0 {
		return models.User{}, false, nil
	}

	var rec sessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.logger.Warn(ctx, "corrupt session record ignored", "error", err)
		return models.User{}, false, s.forget(ctx)
	}

	users, err := s.users.Load(ctx, s.kv)
	if err != nil {
		return models.User{}, false, fmt.Errorf("failed to load users: %w", err)
	}
	u, ok := findUser(users, rec.Email)
	if !ok {
		return models.User{}, false, s.forget(ctx)
	}

	pub := u.Public()
	s.current = &pub
	return pub, true, nil
}

func (s *Store) persist(ctx context.Context, email string) error {
	raw, err := json.Marshal(sessionRecord{Email: email})
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, common.SessionCollection, raw); err != nil {
		return fmt.Errorf("failed to remember session: %w", err)
	}
	return nil
}

func (s *Store) forget(ctx context.Context) error {
	if err := s.kv.Delete(ctx, common.SessionCollection); err != nil {
		return fmt.Errorf("failed to forget session: %w", err)
	}
	return nil
}

func findUser(users []models.User, email string) (models.User, bool) {
	for _, u := range users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}
