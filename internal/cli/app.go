package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/travelbook/internal/common"
	"github.com/dmitrijs2005/travelbook/internal/config"
	"github.com/dmitrijs2005/travelbook/internal/destinations"
	"github.com/dmitrijs2005/travelbook/internal/kvstore"
	"github.com/dmitrijs2005/travelbook/internal/logging"
	"github.com/dmitrijs2005/travelbook/internal/models"
	"github.com/dmitrijs2005/travelbook/internal/session"
	"github.com/dmitrijs2005/travelbook/internal/storage"
)

// SessionService is the part of session.Store the CLI depends on.
type SessionService interface {
	Register(ctx context.Context, email string, password []byte, name string) (models.User, error)
	Login(ctx context.Context, email string, password []byte) (models.User, error)
	Logout(ctx context.Context) error
	CurrentUser() (models.User, bool)
	Restore(ctx context.Context) (models.User, bool, error)
}

// DestinationService is the part of destinations.Repository the CLI depends on.
type DestinationService interface {
	Create(ctx context.Context, ownerEmail, title, description, imageURL string) (models.Destination, error)
	Get(ctx context.Context, id string) (models.Destination, error)
	Update(ctx context.Context, id string, patch models.DestinationPatch) (models.Destination, error)
	Delete(ctx context.Context, id string) error
	ListFor(ctx context.Context, ownerEmail string) ([]models.Destination, error)
	Search(ctx context.Context, ownerEmail, query string) ([]models.Destination, error)
}

type App struct {
	config       *config.Config
	logger       logging.Logger
	sessions     SessionService
	destinations DestinationService
	reader       *bufio.Reader
	out          io.Writer

	// view is the logged-in user's destinations as last loaded from the
	// repository. It is nil while logged out.
	view []models.Destination

	closeFn func() error
}

// NewApp opens the database named by c.DBPath and wires the session store and
// destination repository on top of it. Call Close when done.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out io.Writer) (*App, error) {
	logger := logging.New(os.Stderr, c.LogLevel, c.LogFormat)

	db, err := storage.Open(ctx, c.DBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DBPath, "error", err)
		return nil, err
	}

	kv := kvstore.NewSQLiteStore(db)
	sessions := session.NewStore(kv,
		session.WithLogger(logger.With("component", "session")),
		session.WithRemember(c.RememberSession),
	)
	repo := destinations.NewRepository(kv,
		destinations.WithLogger(logger.With("component", "destinations")),
	)

	a := newApp(c, logger, sessions, repo, in, out)
	a.closeFn = db.Close
	return a, nil
}

func newApp(c *config.Config, logger logging.Logger, s SessionService, d DestinationService, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	return &App{
		config:       c,
		logger:       logger,
		sessions:     s,
		destinations: d,
		reader:       bufio.NewReader(in),
		out:          out,
	}
}

// Run shows the splash banner, restores a remembered session and blocks in
// the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := Splash(ctx, a.out, a.config.SplashDelay); err != nil {
		return err
	}

	if err := a.restore(ctx); err != nil {
		a.logger.Warn(ctx, "could not restore session", "error", err)
	}

	a.Root(ctx)
	return nil
}

// Close releases the underlying database handle.
func (a *App) Close() error {
	if a.closeFn == nil {
		return nil
	}
	err := a.closeFn()
	a.closeFn = nil
	return err
}

func (a *App) isLoggedIn() bool {
	_, ok := a.sessions.CurrentUser()
	return ok
}

// currentUser returns the logged-in user or common.ErrNotLoggedIn.
func (a *App) currentUser() (models.User, error) {
	u, ok := a.sessions.CurrentUser()
	if !ok {
		return models.User{}, common.ErrNotLoggedIn
	}
	return u, nil
}

func (a *App) restore(ctx context.Context) error {
	u, ok, err := a.sessions.Restore(ctx)
	if err != nil || !ok {
		return err
	}
	fmt.Fprintf(a.out, "Welcome back, %s!\n", u.Name)
	return a.reloadView(ctx)
}

// reloadView replaces the view with a full reload from the repository.
func (a *App) reloadView(ctx context.Context) error {
	u, err := a.currentUser()
	if err != nil {
		a.view = nil
		return err
	}
	view, err := a.destinations.ListFor(ctx, u.Email)
	if err != nil {
		return err
	}
	a.view = view
	return nil
}

// report prints a user-facing message for err and logs it.
func (a *App) report(ctx context.Context, op string, err error) {
	switch {
	case errors.Is(err, common.ErrNotLoggedIn):
		fmt.Fprintln(a.out, "Please log in first (type 'login').")
	case errors.Is(err, common.ErrInvalidCredentials):
		fmt.Fprintln(a.out, "Invalid email or password.")
	case errors.Is(err, common.ErrDuplicateEmail):
		fmt.Fprintln(a.out, "This email is already registered.")
	case errors.Is(err, common.ErrInvalidInput):
		fmt.Fprintf(a.out, "Error: %s\n", err)
	case errors.Is(err, common.ErrorNotFound):
		fmt.Fprintln(a.out, "Destination not found.")
	default:
		fmt.Fprintf(a.out, "Error: %s\n", err)
		a.logger.Error(ctx, op+" failed", "error", err)
	}
}
