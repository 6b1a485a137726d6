// Package app is the explicit application context of NHPlus. New opens the
// shared database connection, applies migrations and wires repositories,
// services, the session and the task queue; Close tears them down again.
// Front ends receive the *App instead of reaching for global state.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hitec/nhplus/internal/common"
	"github.com/hitec/nhplus/internal/config"
	"github.com/hitec/nhplus/internal/cryptox"
	"github.com/hitec/nhplus/internal/database"
	"github.com/hitec/nhplus/internal/dbx"
	"github.com/hitec/nhplus/internal/dispatch"
	"github.com/hitec/nhplus/internal/logging"
	"github.com/hitec/nhplus/internal/models"
	"github.com/hitec/nhplus/internal/retention"
	"github.com/hitec/nhplus/internal/services"
	"github.com/hitec/nhplus/internal/session"
)

type App struct {
	Config  *config.Config
	Log     logging.Logger
	DB      *sql.DB
	Dialect dbx.Dialect
	Repos   *database.Repositories
	Session *session.Session
	Queue   *dispatch.Queue
	Hasher  cryptox.PasswordHasher
	Clock   func() time.Time

	Patients   *services.Records[models.Patient, *models.Patient]
	Caregivers *services.Records[models.Caregiver, *models.Caregiver]
	Treatments *services.Records[models.Treatment, *models.Treatment]
	Auth       *services.AuthService
}

type options struct {
	logOutput io.Writer
	logger    logging.Logger
	hasher    cryptox.PasswordHasher
	clock     func() time.Time
}

// Option customises New.
type Option func(*options)

// WithLogger replaces the logger built from the configuration.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithLogOutput sends the configured logger's output to w instead of stderr.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOutput = w }
}

func WithHasher(h cryptox.PasswordHasher) Option {
	return func(o *options) { o.hasher = h }
}

// WithClock sets the clock used for creation stamps and retention checks.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.clock = now }
}

// New builds the application context. The caller owns the result and must
// call Close.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	o := &options{logOutput: os.Stderr, clock: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logging.New(cfg.LogLevel, cfg.LogFormat, o.logOutput)
	}
	if o.hasher == nil {
		o.hasher = cryptox.NewArgon2Hasher(cryptox.DefaultParams)
	}

	db, dialect, err := database.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := database.RunMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	repos := database.NewRepositories(db, dialect)
	policy := retention.NewPolicy(cfg.RetentionYears, o.clock)

	a := &App{
		Config:  cfg,
		Log:     o.logger,
		DB:      db,
		Dialect: dialect,
		Repos:   repos,
		Session: session.New(),
		Queue:   dispatch.NewQueue(cfg.QueueSize),
		Hasher:  o.hasher,
		Clock:   o.clock,

		Patients:   services.NewRecords[models.Patient]("patient", repos.Patients, policy, o.logger),
		Caregivers: services.NewRecords[models.Caregiver]("caregiver", repos.Caregivers, policy, o.logger),
		Treatments: services.NewRecords[models.Treatment]("treatment", repos.Treatments, policy, o.logger),
		Auth:       services.NewAuthService(repos.Users, o.hasher, o.logger),
	}

	a.Log.Info(ctx, "application started", "driver", dialect.DriverName(), "retention_years", policy.Years)
	return a, nil
}

// Close drains the task queue and closes the database.
func (a *App) Close() error {
	a.Queue.Close()
	if err := a.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// Login authenticates email and password and opens the session. Wrong
// credentials yield common.ErrorUnauthorized.
func (a *App) Login(ctx context.Context, email, password string) (*models.User, error) {
	if a.Session.State() == session.LoggedIn {
		return nil, common.ErrorAlreadyLoggedIn
	}

	type result struct {
		user *models.User
		ok   bool
	}
	res, err := dispatch.Do(ctx, a.Queue, func(ctx context.Context) (result, error) {
		u, ok, err := a.Auth.Authenticate(ctx, email, password)
		return result{u, ok}, err
	})
	if err != nil {
		return nil, err
	}
	if !res.ok {
		return nil, common.ErrorUnauthorized
	}

	if err := a.Session.Login(res.user); err != nil {
		return nil, err
	}
	a.Log.Info(ctx, "user logged in", "user_id", res.user.ID, "session", a.Session.ID().String())
	return res.user, nil
}

// Logout closes the session.
func (a *App) Logout(ctx context.Context) error {
	sid := a.Session.ID().String()
	if err := a.Session.Logout(); err != nil {
		return err
	}
	a.Log.Info(ctx, "user logged out", "session", sid)
	return nil
}

// Run executes fn on the task queue on behalf of the logged-in user and waits
// for its result. Without a session it fails with common.ErrorNotLoggedIn.
func Run[T any](ctx context.Context, a *App, fn func(ctx context.Context) (T, error)) (T, error) {
	if a.Session.State() != session.LoggedIn {
		var zero T
		return zero, common.ErrorNotLoggedIn
	}
	return dispatch.Do(ctx, a.Queue, fn)
}

// Exec is Run for tasks without a result.
func Exec(ctx context.Context, a *App, fn func(ctx context.Context) error) error {
	_, err := Run(ctx, a, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}
