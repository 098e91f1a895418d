// Package migrate applies the embedded schema scripts at boot and seeds the
// bootstrap administrator account on a fresh store.
package migrate

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"
	"sort"
	"strings"
	"time"

	"cityportal/config"
	"cityportal/internal/domain/entity"
	"cityportal/internal/domain/repository"
	"cityportal/internal/domain/service"
	"cityportal/internal/errors"

	"github.com/google/uuid"
)

//go:embed scripts/*.sql
var scriptsFS embed.FS

const (
	defaultSeedName     = "Administrator"
	defaultSeedEmail    = "admin@pitt.com"
	defaultSeedPassword = "admin123"
)

// ensureUsersTable guards the seed path: it must succeed even when the
// schema scripts have never been applied to this database.
const ensureUsersTable = `CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Store is the minimal database surface the runner needs. *sql.DB satisfies it.
type Store interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var _ Store = (*sql.DB)(nil)

// Runner applies the embedded migration scripts and seeds the administrator.
//
// Script application is deliberately tolerant: each script is split into
// statements and a statement that fails is logged and skipped rather than
// aborting the boot. Re-running the same scripts against an already migrated
// database therefore converges to a no-op with warnings.
type Runner struct {
	store  Store
	users  repository.UserRepository
	hasher service.PasswordHasher
	seed   *config.SeedConfig
	logger *slog.Logger
}

// NewRunner builds a Runner. seed may be nil; defaults are applied per field.
func NewRunner(
	store Store,
	users repository.UserRepository,
	hasher service.PasswordHasher,
	seed *config.SeedConfig,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		store:  store,
		users:  users,
		hasher: hasher,
		seed:   seed,
		logger: logger,
	}
}

// Run applies all scripts, then ensures the administrator account exists.
// A seed failure is logged but does not abort the boot; a broken seed only
// disables login, not the public read surface.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.Apply(ctx); err != nil {
		return err
	}

	if err := r.EnsureAdministrator(ctx); err != nil {
		r.logger.Error("administrator seed failed", slog.Any("error", err))
	}

	return nil
}

// Apply executes every embedded script in lexicographic filename order.
// Failing to enumerate or read a script is fatal; a failing statement inside
// a script is logged and skipped.
func (r *Runner) Apply(ctx context.Context) error {
	entries, err := scriptsFS.ReadDir("scripts")
	if err != nil {
		return errors.Wrap(err, "read migration scripts directory")
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		raw, err := scriptsFS.ReadFile("scripts/" + name)
		if err != nil {
			return errors.Wrapf(err, "read migration script %s", name)
		}

		r.applyScript(ctx, name, string(raw))
	}

	return nil
}

// applyScript splits a script on ";" and executes each statement in order.
func (r *Runner) applyScript(ctx context.Context, name, script string) {
	for _, stmt := range strings.Split(script, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		if _, err := r.store.ExecContext(ctx, stmt); err != nil {
			r.logger.Warn("migration statement skipped",
				slog.String("script", name),
				slog.Any("error", err))

			continue
		}
	}

	r.logger.Info("migration script applied", slog.String("script", name))
}

// EnsureAdministrator creates the users table if it does not exist and, when
// the table is empty, inserts the configured administrator account.
func (r *Runner) EnsureAdministrator(ctx context.Context) error {
	if _, err := r.store.ExecContext(ctx, ensureUsersTable); err != nil {
		return errors.Wrap(err, "ensure users table")
	}

	count, err := r.users.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "count users")
	}
	if count > 0 {
		return nil
	}

	name, email, password := r.seedCredentials()

	hash, err := r.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "hash seed password")
	}

	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := r.users.Create(ctx, admin); err != nil {
		return errors.Wrap(err, "create seed administrator")
	}

	r.logger.Info("administrator account seeded", slog.String("email", email))

	return nil
}

func (r *Runner) seedCredentials() (name, email, password string) {
	name, email, password = defaultSeedName, defaultSeedEmail, defaultSeedPassword
	if r.seed == nil {
		return name, email, password
	}

	if r.seed.Name != "" {
		name = r.seed.Name
	}
	if r.seed.Email != "" {
		email = r.seed.Email
	}
	if r.seed.Password != "" {
		password = r.seed.Password
	}

	return name, email, password
}
