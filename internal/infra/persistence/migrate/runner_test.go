package migrate

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"strings"
	"testing"

	"cityportal/config"
	"cityportal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	executed []string
	failOn   func(query string) error
}

func (s *stubStore) ExecContext(_ context.Context, query string, _ ...any) (sql.Result, error) {
	s.executed = append(s.executed, query)
	if s.failOn != nil {
		if err := s.failOn(query); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

type stubUserRepo struct {
	count   int64
	created []*entity.User
}

func (s *stubUserRepo) FindByID(context.Context, uuid.UUID) (*entity.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUserRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUserRepo) Count(context.Context) (int64, error) {
	return s.count, nil
}

func (s *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	s.created = append(s.created, user)
	s.count++

	return nil
}

func (s *stubUserRepo) Update(context.Context, *entity.User) error {
	return errors.New("not implemented")
}

type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (stubHasher) Check(password, hash string) bool     { return "hashed:"+password == hash }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRunner(store *stubStore, users *stubUserRepo, seed *config.SeedConfig) *Runner {
	return NewRunner(store, users, stubHasher{}, seed, discardLogger())
}

func TestApplyExecutesScriptsInOrder(t *testing.T) {
	store := &stubStore{}
	runner := newTestRunner(store, &stubUserRepo{}, nil)

	require.NoError(t, runner.Apply(context.Background()))
	require.NotEmpty(t, store.executed)

	// The first statement must come from the first script: the users table
	// has to exist before later scripts reference it.
	assert.Contains(t, store.executed[0], "CREATE TABLE users")

	var usersIdx, collaborationsIdx int
	for i, stmt := range store.executed {
		if strings.Contains(stmt, "CREATE TABLE users") {
			usersIdx = i
		}
		if strings.Contains(stmt, "CREATE TABLE collaborations") {
			collaborationsIdx = i
		}
	}
	assert.Less(t, usersIdx, collaborationsIdx)

	// Statements are split on ";" and trimmed; nothing empty reaches the store.
	for _, stmt := range store.executed {
		assert.NotEmpty(t, strings.TrimSpace(stmt))
		assert.False(t, strings.HasSuffix(stmt, ";"))
	}
}

func TestApplyToleratesFailingStatements(t *testing.T) {
	store := &stubStore{
		failOn: func(query string) error {
			if strings.Contains(query, "CREATE TABLE") {
				return errors.New(`relation already exists`)
			}

			return nil
		},
	}
	runner := newTestRunner(store, &stubUserRepo{}, nil)

	// Failing statements are skipped, not fatal, and later statements still run.
	require.NoError(t, runner.Apply(context.Background()))

	var sawIndex bool
	for _, stmt := range store.executed {
		if strings.Contains(stmt, "CREATE INDEX") {
			sawIndex = true
		}
	}
	assert.True(t, sawIndex)
}

func TestApplyIsRerunnable(t *testing.T) {
	// Second boot against an already migrated store: every DDL statement
	// fails with a duplicate-object error, and Apply still converges.
	store := &stubStore{
		failOn: func(query string) error {
			if strings.Contains(query, "CREATE") {
				return errors.New(`relation already exists`)
			}

			return nil
		},
	}
	runner := newTestRunner(store, &stubUserRepo{}, nil)

	require.NoError(t, runner.Apply(context.Background()))
	firstRun := len(store.executed)

	require.NoError(t, runner.Apply(context.Background()))
	assert.Equal(t, firstRun*2, len(store.executed))
}

func TestEnsureAdministratorRunTwiceSeedsOnce(t *testing.T) {
	users := &stubUserRepo{}
	runner := newTestRunner(&stubStore{}, users, nil)

	require.NoError(t, runner.EnsureAdministrator(context.Background()))
	require.NoError(t, runner.EnsureAdministrator(context.Background()))

	assert.Len(t, users.created, 1)
}

func TestEnsureAdministratorSeedsFreshStore(t *testing.T) {
	store := &stubStore{}
	users := &stubUserRepo{}
	runner := newTestRunner(store, users, &config.SeedConfig{
		Name:     "Administrator",
		Email:    "admin@pitt.com",
		Password: "admin123",
	})

	require.NoError(t, runner.EnsureAdministrator(context.Background()))

	require.Len(t, users.created, 1)
	admin := users.created[0]
	assert.Equal(t, "Administrator", admin.Name)
	assert.Equal(t, "admin@pitt.com", admin.Email)
	assert.Equal(t, "hashed:admin123", admin.PasswordHash)
	assert.NotEqual(t, uuid.Nil, admin.ID)

	// The guard table creation runs regardless of seeding.
	require.NotEmpty(t, store.executed)
	assert.Contains(t, store.executed[0], "CREATE TABLE IF NOT EXISTS users")
}

func TestEnsureAdministratorSkipsPopulatedStore(t *testing.T) {
	users := &stubUserRepo{count: 3}
	runner := newTestRunner(&stubStore{}, users, nil)

	require.NoError(t, runner.EnsureAdministrator(context.Background()))
	assert.Empty(t, users.created)
}

func TestEnsureAdministratorDefaults(t *testing.T) {
	users := &stubUserRepo{}
	runner := newTestRunner(&stubStore{}, users, &config.SeedConfig{})

	require.NoError(t, runner.EnsureAdministrator(context.Background()))

	require.Len(t, users.created, 1)
	assert.Equal(t, "admin@pitt.com", users.created[0].Email)
	assert.Equal(t, "hashed:admin123", users.created[0].PasswordHash)
}

func TestRunSeedFailureIsNotFatal(t *testing.T) {
	store := &stubStore{
		failOn: func(query string) error {
			if strings.Contains(query, "IF NOT EXISTS") {
				return errors.New("permission denied")
			}

			return nil
		},
	}
	runner := newTestRunner(store, &stubUserRepo{}, nil)

	// Migrations succeed; the seed error is logged and swallowed.
	require.NoError(t, runner.Run(context.Background()))
}
