package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FounderX/internals/apperrors"
	"FounderX/internals/models"
)

// newTestDB opens a migrated sqlite database in a per-test temp directory.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", filepath.Join(t.TempDir(), "test.db"))
	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create mock database")
	t.Cleanup(func() { _ = raw.Close() })
	return Wrap(sqlx.NewDb(raw, "sqlite3")), mock
}

func TestMigrate_Idempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Migrate(db))

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('users', 'startups')`))
	assert.Equal(t, 2, n)
}

func TestUserRepo_CreateAndLookup(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.User{Name: "Ada", Email: "ada@example.com", PasswordHash: "$2a$hash"})
	require.NoError(t, err)
	assert.NotZero(t, created.Id)
	assert.Equal(t, "Ada", created.Name)
	assert.False(t, created.CreatedAt.IsZero())

	byEmail, err := repo.ByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.Id, byEmail.Id)
	assert.Equal(t, "$2a$hash", byEmail.PasswordHash)

	byID, err := repo.ByID(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", byID.Email)
}

func TestUserRepo_DuplicateEmail_LeavesOriginal(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, models.User{Name: "First", Email: "dup@example.com", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, models.User{Name: "Second", Email: "dup@example.com", PasswordHash: "h2"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "email_exists"), "got %v", err)

	u, err := repo.ByEmail(ctx, "dup@example.com")
	require.NoError(t, err)
	assert.Equal(t, "First", u.Name)
	assert.Equal(t, "h1", u.PasswordHash)
}

func TestUserRepo_NotFound(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))

	_, err := repo.ByEmail(context.Background(), "nobody@example.com")
	assert.True(t, apperrors.Is(err, "user_not_found"), "got %v", err)

	_, err = repo.ByID(context.Background(), 999)
	assert.True(t, apperrors.Is(err, "user_not_found"), "got %v", err)
}

func TestStartupRepo_CreateGetList(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepo(db)
	repo := NewStartupRepo(db)
	ctx := context.Background()

	founder, err := users.Create(ctx, models.User{Name: "F", Email: "f@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	s, err := repo.Create(ctx, models.Startup{Name: "Acme", Domain: "AI", Stage: models.DefaultStage, Funding: 1500.5, FounderId: founder.Id})
	require.NoError(t, err)
	assert.NotZero(t, s.Id)
	assert.Equal(t, "Idea", s.Stage)
	assert.InDelta(t, 1500.5, s.Funding, 0.0001)

	got, err := repo.ByID(ctx, s.Id)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, founder.Id, got.FounderId)

	_, err = repo.Create(ctx, models.Startup{Name: "Beta", Domain: "Fintech", Stage: "Seed", FounderId: founder.Id})
	require.NoError(t, err)

	list, err := repo.ListByFounder(ctx, founder.Id)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Acme", list[0].Name)
	assert.Equal(t, "Beta", list[1].Name)

	empty, err := repo.ListByFounder(ctx, founder.Id+100)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStartupRepo_UnknownFounder(t *testing.T) {
	repo := NewStartupRepo(newTestDB(t))

	_, err := repo.Create(context.Background(), models.Startup{Name: "Ghost", Domain: "AI", Stage: "Idea", FounderId: 42})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "unknown_founder"), "got %v", err)
}

func TestStartupRepo_NotFound(t *testing.T) {
	repo := NewStartupRepo(newTestDB(t))

	_, err := repo.ByID(context.Background(), 7)
	assert.True(t, apperrors.Is(err, "startup_not_found"), "got %v", err)
}

func TestWithConn_ReleasesOnError(t *testing.T) {
	db := newTestDB(t)
	boom := errors.New("boom")

	err := db.WithConn(context.Background(), func(conn *sqlx.Conn) error {
		assert.Equal(t, 1, db.Stats().InUse)
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, db.Stats().InUse)
}

func TestWithConn_ReleasesOnPanic(t *testing.T) {
	db := newTestDB(t)

	func() {
		defer func() {
			assert.NotNil(t, recover())
		}()
		_ = db.WithConn(context.Background(), func(conn *sqlx.Conn) error {
			panic("handler blew up")
		})
	}()

	assert.Equal(t, 0, db.Stats().InUse)
}

func TestWithConn_CancelledContext(t *testing.T) {
	db := newTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := db.WithConn(ctx, func(conn *sqlx.Conn) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
	assert.True(t, apperrors.Is(err, "unavailable"), "got %v", err)
}

func TestUserRepo_Create_UniqueViolationFromDriver(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (name, email, password_hash) VALUES (?, ?, ?)`)).
		WithArgs("Ada", "ada@example.com", "h").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})

	_, err := repo.Create(context.Background(), models.User{Name: "Ada", Email: "ada@example.com", PasswordHash: "h"})
	assert.True(t, apperrors.Is(err, "email_exists"), "got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_GenericStoreError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Create(context.Background(), models.User{Name: "Ada", Email: "ada@example.com", PasswordHash: "h"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert user")
	assert.Equal(t, 500, apperrors.HTTPStatus(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_ByEmail_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)
	createdAt := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at"}).
		AddRow(int64(3), "Ada", "ada@example.com", "h", createdAt)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?`)).
		WithArgs("ada@example.com").
		WillReturnRows(rows)

	u, err := repo.ByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), u.Id)
	assert.Equal(t, createdAt, u.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStartupRepo_Create_ForeignKeyFromDriver(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStartupRepo(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO startups`)).
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey})

	_, err := repo.Create(context.Background(), models.Startup{Name: "X", Domain: "AI", Stage: "Idea", FounderId: 9})
	assert.True(t, apperrors.Is(err, "unknown_founder"), "got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
