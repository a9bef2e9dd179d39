package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"FounderX/internals/apperrors"
	"FounderX/internals/models"
)

const startupColumns = `id, name, domain, stage, funding, founder_id, created_at`

type StartupRepo struct {
	db *DB
}

func NewStartupRepo(db *DB) *StartupRepo {
	return &StartupRepo{db: db}
}

// Create inserts s. founder_id is not checked here; the store foreign key
// rejects unknown founders and that surfaces as apperrors unknown_founder.
func (r *StartupRepo) Create(ctx context.Context, s models.Startup) (models.Startup, error) {
	var created models.Startup
	err := r.db.WithConn(ctx, func(conn *sqlx.Conn) error {
		res, err := conn.ExecContext(ctx,
			`INSERT INTO startups (name, domain, stage, funding, founder_id) VALUES (?, ?, ?, ?, ?)`,
			s.Name, s.Domain, s.Stage, s.Funding, s.FounderId)
		if err != nil {
			if isConstraint(err, sqlite3.ErrConstraintForeignKey) {
				return apperrors.ErrUnknownFounder(err)
			}
			return fmt.Errorf("insert startup: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert startup: last id: %w", err)
		}
		return sqlx.GetContext(ctx, conn, &created,
			`SELECT `+startupColumns+` FROM startups WHERE id = ?`, id)
	})
	return created, err
}

func (r *StartupRepo) ByID(ctx context.Context, id int64) (models.Startup, error) {
	var s models.Startup
	err := r.db.WithConn(ctx, func(conn *sqlx.Conn) error {
		err := sqlx.GetContext(ctx, conn, &s,
			`SELECT `+startupColumns+` FROM startups WHERE id = ?`, id)
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrStartupNotFound()
		}
		if err != nil {
			return fmt.Errorf("select startup: %w", err)
		}
		return nil
	})
	return s, err
}

func (r *StartupRepo) ListByFounder(ctx context.Context, founderID int64) ([]models.Startup, error) {
	out := []models.Startup{}
	err := r.db.WithConn(ctx, func(conn *sqlx.Conn) error {
		if err := sqlx.SelectContext(ctx, conn, &out,
			`SELECT `+startupColumns+` FROM startups WHERE founder_id = ? ORDER BY id`, founderID); err != nil {
			return fmt.Errorf("list startups: %w", err)
		}
		return nil
	})
	return out, err
}
