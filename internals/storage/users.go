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

const userColumns = `id, name, email, password_hash, created_at`

type UserRepo struct {
	db *DB
}

func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts u and returns the stored row. A duplicate email is reported
// as apperrors email_exists.
func (r *UserRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	var created models.User
	err := r.db.WithConn(ctx, func(conn *sqlx.Conn) error {
		res, err := conn.ExecContext(ctx,
			`INSERT INTO users (name, email, password_hash) VALUES (?, ?, ?)`,
			u.Name, u.Email, u.PasswordHash)
		if err != nil {
			if isConstraint(err, sqlite3.ErrConstraintUnique) {
				return apperrors.ErrEmailExists(err)
			}
			return fmt.Errorf("insert user: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert user: last id: %w", err)
		}
		return sqlx.GetContext(ctx, conn, &created,
			`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	})
	return created, err
}

func (r *UserRepo) ByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

func (r *UserRepo) ByID(ctx context.Context, id int64) (models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg any) (models.User, error) {
	var u models.User
	err := r.db.WithConn(ctx, func(conn *sqlx.Conn) error {
		err := sqlx.GetContext(ctx, conn, &u, query, arg)
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrUserNotFound()
		}
		if err != nil {
			return fmt.Errorf("select user: %w", err)
		}
		return nil
	})
	return u, err
}
