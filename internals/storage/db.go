// Package storage owns the sqlite store: connection pool, schema migrations
// and the user/startup repositories.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"FounderX/internals/apperrors"
)

type DB struct {
	*sqlx.DB
}

// Open opens the sqlite pool described by dsn. Like sql.Open it does not
// connect; call Ping to check the store is reachable.
func Open(dsn string) (*DB, error) {
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return &DB{DB: db}, nil
}

// Wrap adopts an existing handle, used with go-sqlmock in tests.
func Wrap(db *sqlx.DB) *DB {
	return &DB{DB: db}
}

// Ping satisfies the health checker used by the HTTP layer.
func (d *DB) Ping(ctx context.Context) error {
	return d.PingContext(ctx)
}

// WithConn acquires a dedicated connection from the pool, runs fn with it and
// releases the connection on every exit path, including a panic in fn.
func (d *DB) WithConn(ctx context.Context, fn func(conn *sqlx.Conn) error) error {
	conn, err := d.Connx(ctx)
	if err != nil {
		return apperrors.ErrUnavailable(fmt.Errorf("acquire connection: %w", err))
	}
	defer conn.Close()

	return fn(conn)
}

func isConstraint(err error, code sqlite3.ErrNoExtended) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == code
	}
	return false
}
