package repository

import (
	"context"
	"errors"
	"fmt"

	"loja-api/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint violation.
const uniqueViolation = "23505"

// withConn checks one connection out of the pool, runs fn on it and releases
// it on every exit path. Mutating repository methods go through here so a
// failed statement can never leak a connection.
func withConn(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger, fn func(conn *pgxpool.Conn) error) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to acquire connection")
		return fmt.Errorf("%w: %w", model.ErrStoreConnection, err)
	}
	defer conn.Release()

	return fn(conn)
}

// queryError marks err as a failed statement.
func queryError(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", model.ErrStoreQuery, msg, err)
}

// isUniqueViolation reports whether err came from a unique constraint.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
