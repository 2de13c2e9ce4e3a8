package repository

import (
	"context"
	"errors"

	"loja-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// userRepository implements the UserRepository interface using PostgreSQL.
type userRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewUserRepository creates a new PostgreSQL-backed user repository.
func NewUserRepository(pool *pgxpool.Pool, logger zerolog.Logger) UserRepository {
	return &userRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

// GetByEmail retrieves a user by email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id_usuario, email, senha
		FROM usuarios
		WHERE email = $1
	`

	var u model.User
	err := r.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("email", email).Msg("user not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query user")
		return nil, queryError("failed to query user", err)
	}

	return &u, nil
}

// Create inserts a user and sets its generated ID.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO usuarios (email, senha)
		VALUES ($1, $2)
		RETURNING id_usuario
	`

	return withConn(ctx, r.pool, r.logger, func(conn *pgxpool.Conn) error {
		err := conn.QueryRow(ctx, query, user.Email, user.PasswordHash).Scan(&user.ID)
		if err != nil {
			if isUniqueViolation(err) {
				r.logger.Warn().Str("email", user.Email).Msg("email already registered")
				return model.ErrEmailAlreadyRegistered
			}
			r.logger.Error().Err(err).Str("email", user.Email).Msg("failed to insert user")
			return queryError("failed to insert user", err)
		}

		r.logger.Debug().Int64("user_id", user.ID).Msg("user created successfully")
		return nil
	})
}
