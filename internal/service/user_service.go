package service

import (
	"context"
	"errors"
	"fmt"

	"loja-api/internal/auth"
	"loja-api/internal/model"
	"loja-api/internal/repository"

	"github.com/rs/zerolog"
)

// userService implements UserService.
type userService struct {
	userRepo repository.UserRepository
	hasher   auth.PasswordHasher
	tokens   auth.TokenIssuer
	logger   zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(
	userRepo repository.UserRepository,
	hasher auth.PasswordHasher,
	tokens auth.TokenIssuer,
	logger zerolog.Logger,
) UserService {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// Register checks the email is unused, hashes the password, then inserts the user.
func (s *userService) Register(ctx context.Context, req *model.CredentialsRequest) (*model.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, model.ErrMissingCredentials
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to look up email")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	if existing != nil {
		s.logger.Warn().Str("email", req.Email).Msg("email already registered")
		return nil, model.ErrEmailAlreadyRegistered
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrEmailAlreadyRegistered) {
			return nil, err
		}
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user registered")

	return user, nil
}

// Login returns a token when the email exists and the password matches its hash.
func (s *userService) Login(ctx context.Context, req *model.CredentialsRequest) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to look up user")
		return "", fmt.Errorf("failed to log in: %w", err)
	}

	if user == nil {
		s.logger.Warn().Str("email", req.Email).Msg("login for unknown email")
		return "", model.ErrAuthenticationFailed
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", user.ID).Msg("password check failed")
		return "", model.ErrAuthenticationFailed
	}

	token, err := s.tokens.Issue(auth.Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to issue token")
		return "", fmt.Errorf("failed to log in: %w", err)
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user logged in")

	return token, nil
}
