package auth

import (
	"context"
	"errors"
	"net/mail"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/triviaworks/trivia-api/internal/db/repository"
)

const (
	minPasswordLength = 8
	bcryptCost        = 12
)

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// UserStore is the persistence surface auth needs, implemented by
// repository.UserRepository.
type UserStore interface {
	Create(ctx context.Context, email, passwordHash string) (repository.User, error)
	GetByEmail(ctx context.Context, email string) (repository.User, error)
}

// Service implements account registration and login.
type Service struct {
	users  UserStore
	tokens *TokenManager
	logger zerolog.Logger
}

func NewService(users UserStore, tokens *TokenManager, logger zerolog.Logger) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		logger: logger.With().Str("component", "auth_service").Logger(),
	}
}

// Register creates an account and returns it with a fresh token.
func (s *Service) Register(ctx context.Context, email, password string) (repository.User, string, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return repository.User{}, "", ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return repository.User{}, "", ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return repository.User{}, "", err
	}

	user, err := s.users.Create(ctx, email, string(hash))
	if err != nil {
		if errors.Is(err, repository.ErrConstraint) {
			return repository.User{}, "", ErrEmailTaken
		}
		return repository.User{}, "", err
	}
	s.logger.Info().Str("user_id", user.ID.String()).Msg("user registered")

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return repository.User{}, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the account with a fresh token.
func (s *Service) Login(ctx context.Context, email, password string) (repository.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.User{}, "", ErrInvalidCredentials
		}
		return repository.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return repository.User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return repository.User{}, "", err
	}
	return user, token, nil
}

// ValidateToken checks a bearer token and returns its claims.
func (s *Service) ValidateToken(token string) (*Claims, error) {
	return s.tokens.Validate(token)
}
