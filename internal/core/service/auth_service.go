package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fintrack/finance-tracker/internal/core/domain"
	"github.com/fintrack/finance-tracker/internal/core/ports"
)

// LoginLimiter abstracts the per-email login throttle (Redis).
type LoginLimiter interface {
	// Allow records an attempt and reports whether the email is still
	// within its attempt budget for the current window.
	Allow(ctx context.Context, email string) (bool, error)
	// Reset clears the attempt counter after a successful login.
	Reset(ctx context.Context, email string) error
}

// AuthService implements registration, login, and account listing.
type AuthService struct {
	repo      ports.AccountRepository
	limiter   LoginLimiter
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, limiter LoginLimiter, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{repo: repo, limiter: limiter, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.Account, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Msg("account registered")
	return created, nil
}

// Login verifies credentials and mints a signed token. Unknown email and
// wrong password both surface as ErrInvalidCredentials so responses cannot
// be used for user enumeration.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	allowed, err := s.limiter.Allow(ctx, email)
	if err != nil {
		// Throttle store down: fail open rather than locking everyone out.
		s.logger.Warn().Err(err).Msg("login throttle check failed, proceeding")
	} else if !allowed {
		return "", nil, domain.ErrTooManyAttempts
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(account)
	if err != nil {
		return "", nil, err
	}

	if err := s.limiter.Reset(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("failed to reset login throttle")
	}

	return token, account, nil
}

func (s *AuthService) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return s.repo.List(ctx)
}

func (s *AuthService) generateToken(account *domain.Account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   account.Email,
		"admin": account.IsAdmin,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
