// Package auth registers users and exchanges credentials for bearer tokens.
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"FounderX/internals/apperrors"
	"FounderX/internals/models"
	"FounderX/internals/security"
)

const TokenType = "bearer"

// maxPasswordBytes is the bcrypt input limit.
const maxPasswordBytes = 72

type UserStore interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	ByEmail(ctx context.Context, email string) (models.User, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenSigner interface {
	Sign(subject string, ttl time.Duration) (string, time.Time, error)
	Verify(token string) (security.Claims, error)
}

type Config struct {
	AccessTokenTTL time.Duration
}

type Token struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

type Service struct {
	users  UserStore
	hasher PasswordHasher
	signer TokenSigner
	cfg    Config
}

func NewService(users UserStore, hasher PasswordHasher, signer TokenSigner, cfg Config) *Service {
	if cfg.AccessTokenTTL <= 0 {
		cfg.AccessTokenTTL = 60 * time.Minute
	}
	return &Service{users: users, hasher: hasher, signer: signer, cfg: cfg}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register stores a new user with a bcrypt hash of password. The returned
// user never carries the hash.
func (s *Service) Register(ctx context.Context, name, email, password string) (models.User, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)
	if name == "" {
		return models.User{}, apperrors.ErrInvalidField("name", "required")
	}
	if len(password) > maxPasswordBytes {
		return models.User{}, apperrors.ErrInvalidField("password", "max")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, apperrors.ErrInternal(err)
	}

	created, err := s.users.Create(ctx, models.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}
	created.PasswordHash = ""
	return created, nil
}

// Authenticate verifies email and password and issues an access token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Token, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return Token{}, apperrors.ErrInvalidCredentials()
	}

	u, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, "user_not_found") {
			return Token{}, apperrors.ErrInvalidCredentials()
		}
		return Token{}, fmt.Errorf("authenticate: %w", err)
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return Token{}, apperrors.ErrInvalidCredentials()
	}

	raw, exp, err := s.signer.Sign(u.Email, s.cfg.AccessTokenTTL)
	if err != nil {
		return Token{}, err
	}
	return Token{AccessToken: raw, TokenType: TokenType, ExpiresAt: exp}, nil
}

func (s *Service) Verify(token string) (security.Claims, error) {
	return s.signer.Verify(token)
}

// CurrentUser loads the user named by a verified token subject.
func (s *Service) CurrentUser(ctx context.Context, email string) (models.User, error) {
	u, err := s.users.ByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return models.User{}, err
	}
	u.PasswordHash = ""
	return u, nil
}
