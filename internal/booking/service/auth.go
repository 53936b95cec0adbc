package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/medbook/internal/booking/domain"
	"github.com/aussiebroadwan/medbook/internal/booking/store"
	"github.com/aussiebroadwan/medbook/pkg/cryptox"
	"github.com/aussiebroadwan/medbook/pkg/idx"
	"github.com/aussiebroadwan/medbook/pkg/jwtx"
	"github.com/aussiebroadwan/medbook/pkg/slogx"
)

// DefaultAudience is the aud claim on every access token.
var DefaultAudience = []string{"booking"}

type AuthService struct {
	Store     store.Store
	Signer    jwtx.Signer
	Issuer    string
	Audience  []string
	AccessTTL time.Duration

	// Now is overridable for tests.
	Now func() time.Time
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// AccessToken is a minted bearer token.
type AccessToken struct {
	Token     string
	TokenType string
	ExpiresIn int64 // seconds
}

// NormalizeEmail trims and lower-cases an address. Every lookup and insert
// goes through it so the unique index is effectively case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *AuthService) ttl() time.Duration {
	if s.AccessTTL > 0 {
		return s.AccessTTL
	}
	return jwtx.DefaultAccessTokenTTL
}

// Register creates a patient account. The role is never taken from input.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	l := slogx.FromContext(ctx)

	email := NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return domain.User{}, fmt.Errorf("%w: email and password are required", ErrBadRequest)
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		l.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		PasswordHash: hash,
		PhoneNumber:  strings.TrimSpace(in.Phone),
		Role:         domain.RolePatient,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, fmt.Errorf("%w: %s", ErrDuplicateEmail, email)
		}
		return domain.User{}, err
	}

	l.Info("user registered", slog.String("user_id", u.ID))
	return u, nil
}

// Login checks the password and mints an access token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (AccessToken, domain.User, error) {
	l := slogx.FromContext(ctx)

	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return AccessToken{}, domain.User{}, fmt.Errorf("%w: email and password are required", ErrBadRequest)
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AccessToken{}, domain.User{}, ErrInvalidCredentials
		}
		return AccessToken{}, domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrMismatch) {
			l.Warn("stored password hash unusable", slog.String("user_id", u.ID), slog.Any("error", err))
		}
		return AccessToken{}, domain.User{}, ErrInvalidCredentials
	}

	if cryptox.NeedsRehash(u.PasswordHash) {
		s.rehash(ctx, u.ID, password)
	}

	claims := jwtx.NewAccessClaims(u.Email, u.Role.String(), s.ttl(), s.Issuer, s.audience(), u.Name, s.now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		l.Error("failed to sign access token", slog.Any("error", err))
		return AccessToken{}, domain.User{}, err
	}

	return AccessToken{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.ttl().Seconds()),
	}, u, nil
}

// rehash upgrades a legacy hash. Failure only costs another rehash on the
// next login, so it is logged and ignored.
func (s *AuthService) rehash(ctx context.Context, userID, password string) {
	l := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(password)
	if err == nil {
		err = s.Store.Users().UpdatePasswordHash(ctx, userID, hash)
	}
	if err != nil {
		l.Warn("password rehash failed", slog.String("user_id", userID), slog.Any("error", err))
		return
	}
	l.Info("password rehashed", slog.String("user_id", userID))
}

func (s *AuthService) audience() []string {
	if len(s.Audience) > 0 {
		return s.Audience
	}
	return DefaultAudience
}

// Identify resolves verified claims to the caller. The role comes from the
// token, the id and name from the account the subject names.
func (s *AuthService) Identify(ctx context.Context, claims jwtx.Claims) (domain.Identity, error) {
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: invalid role claim", ErrUnauthorized)
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, NormalizeEmail(claims.Subject))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Identity{}, fmt.Errorf("%w: unknown subject", ErrUnauthorized)
		}
		return domain.Identity{}, err
	}

	return domain.Identity{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   role,
	}, nil
}
