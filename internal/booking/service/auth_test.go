package service_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/medbook/internal/booking/domain"
	"github.com/aussiebroadwan/medbook/internal/booking/service"
	"github.com/aussiebroadwan/medbook/pkg/cryptox"
	"github.com/aussiebroadwan/medbook/pkg/idx"
	"github.com/aussiebroadwan/medbook/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	u, err := f.auth.Register(ctx, service.RegisterInput{
		Email:    "  Pat@Example.com ",
		Password: "secret",
		Name:     "Pat",
		Phone:    "555",
	})
	require.NoError(t, err)
	require.Equal(t, "pat@example.com", u.Email)
	require.Equal(t, domain.RolePatient, u.Role)
	require.True(t, idx.Valid(u.ID))
	require.NotEqual(t, "secret", u.PasswordHash)

	t.Run("duplicate email keeps the first record", func(t *testing.T) {
		_, err := f.auth.Register(ctx, service.RegisterInput{Email: "pat@example.com", Password: "other", Name: "Imposter"})
		require.ErrorIs(t, err, service.ErrDuplicateEmail)

		stored, err := f.store.Users().GetUserByEmail(ctx, "pat@example.com")
		require.NoError(t, err)
		require.Equal(t, u.ID, stored.ID)
		require.Equal(t, "Pat", stored.Name)
	})

	t.Run("missing fields", func(t *testing.T) {
		for _, in := range []service.RegisterInput{
			{Password: "x"},
			{Email: "a@example.com"},
			{Email: "   ", Password: "x"},
		} {
			_, err := f.auth.Register(ctx, in)
			require.ErrorIs(t, err, service.ErrBadRequest)
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.patient(t, "pat@example.com", "Pat")

	tok, u, err := f.auth.Login(ctx, "PAT@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, "Bearer", tok.TokenType)
	require.EqualValues(t, 900, tok.ExpiresIn)
	require.Equal(t, "pat@example.com", u.Email)

	claims, err := f.verifier.Verify(tok.Token)
	require.NoError(t, err)
	require.Equal(t, "pat@example.com", claims.Subject)
	require.Equal(t, string(u.Role), claims.Role)
	require.Equal(t, "medbook", claims.Issuer)

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := f.auth.Login(ctx, "pat@example.com", "nope")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := f.auth.Login(ctx, "ghost@example.com", "secret")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, _, err := f.auth.Login(ctx, "", "secret")
		require.ErrorIs(t, err, service.ErrBadRequest)
	})
}

func TestLoginRehashesLegacyPassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	legacy, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	u := domain.User{ID: idx.New().String(), Email: "old@example.com", PasswordHash: string(legacy), Role: domain.RolePatient}
	require.NoError(t, f.store.Users().CreateUser(ctx, u))

	_, _, err = f.auth.Login(ctx, "old@example.com", "secret")
	require.NoError(t, err)

	stored, err := f.store.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.False(t, cryptox.IsLegacyHash(stored.PasswordHash))
	require.NoError(t, cryptox.VerifyPassword("secret", stored.PasswordHash))

	_, _, err = f.auth.Login(ctx, "old@example.com", "secret")
	require.NoError(t, err)
}

func TestIdentify(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	pat := f.patient(t, "pat@example.com", "Pat")

	tok, _, err := f.auth.Login(ctx, "pat@example.com", "secret")
	require.NoError(t, err)
	claims, err := f.verifier.Verify(tok.Token)
	require.NoError(t, err)

	id, err := f.auth.Identify(ctx, claims)
	require.NoError(t, err)
	require.Equal(t, pat, id)

	t.Run("unknown role claim", func(t *testing.T) {
		bad := claims
		bad.Role = "admin"
		_, err := f.auth.Identify(ctx, bad)
		require.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("unknown subject", func(t *testing.T) {
		ghost := jwtx.Claims{Role: "patient"}
		ghost.Subject = "ghost@example.com"
		_, err := f.auth.Identify(ctx, ghost)
		require.ErrorIs(t, err, service.ErrUnauthorized)
	})
}
