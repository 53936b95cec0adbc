package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/medbook/internal/booking/domain"
	"github.com/aussiebroadwan/medbook/internal/booking/store"
	"github.com/aussiebroadwan/medbook/pkg/cryptox"
	"github.com/aussiebroadwan/medbook/pkg/idx"
	"github.com/aussiebroadwan/medbook/pkg/slogx"
)

// DoctorSeed is one doctor account created by Bootstrap.
type DoctorSeed struct {
	Email      string
	Password   string
	Name       string
	Phone      string
	CalendarID string
}

// BootstrapService seeds the initial doctor accounts. It works once: as
// soon as any doctor exists further attempts are rejected.
type BootstrapService struct {
	Store store.Store
	Token string // empty disables bootstrap
}

func (s *BootstrapService) Enabled() bool { return s.Token != "" }

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	n, err := s.Store.Users().CountUsersByRole(ctx, domain.RoleDoctor)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Bootstrap creates every seed in one transaction and returns their ids in
// input order.
func (s *BootstrapService) Bootstrap(ctx context.Context, token string, seeds []DoctorSeed) ([]string, error) {
	l := slogx.FromContext(ctx)

	if !s.Enabled() {
		return nil, ErrBootstrapDisabled
	}

	if !cryptox.TokensEqual(token, s.Token) {
		l.Warn("unauthorized bootstrap attempt", slog.String("token_fingerprint", cryptox.FingerprintToken(token)))
		return nil, fmt.Errorf("%w: invalid bootstrap token", ErrUnauthorized)
	}

	if done, err := s.IsBootstrapped(ctx); err != nil {
		return nil, err
	} else if done {
		l.Warn("attempted bootstrap on already-bootstrapped system")
		return nil, ErrBootstrapDone
	}

	if len(seeds) == 0 {
		return nil, fmt.Errorf("%w: at least one doctor is required", ErrBadRequest)
	}

	users := make([]domain.User, 0, len(seeds))
	seen := make(map[string]bool, len(seeds))
	for i, seed := range seeds {
		email := NormalizeEmail(seed.Email)
		if email == "" || seed.Password == "" {
			return nil, fmt.Errorf("%w: doctors[%d]: email and password are required", ErrBadRequest, i)
		}
		if seen[email] {
			return nil, fmt.Errorf("%w: doctors[%d]: duplicate email %s", ErrBadRequest, i, email)
		}
		seen[email] = true

		hash, err := cryptox.HashPassword(seed.Password)
		if err != nil {
			l.Error("failed to hash doctor password", slog.Any("error", err))
			return nil, err
		}

		users = append(users, domain.User{
			ID:           idx.New().String(),
			Email:        email,
			Name:         strings.TrimSpace(seed.Name),
			PasswordHash: hash,
			PhoneNumber:  strings.TrimSpace(seed.Phone),
			Role:         domain.RoleDoctor,
			CalendarID:   strings.TrimSpace(seed.CalendarID),
		})
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, u := range users {
			if err := tx.Users().CreateUser(ctx, u); err != nil {
				if errors.Is(err, store.ErrAlreadyExists) {
					return fmt.Errorf("%w: %s", ErrDuplicateEmail, u.Email)
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	l.Info("system bootstrapped", slog.Int("doctors", len(ids)))
	return ids, nil
}
