package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/medbook/internal/booking/domain"
	"github.com/aussiebroadwan/medbook/internal/booking/store"
)

type UserService struct {
	Store store.Store
}

// GetUser fetches a user by id.
func (s *UserService) GetUser(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	return u, err
}

// ListDoctors returns every doctor ordered by email.
func (s *UserService) ListDoctors(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsersByRole(ctx, domain.RoleDoctor)
}

// UpdateProfile lets a user change their own name. A nil name is a no-op.
func (s *UserService) UpdateProfile(ctx context.Context, caller domain.Identity, userID string, name *string) (domain.User, error) {
	if caller.UserID != userID {
		return domain.User{}, fmt.Errorf("%w: cannot update another user's profile", ErrForbidden)
	}

	if name != nil {
		if err := s.Store.Users().UpdateName(ctx, userID, strings.TrimSpace(*name)); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.User{}, fmt.Errorf("%w: user not found", ErrNotFound)
			}
			return domain.User{}, err
		}
	}
	return s.GetUser(ctx, userID)
}

// UpdateCalendarID sets the calendar a doctor's events are mirrored to.
func (s *UserService) UpdateCalendarID(ctx context.Context, caller domain.Identity, doctorID, calendarID string) (domain.User, error) {
	switch caller.Role {
	case domain.RoleDoctor:
		if caller.UserID != doctorID {
			return domain.User{}, fmt.Errorf("%w: cannot update another doctor's calendar", ErrForbidden)
		}
	default:
		return domain.User{}, fmt.Errorf("%w: only doctors have a calendar", ErrForbidden)
	}

	calendarID = strings.TrimSpace(calendarID)
	if calendarID == "" {
		return domain.User{}, fmt.Errorf("%w: calendar_id is required", ErrBadRequest)
	}

	if err := s.Store.Users().UpdateCalendarID(ctx, doctorID, calendarID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return domain.User{}, err
	}
	return s.GetUser(ctx, doctorID)
}
