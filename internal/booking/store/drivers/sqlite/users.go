package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/medbook/internal/booking/domain"
	"github.com/aussiebroadwan/medbook/internal/booking/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q   *gen.Queries
	now func() time.Time
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := r.now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	return mapWriteError(r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		PhoneNumber:  mapStringNull(u.PhoneNumber),
		Role:         string(u.Role),
		CalendarID:   mapStringNull(u.CalendarID),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    now,
	}))
}

func (r *usersRepo) UpdateName(ctx context.Context, userID, name string) error {
	return affected(r.q.UpdateUserName(ctx, gen.UpdateUserNameParams{
		Name:      name,
		UpdatedAt: r.now(),
		ID:        userID,
	}))
}

func (r *usersRepo) UpdateCalendarID(ctx context.Context, userID, calendarID string) error {
	return affected(r.q.UpdateUserCalendarID(ctx, gen.UpdateUserCalendarIDParams{
		CalendarID: mapStringNull(calendarID),
		UpdatedAt:  r.now(),
		ID:         userID,
	}))
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, newHash string) error {
	return affected(r.q.UpdateUserPasswordHash(ctx, gen.UpdateUserPasswordHashParams{
		PasswordHash: newHash,
		UpdatedAt:    r.now(),
		ID:           userID,
	}))
}

func (r *usersRepo) ListUsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	rows, err := r.q.ListUsersByRole(ctx, string(role))
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapUser(row))
	}
	return out, nil
}

func (r *usersRepo) CountUsersByRole(ctx context.Context, role domain.Role) (int64, error) {
	return r.q.CountUsersByRole(ctx, string(role))
}
