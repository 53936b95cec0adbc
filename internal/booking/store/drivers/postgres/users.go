package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/medbook/internal/booking/domain"
	"github.com/jackc/pgx/v5"
)

type usersRepo struct {
	db  dbtx
	now func() time.Time
}

const userColumns = `id, email, name, password_hash, phone_number, role, calendar_id, created_at, updated_at`

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u            domain.User
		role         string
		phone, calID *string
	)
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &phone, &role, &calID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, err
	}
	u.Role = domain.Role(role)
	u.PhoneNumber = deref(phone)
	u.CalendarID = deref(calID)
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	return u, mapNotFound(err)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	return u, mapNotFound(err)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := r.now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID, u.Email, u.Name, u.PasswordHash, nullable(u.PhoneNumber),
		string(u.Role), nullable(u.CalendarID), u.CreatedAt, now,
	)
	return mapWriteError(err)
}

func (r *usersRepo) UpdateName(ctx context.Context, userID, name string) error {
	return affected(r.db.Exec(ctx,
		`UPDATE users SET name = $1, updated_at = $2 WHERE id = $3`, name, r.now(), userID))
}

func (r *usersRepo) UpdateCalendarID(ctx context.Context, userID, calendarID string) error {
	return affected(r.db.Exec(ctx,
		`UPDATE users SET calendar_id = $1, updated_at = $2 WHERE id = $3`, nullable(calendarID), r.now(), userID))
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, newHash string) error {
	return affected(r.db.Exec(ctx,
		`UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`, newHash, r.now(), userID))
}

func (r *usersRepo) ListUsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY email`, string(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) CountUsersByRole(ctx context.Context, role domain.Role) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, string(role)).Scan(&n)
	return n, err
}
