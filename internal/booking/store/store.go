package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/medbook/internal/booking/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this and expose sub-repositories so transactional work goes
// through the same methods as everything else.
type Store interface {
	Users() Users
	Appointments() Appointments

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction, committing when fn returns nil
	// and rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail expects the already normalised (trimmed, lower-case) email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user. A taken email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	UpdateName(ctx context.Context, userID, name string) error
	UpdateCalendarID(ctx context.Context, userID, calendarID string) error
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	// ListUsersByRole returns users of a role ordered by email.
	ListUsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error)

	CountUsersByRole(ctx context.Context, role domain.Role) (int64, error)
}

type Appointments interface {
	// CreateAppointment inserts a new appointment. Unknown participants
	// yield ErrNotFound.
	CreateAppointment(ctx context.Context, a domain.Appointment) error

	GetAppointmentByID(ctx context.Context, id string) (domain.Appointment, error)

	// UpdateStatus sets the status and bumps updated_at.
	UpdateStatus(ctx context.Context, id string, status domain.Status) error

	// ListByPatient and ListByDoctor return views ordered by appointment
	// time, then id.
	ListByPatient(ctx context.Context, patientID string) ([]domain.AppointmentView, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]domain.AppointmentView, error)
}
