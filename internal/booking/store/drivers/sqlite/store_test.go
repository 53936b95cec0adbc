package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/medbook/internal/booking/domain"
	"github.com/aussiebroadwan/medbook/internal/booking/store"
	"github.com/aussiebroadwan/medbook/internal/booking/store/drivers/sqlite"
	"github.com/aussiebroadwan/medbook/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func seedUser(t *testing.T, st store.Store, email string, role domain.Role) domain.User {
	t.Helper()
	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         "",
		PasswordHash: "$argon2id$dummy",
		Role:         role,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func TestMigrationsAreIdempotent(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(context.Background()))
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	pat := seedUser(t, st, "pat@example.com", domain.RolePatient)
	doc := seedUser(t, st, "doc@example.com", domain.RoleDoctor)
	seedUser(t, st, "adoc@example.com", domain.RoleDoctor)

	t.Run("lookup by id and email", func(t *testing.T) {
		byID, err := st.Users().GetUserByID(ctx, pat.ID)
		require.NoError(t, err)
		require.Equal(t, "pat@example.com", byID.Email)
		require.Equal(t, domain.RolePatient, byID.Role)
		require.False(t, byID.CreatedAt.IsZero())

		byEmail, err := st.Users().GetUserByEmail(ctx, "doc@example.com")
		require.NoError(t, err)
		require.Equal(t, doc.ID, byEmail.ID)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := st.Users().GetUserByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)

		err = st.Users().UpdateName(ctx, idx.New().String(), "x")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := st.Users().CreateUser(ctx, domain.User{
			ID:           idx.New().String(),
			Email:        "pat@example.com",
			PasswordHash: "other",
			Role:         domain.RolePatient,
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		kept, err := st.Users().GetUserByEmail(ctx, "pat@example.com")
		require.NoError(t, err)
		require.Equal(t, pat.ID, kept.ID)
		require.Equal(t, "$argon2id$dummy", kept.PasswordHash)
	})

	t.Run("updates", func(t *testing.T) {
		require.NoError(t, st.Users().UpdateName(ctx, pat.ID, "Pat"))
		require.NoError(t, st.Users().UpdateCalendarID(ctx, doc.ID, "doc@group.calendar.google.com"))
		require.NoError(t, st.Users().UpdatePasswordHash(ctx, pat.ID, "$argon2id$new"))

		got, err := st.Users().GetUserByID(ctx, pat.ID)
		require.NoError(t, err)
		require.Equal(t, "Pat", got.Name)
		require.Equal(t, "$argon2id$new", got.PasswordHash)

		gotDoc, err := st.Users().GetUserByID(ctx, doc.ID)
		require.NoError(t, err)
		require.Equal(t, "doc@group.calendar.google.com", gotDoc.CalendarID)
	})

	t.Run("list and count by role", func(t *testing.T) {
		docs, err := st.Users().ListUsersByRole(ctx, domain.RoleDoctor)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		require.Equal(t, "adoc@example.com", docs[0].Email)
		require.Equal(t, "doc@example.com", docs[1].Email)

		n, err := st.Users().CountUsersByRole(ctx, domain.RolePatient)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)
	})
}

func TestAppointments(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	pat := seedUser(t, st, "pat@example.com", domain.RolePatient)
	other := seedUser(t, st, "other@example.com", domain.RolePatient)
	doc := seedUser(t, st, "doc@example.com", domain.RoleDoctor)

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	mk := func(patientID string, at time.Time) domain.Appointment {
		a := domain.Appointment{
			ID:        idx.New().String(),
			PatientID: patientID,
			DoctorID:  doc.ID,
			Time:      at,
			Reason:    "checkup",
		}
		require.NoError(t, st.Appointments().CreateAppointment(ctx, a))
		return a
	}

	late := mk(pat.ID, base.Add(2*time.Hour))
	early := mk(pat.ID, base.Add(500*time.Microsecond))
	mk(other.ID, base.Add(time.Hour))

	t.Run("defaults to confirmed", func(t *testing.T) {
		got, err := st.Appointments().GetAppointmentByID(ctx, early.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StatusConfirmed, got.Status)
		require.True(t, base.Add(500*time.Microsecond).Equal(got.Time))
		require.Equal(t, time.UTC, got.Time.Location())
	})

	t.Run("patient list is isolated and ordered", func(t *testing.T) {
		views, err := st.Appointments().ListByPatient(ctx, pat.ID)
		require.NoError(t, err)
		require.Len(t, views, 2)
		require.Equal(t, early.ID, views[0].ID)
		require.Equal(t, late.ID, views[1].ID)
		require.Equal(t, "doc@example.com", views[0].DoctorEmail)
		require.Equal(t, "pat@example.com", views[0].PatientEmail)
	})

	t.Run("doctor list sees everyone", func(t *testing.T) {
		views, err := st.Appointments().ListByDoctor(ctx, doc.ID)
		require.NoError(t, err)
		require.Len(t, views, 3)
		require.Equal(t, early.ID, views[0].ID)
		require.Equal(t, "other@example.com", views[1].PatientEmail)
	})

	t.Run("status update", func(t *testing.T) {
		require.NoError(t, st.Appointments().UpdateStatus(ctx, late.ID, domain.StatusAttended))
		got, err := st.Appointments().GetAppointmentByID(ctx, late.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StatusAttended, got.Status)

		err = st.Appointments().UpdateStatus(ctx, idx.New().String(), domain.StatusAttended)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unknown participant", func(t *testing.T) {
		err := st.Appointments().CreateAppointment(ctx, domain.Appointment{
			ID:        idx.New().String(),
			PatientID: pat.ID,
			DoctorID:  idx.New().String(),
			Time:      base,
		})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("missing appointment", func(t *testing.T) {
		_, err := st.Appointments().GetAppointmentByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	boom := errors.New("boom")

	err := st.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Users().CreateUser(ctx, domain.User{
			ID:           idx.New().String(),
			Email:        "ghost@example.com",
			PasswordHash: "x",
			Role:         domain.RolePatient,
		}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = st.Users().GetUserByEmail(ctx, "ghost@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}
