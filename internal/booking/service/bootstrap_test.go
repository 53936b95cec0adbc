package service_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/medbook/internal/booking/domain"
	"github.com/aussiebroadwan/medbook/internal/booking/service"
	"github.com/stretchr/testify/require"
)

func TestBootstrap(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	seeds := []service.DoctorSeed{
		{Email: "House@Example.com", Password: "vicodin", Name: "Greg House"},
		{Email: "wilson@example.com", Password: "oncology", CalendarID: "wilson-cal"},
	}

	t.Run("wrong token", func(t *testing.T) {
		_, err := f.bootstrap.Bootstrap(ctx, "nope", seeds)
		require.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("empty and invalid seeds", func(t *testing.T) {
		_, err := f.bootstrap.Bootstrap(ctx, "boot-token", nil)
		require.ErrorIs(t, err, service.ErrBadRequest)

		_, err = f.bootstrap.Bootstrap(ctx, "boot-token", []service.DoctorSeed{{Email: "a@example.com"}})
		require.ErrorIs(t, err, service.ErrBadRequest)

		_, err = f.bootstrap.Bootstrap(ctx, "boot-token", []service.DoctorSeed{
			{Email: "a@example.com", Password: "x"},
			{Email: "A@example.com", Password: "y"},
		})
		require.ErrorIs(t, err, service.ErrBadRequest)
	})

	ids, err := f.bootstrap.Bootstrap(ctx, "boot-token", seeds)
	require.NoError(t, err)
	require.Len(t, ids, 2)

	house, err := f.store.Users().GetUserByID(ctx, ids[0])
	require.NoError(t, err)
	require.Equal(t, "house@example.com", house.Email)
	require.Equal(t, domain.RoleDoctor, house.Role)

	_, u, err := f.auth.Login(ctx, "wilson@example.com", "oncology")
	require.NoError(t, err)
	require.Equal(t, "wilson-cal", u.CalendarID)

	t.Run("only once", func(t *testing.T) {
		_, err := f.bootstrap.Bootstrap(ctx, "boot-token", []service.DoctorSeed{{Email: "c@example.com", Password: "x"}})
		require.ErrorIs(t, err, service.ErrBootstrapDone)
	})
}

func TestBootstrapDisabled(t *testing.T) {
	f := newFixture(t)
	f.bootstrap.Token = ""

	_, err := f.bootstrap.Bootstrap(context.Background(), "", []service.DoctorSeed{{Email: "a@example.com", Password: "x"}})
	require.ErrorIs(t, err, service.ErrBootstrapDisabled)
}

func TestBootstrapDuplicateOfExistingPatient(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.patient(t, "taken@example.com", "")

	_, err := f.bootstrap.Bootstrap(ctx, "boot-token", []service.DoctorSeed{
		{Email: "fresh@example.com", Password: "x"},
		{Email: "taken@example.com", Password: "y"},
	})
	require.ErrorIs(t, err, service.ErrDuplicateEmail)

	n, err := f.store.Users().CountUsersByRole(ctx, domain.RoleDoctor)
	require.NoError(t, err)
	require.Zero(t, n, "transaction rolled back")
}
