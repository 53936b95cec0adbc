package service_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/medbook/internal/booking/service"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.patient(t, "a@example.com", "A")
	b := f.patient(t, "b@example.com", "B")

	name := "  Alice "
	u, err := f.users.UpdateProfile(ctx, a, a.UserID, &name)
	require.NoError(t, err)
	require.Equal(t, "Alice", u.Name)

	u, err = f.users.UpdateProfile(ctx, a, a.UserID, nil)
	require.NoError(t, err)
	require.Equal(t, "Alice", u.Name)

	_, err = f.users.UpdateProfile(ctx, a, b.UserID, &name)
	require.ErrorIs(t, err, service.ErrForbidden)

	stored, err := f.users.GetUser(ctx, b.UserID)
	require.NoError(t, err)
	require.Equal(t, "B", stored.Name)
}

func TestUpdateCalendarID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	doc := f.doctor(t, "doc@example.com")
	other := f.doctor(t, "other@example.com")
	pat := f.patient(t, "pat@example.com", "")

	u, err := f.users.UpdateCalendarID(ctx, doc, doc.UserID, " cal@group.calendar.google.com ")
	require.NoError(t, err)
	require.Equal(t, "cal@group.calendar.google.com", u.CalendarID)

	_, err = f.users.UpdateCalendarID(ctx, other, doc.UserID, "x")
	require.ErrorIs(t, err, service.ErrForbidden)

	_, err = f.users.UpdateCalendarID(ctx, pat, pat.UserID, "x")
	require.ErrorIs(t, err, service.ErrForbidden)

	_, err = f.users.UpdateCalendarID(ctx, doc, doc.UserID, "  ")
	require.ErrorIs(t, err, service.ErrBadRequest)
}

func TestListDoctors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.doctor(t, "zed@example.com")
	f.doctor(t, "amy@example.com")
	f.patient(t, "pat@example.com", "")

	docs, err := f.users.ListDoctors(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.Equal(t, "amy@example.com", docs[0].Email)
	require.Equal(t, "zed@example.com", docs[1].Email)
}
