package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/medbook/pkg/bookingsdk"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	id, err := env.client.Register(ctx, bookingsdk.RegisterRequest{Email: "Pat@Example.com", Password: "pw", Name: "Pat"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	t.Run("duplicate is a conflict", func(t *testing.T) {
		_, err := env.client.Register(ctx, bookingsdk.RegisterRequest{Email: "pat@example.com", Password: "pw"})
		require.True(t, bookingsdk.IsConflict(err), "got %v", err)
	})

	t.Run("missing password", func(t *testing.T) {
		_, err := env.client.Register(ctx, bookingsdk.RegisterRequest{Email: "x@example.com"})
		require.True(t, bookingsdk.IsBadRequest(err), "got %v", err)
	})

	t.Run("legacy field names", func(t *testing.T) {
		body := []byte(`{"email":"ana@example.com","password":"pw","nombre":"Ana","telefono":"555"}`)
		resp, err := http.Post(env.server.URL+"/register", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		s, err := env.client.Login(ctx, "ana@example.com", "pw")
		require.NoError(t, err)
		require.Equal(t, "Ana", s.User().Name)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		resp, err := http.Post(env.server.URL+"/register", "application/json", bytes.NewReader([]byte(`{"email":`)))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var er bookingsdk.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&er))
		require.Equal(t, bookingsdk.ErrorCodeBadRequest, er.Error)
	})

	s, err := env.client.Login(ctx, "pat@example.com", "pw")
	require.NoError(t, err)
	require.NotEmpty(t, s.AccessToken())
	require.Equal(t, id, s.User().ID)
	require.Equal(t, "patient", s.User().Role)
	require.False(t, s.Expired())

	_, err = env.client.Login(ctx, "pat@example.com", "wrong")
	require.True(t, bookingsdk.IsUnauthorized(err), "got %v", err)
}

func TestBootstrapEndpoint(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	req := bookingsdk.BootstrapRequest{Doctors: []bookingsdk.BootstrapDoctor{{Email: "doc@example.com", Password: "pw"}}}

	_, err := env.client.Bootstrap(ctx, "", req)
	require.True(t, bookingsdk.IsUnauthorized(err), "got %v", err)

	_, err = env.client.Bootstrap(ctx, "wrong", req)
	require.True(t, bookingsdk.IsUnauthorized(err), "got %v", err)

	resp, err := env.client.Bootstrap(ctx, bootstrapToken, req)
	require.NoError(t, err)
	require.Len(t, resp.IDs, 1)

	_, err = env.client.Bootstrap(ctx, bootstrapToken, req)
	require.True(t, bookingsdk.IsConflict(err), "got %v", err)

	docs, err := env.client.ListDoctors(ctx)
	require.NoError(t, err)
	require.Equal(t, []bookingsdk.Doctor{{ID: resp.IDs[0], Email: "doc@example.com"}}, docs)
}

func TestAppointmentFlow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ids := env.seedDoctors(t, "doc@example.com", "other@example.com")
	docID := ids[0]

	pat := env.patient(t, "pat@example.com", "Pat")
	pat2 := env.patient(t, "pat2@example.com", "")
	doc := env.doctor(t, "doc@example.com")
	other := env.doctor(t, "other@example.com")

	apptID, err := pat.CreateAppointment(ctx, bookingsdk.CreateAppointmentRequest{
		DoctorID:        docID,
		AppointmentTime: "2025-03-01T10:00:00Z",
		Reason:          "checkup",
	})
	require.NoError(t, err)
	require.Equal(t, 1, env.calendar.count())

	t.Run("validation", func(t *testing.T) {
		_, err := pat.CreateAppointment(ctx, bookingsdk.CreateAppointmentRequest{DoctorID: docID})
		require.True(t, bookingsdk.IsBadRequest(err), "got %v", err)

		_, err = pat.CreateAppointment(ctx, bookingsdk.CreateAppointmentRequest{DoctorID: docID, AppointmentTime: "soon"})
		require.True(t, bookingsdk.IsBadRequest(err), "got %v", err)
	})

	t.Run("doctor cannot book", func(t *testing.T) {
		_, err := doc.CreateAppointment(ctx, bookingsdk.CreateAppointmentRequest{DoctorID: docID, AppointmentTime: "2025-03-01T10:00:00Z"})
		require.True(t, bookingsdk.IsForbidden(err), "got %v", err)
	})

	t.Run("no token", func(t *testing.T) {
		resp, err := http.Get(env.server.URL + "/appointments")
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer")
	})

	t.Run("listings are isolated", func(t *testing.T) {
		mine, err := pat.ListAppointments(ctx)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		require.Equal(t, apptID, mine[0].ID)
		require.Equal(t, "2025-03-01T10:00:00+00:00", mine[0].AppointmentTime)
		require.Equal(t, "Confirmed", mine[0].Status)
		require.Equal(t, "doc@example.com", mine[0].DoctorEmail)

		theirs, err := pat2.ListAppointments(ctx)
		require.NoError(t, err)
		require.Empty(t, theirs)

		docs, err := doc.ListAppointments(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		require.Equal(t, "pat@example.com", docs[0].PatientEmail)
		require.Equal(t, "Pat", docs[0].PatientName)

		others, err := other.ListAppointments(ctx)
		require.NoError(t, err)
		require.Empty(t, others)
	})

	t.Run("status updates", func(t *testing.T) {
		err := doc.UpdateAppointmentStatus(ctx, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", "Attended")
		require.True(t, bookingsdk.IsNotFound(err), "got %v", err)

		err = pat.UpdateAppointmentStatus(ctx, apptID, "Attended")
		require.True(t, bookingsdk.IsForbidden(err), "got %v", err)

		err = other.UpdateAppointmentStatus(ctx, apptID, "Attended")
		require.True(t, bookingsdk.IsForbidden(err), "got %v", err)

		err = doc.UpdateAppointmentStatus(ctx, apptID, "Cancelled")
		require.True(t, bookingsdk.IsBadRequest(err), "got %v", err)

		require.NoError(t, doc.UpdateAppointmentStatus(ctx, apptID, "Attended"))
		require.NoError(t, doc.UpdateAppointmentStatus(ctx, apptID, "Attended"))

		err = doc.UpdateAppointmentStatus(ctx, apptID, "No-Show")
		require.True(t, bookingsdk.IsBadRequest(err), "got %v", err)

		mine, err := pat.ListAppointments(ctx)
		require.NoError(t, err)
		require.Equal(t, "Attended", mine[0].Status)
	})
}

func TestBookingSurvivesCalendarFailure(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.calendar.err = errors.New("calendar is down")
	ids := env.seedDoctors(t, "doc@example.com")
	pat := env.patient(t, "pat@example.com", "")

	id, err := pat.CreateAppointment(ctx, bookingsdk.CreateAppointmentRequest{DoctorID: ids[0], AppointmentTime: "2025-03-01T10:00:00"})
	require.NoError(t, err)

	mine, err := pat.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, id, mine[0].ID)
	require.Equal(t, "Confirmed", mine[0].Status)
}

func TestProfileAndCalendar(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ids := env.seedDoctors(t, "doc@example.com", "other@example.com")
	a := env.patient(t, "a@example.com", "A")
	b := env.patient(t, "b@example.com", "B")
	doc := env.doctor(t, "doc@example.com")

	name := "Alice"
	require.NoError(t, a.UpdateProfile(ctx, a.User().ID, bookingsdk.UpdateProfileRequest{Name: &name}))

	err := a.UpdateProfile(ctx, b.User().ID, bookingsdk.UpdateProfileRequest{Name: &name})
	require.True(t, bookingsdk.IsForbidden(err), "got %v", err)

	require.NoError(t, doc.UpdateCalendarID(ctx, ids[0], "clinic@group.calendar.google.com"))

	err = doc.UpdateCalendarID(ctx, ids[1], "x")
	require.True(t, bookingsdk.IsForbidden(err), "got %v", err)

	err = doc.UpdateCalendarID(ctx, ids[0], "")
	require.True(t, bookingsdk.IsBadRequest(err), "got %v", err)

	err = a.UpdateCalendarID(ctx, a.User().ID, "x")
	require.True(t, bookingsdk.IsForbidden(err), "got %v", err)

	_, err = a.CreateAppointment(ctx, bookingsdk.CreateAppointmentRequest{DoctorID: ids[0], AppointmentTime: "2025-03-01T10:00:00Z"})
	require.NoError(t, err)

	env.calendar.mu.Lock()
	defer env.calendar.mu.Unlock()
	require.Equal(t, "clinic@group.calendar.google.com", env.calendar.events[0].CalendarID)
	require.Equal(t, "Appointment with Alice", env.calendar.events[0].Summary)
}
