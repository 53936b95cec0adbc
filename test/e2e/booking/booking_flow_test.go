package booking_test

import (
	"testing"

	"github.com/aussiebroadwan/medbook/pkg/bookingsdk"
	"github.com/stretchr/testify/require"
)

// TestBootstrapOnce verifies the doctor seed endpoint closes after use.
func TestBootstrapOnce(t *testing.T) {
	baseURL, cleanup := setupBookingContainer(t)
	defer cleanup()

	client := bookingsdk.NewSDKClient(baseURL)
	bootstrapDoctor(t, client)

	_, err := client.Bootstrap(t.Context(), bootstrapToken, bookingsdk.BootstrapRequest{
		Doctors: []bookingsdk.BootstrapDoctor{{Email: "other@example.com", Password: "x"}},
	})
	require.True(t, bookingsdk.IsConflict(err), "second bootstrap should conflict, got %v", err)

	doctors, err := client.ListDoctors(t.Context())
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	require.Equal(t, doctorEmail, doctors[0].Email)
}

// TestAppointmentLifecycle books, lists and closes an appointment across
// both roles.
func TestAppointmentLifecycle(t *testing.T) {
	baseURL, cleanup := setupBookingContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := bookingsdk.NewSDKClient(baseURL)

	doctorID := bootstrapDoctor(t, client)
	patient := registerPatient(t, client, "pat@example.com")

	apptID, err := patient.CreateAppointment(ctx, bookingsdk.CreateAppointmentRequest{
		DoctorID:        doctorID,
		AppointmentTime: "2025-03-01T10:00:00Z",
		Reason:          "Annual checkup",
	})
	require.NoError(t, err)
	require.NotEmpty(t, apptID)

	doctor := loginDoctor(t, client)

	appts, err := doctor.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, appts, 1)
	require.Equal(t, apptID, appts[0].ID)
	require.Equal(t, "Confirmed", appts[0].Status)
	require.Equal(t, "pat@example.com", appts[0].PatientEmail)

	err = patient.UpdateAppointmentStatus(ctx, apptID, "Attended")
	require.True(t, bookingsdk.IsForbidden(err), "patients cannot close appointments, got %v", err)

	require.NoError(t, doctor.UpdateAppointmentStatus(ctx, apptID, "Attended"))

	appts, err = patient.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, appts, 1)
	require.Equal(t, "Attended", appts[0].Status)
	require.Equal(t, "Greg House", appts[0].DoctorName)
}

func TestDuplicateRegistration(t *testing.T) {
	baseURL, cleanup := setupBookingContainer(t)
	defer cleanup()

	client := bookingsdk.NewSDKClient(baseURL)
	registerPatient(t, client, "dup@example.com")

	_, err := client.Register(t.Context(), bookingsdk.RegisterRequest{
		Email:    "DUP@example.com",
		Password: "another",
	})
	require.True(t, bookingsdk.IsConflict(err), "got %v", err)

	_, err = client.Login(t.Context(), "dup@example.com", "wrong")
	require.True(t, bookingsdk.IsUnauthorized(err), "got %v", err)
}
