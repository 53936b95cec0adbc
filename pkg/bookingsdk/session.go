package bookingsdk

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Session carries an access token for the authenticated endpoints.
type Session struct {
	client      *SDKClient
	accessToken string
	expiresAt   time.Time
	user        UserSummary
}

func newSession(c *SDKClient, lr LoginResponse) *Session {
	return &Session{
		client:      c,
		accessToken: lr.AccessToken,
		expiresAt:   time.Now().Add(time.Duration(lr.ExpiresIn) * time.Second),
		user:        lr.User,
	}
}

// NewSessionFromToken wraps a token obtained elsewhere.
func (c *SDKClient) NewSessionFromToken(accessToken string, user UserSummary) *Session {
	return &Session{client: c, accessToken: accessToken, user: user}
}

func (s *Session) AccessToken() string { return s.accessToken }

// User is the account the session was opened for, as of login.
func (s *Session) User() UserSummary { return s.user }

// Expired reports whether the token's lifetime has passed. Sessions from
// NewSessionFromToken never report expiry.
func (s *Session) Expired() bool {
	return !s.expiresAt.IsZero() && time.Now().After(s.expiresAt)
}

func (s *Session) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	return s.client.do(ctx, method, path, body, map[string]string{
		"Authorization": "Bearer " + s.accessToken,
	})
}

// CreateAppointment books with a doctor and returns the appointment id.
func (s *Session) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (string, error) {
	resp, err := s.do(ctx, http.MethodPost, "/appointments", req)
	if err != nil {
		return "", err
	}

	var out CreatedResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return "", err
	}
	return out.ID, nil
}

// ListAppointments returns the caller's appointments: as patient or as
// doctor depending on the account.
func (s *Session) ListAppointments(ctx context.Context) ([]Appointment, error) {
	resp, err := s.do(ctx, http.MethodGet, "/appointments", nil)
	if err != nil {
		return nil, err
	}

	var out AppointmentsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Appointments, nil
}

func (s *Session) UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) error {
	resp, err := s.do(ctx, http.MethodPatch, "/appointments/"+url.PathEscape(appointmentID)+"/status",
		UpdateStatusRequest{Status: status})
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

func (s *Session) UpdateCalendarID(ctx context.Context, doctorID, calendarID string) error {
	resp, err := s.do(ctx, http.MethodPatch, "/doctors/"+url.PathEscape(doctorID)+"/calendar",
		UpdateCalendarRequest{CalendarID: calendarID})
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

func (s *Session) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) error {
	resp, err := s.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(userID)+"/profile", req)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}
