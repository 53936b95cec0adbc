package bookingsdk

import "encoding/json"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error" example:"bad_request"`
	Message string `json:"message" example:"doctor_id is required"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message" example:"Appointment status updated successfully"`
}

// CreatedResponse acknowledges a created resource.
type CreatedResponse struct {
	Message string `json:"message" example:"Appointment created successfully"`
	ID      string `json:"id" example:"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"`
}

// ============================================================================
// Accounts
// ============================================================================

// RegisterRequest creates a patient account. The legacy keys "nombre" and
// "telefono" are accepted for Name and Phone.
type RegisterRequest struct {
	Email    string `json:"email" example:"pat@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
	Name     string `json:"name,omitempty" example:"Pat Smith"`
	Phone    string `json:"phone,omitempty" example:"+61 400 000 000"`
}

func (r *RegisterRequest) UnmarshalJSON(b []byte) error {
	var raw struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Phone    string `json:"phone"`
		Nombre   string `json:"nombre"`
		Telefono string `json:"telefono"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*r = RegisterRequest{
		Email:    raw.Email,
		Password: raw.Password,
		Name:     firstNonEmpty(raw.Name, raw.Nombre),
		Phone:    firstNonEmpty(raw.Phone, raw.Telefono),
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" example:"pat@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

// UserSummary is the account view returned on login.
type UserSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role" example:"patient"`
	CalendarID string `json:"calendar_id,omitempty"`
}

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type" example:"Bearer"`
	ExpiresIn   int64       `json:"expires_in" example:"900"`
	User        UserSummary `json:"user"`
}

// UpdateProfileRequest changes the caller's own profile. A missing name
// leaves it unchanged.
type UpdateProfileRequest struct {
	Name *string `json:"name,omitempty" example:"Pat Smith"`
}

func (r *UpdateProfileRequest) UnmarshalJSON(b []byte) error {
	var raw struct {
		Name   *string `json:"name"`
		Nombre *string `json:"nombre"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	r.Name = raw.Name
	if r.Name == nil {
		r.Name = raw.Nombre
	}
	return nil
}

// ============================================================================
// Doctors
// ============================================================================

type Doctor struct {
	ID    string `json:"id"`
	Email string `json:"email" example:"house@example.com"`
}

type DoctorsResponse struct {
	Doctors []Doctor `json:"doctors"`
}

type UpdateCalendarRequest struct {
	CalendarID string `json:"calendar_id" example:"clinic@group.calendar.google.com"`
}

// ============================================================================
// Appointments
// ============================================================================

type CreateAppointmentRequest struct {
	DoctorID        string `json:"doctor_id"`
	AppointmentTime string `json:"appointment_time" example:"2025-03-01T10:00:00Z"`
	Reason          string `json:"reason,omitempty" example:"Annual checkup"`
}

// Appointment is one row of a listing, with both participants attached.
type Appointment struct {
	ID              string `json:"id"`
	PatientID       string `json:"patient_id"`
	DoctorID        string `json:"doctor_id"`
	AppointmentTime string `json:"appointment_time" example:"2025-03-01T10:00:00+00:00"`
	Reason          string `json:"reason"`
	Status          string `json:"status" example:"Confirmed"`
	PatientName     string `json:"patient_name"`
	PatientEmail    string `json:"patient_email"`
	DoctorName      string `json:"doctor_name"`
	DoctorEmail     string `json:"doctor_email"`
}

type AppointmentsResponse struct {
	Appointments []Appointment `json:"appointments"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" example:"Attended" enums:"Attended,No-Show"`
}

// ============================================================================
// Bootstrap
// ============================================================================

type BootstrapDoctor struct {
	Email      string `json:"email" example:"house@example.com"`
	Password   string `json:"password"`
	Name       string `json:"name,omitempty" example:"Greg House"`
	Phone      string `json:"phone,omitempty"`
	CalendarID string `json:"calendar_id,omitempty"`
}

// BootstrapRequest seeds the initial doctor accounts.
type BootstrapRequest struct {
	Doctors []BootstrapDoctor `json:"doctors"`
}

type BootstrapResponse struct {
	Message string   `json:"message" example:"System bootstrapped successfully"`
	IDs     []string `json:"ids"`
}

// ============================================================================
// Health
// ============================================================================

type HealthChecks struct {
	Database string `json:"database"`
	Calendar string `json:"calendar"`
}

type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime" example:"1h2m3s"`
	Version string        `json:"version" example:"0.1.0"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
