package calendar

import (
	"time"

	"github.com/aussiebroadwan/medbook/internal/booking/domain"
)

// Scope is the OAuth scope the service account needs.
const Scope = "https://www.googleapis.com/auth/calendar"

// DefaultDuration is how long every appointment event lasts.
const DefaultDuration = time.Hour

const noReason = "No specific reason provided."

// Reminder is a single reminder override on an event.
type Reminder struct {
	Method  string `json:"method"` // "email" or "popup"
	Minutes int64  `json:"minutes"`
}

// DefaultReminders are applied to every appointment event: an email a day
// before and a popup an hour before.
func DefaultReminders() []Reminder {
	return []Reminder{
		{Method: "email", Minutes: 24 * 60},
		{Method: "popup", Minutes: 60},
	}
}

// Event is the calendar entry mirrored for an appointment.
type Event struct {
	CalendarID    string     `json:"calendar_id"`
	AppointmentID string     `json:"appointment_id,omitempty"`
	Summary       string     `json:"summary"`
	Description   string     `json:"description"`
	Start         time.Time  `json:"start"`
	End           time.Time  `json:"end"`
	TimeZone      string     `json:"time_zone"`
	Reminders     []Reminder `json:"reminders"`
}

// Target picks the calendar an event goes to: the doctor's configured
// calendar id, or their email (their primary calendar) when unset.
func Target(calendarID, email string) string {
	if calendarID != "" {
		return calendarID
	}
	return email
}

// NewAppointmentEvent builds the event for appt on the doctor's calendar.
func NewAppointmentEvent(appt domain.Appointment, patient, doctor domain.User) Event {
	desc := appt.Reason
	if desc == "" {
		desc = noReason
	}
	start := appt.Time.UTC()

	return Event{
		CalendarID:    Target(doctor.CalendarID, doctor.Email),
		AppointmentID: appt.ID,
		Summary:       "Appointment with " + patient.DisplayName(),
		Description:   desc,
		Start:         start,
		End:           start.Add(DefaultDuration),
		TimeZone:      "UTC",
		Reminders:     DefaultReminders(),
	}
}
