package domain

import (
	"errors"
	"time"
)

// Status of an appointment. Confirmed is the only non-terminal status.
type Status string

const (
	StatusConfirmed Status = "Confirmed"
	StatusAttended  Status = "Attended"
	StatusNoShow    Status = "No-Show"
)

var (
	// ErrInvalidStatus is returned for a status a doctor may not set.
	ErrInvalidStatus = errors.New("domain: invalid status")

	// ErrStatusFinal is returned when an appointment already has a
	// different terminal status.
	ErrStatusFinal = errors.New("domain: appointment status already final")
)

// ParseTargetStatus accepts only the statuses a doctor may move an
// appointment to.
func ParseTargetStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAttended, StatusNoShow:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Terminal reports whether no further transitions are allowed.
func (s Status) Terminal() bool {
	switch s {
	case StatusAttended, StatusNoShow:
		return true
	default:
		return false
	}
}

// CheckTransition validates moving from s to next. A nil error with
// changed=false means next equals s and nothing needs writing.
func (s Status) CheckTransition(next Status) (changed bool, err error) {
	if _, err := ParseTargetStatus(string(next)); err != nil {
		return false, err
	}
	switch {
	case s == next:
		return false, nil
	case s == StatusConfirmed:
		return true, nil
	default:
		return false, ErrStatusFinal
	}
}

type Appointment struct {
	ID        string
	PatientID string
	DoctorID  string
	Time      time.Time // UTC, microsecond precision
	Reason    string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppointmentView is an appointment joined with both participants so a
// listing can show the counterpart without another lookup.
type AppointmentView struct {
	Appointment

	PatientName  string
	PatientEmail string
	DoctorName   string
	DoctorEmail  string
}
