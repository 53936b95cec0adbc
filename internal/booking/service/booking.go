package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/medbook/internal/booking/calendar"
	"github.com/aussiebroadwan/medbook/internal/booking/domain"
	"github.com/aussiebroadwan/medbook/internal/booking/store"
	"github.com/aussiebroadwan/medbook/pkg/idx"
	"github.com/aussiebroadwan/medbook/pkg/slogx"
)

// BookingService owns the appointment lifecycle. The store is authoritative;
// the calendar is a best-effort mirror fed through Dispatcher.
type BookingService struct {
	Store      store.Store
	Dispatcher calendar.Dispatcher
}

type CreateAppointmentInput struct {
	DoctorID string
	Time     string // ISO-8601, naive values are UTC
	Reason   string
}

// StatusUpdate is the outcome of UpdateStatus.
type StatusUpdate struct {
	Appointment domain.Appointment
	Changed     bool
}

func (s *BookingService) CreateAppointment(ctx context.Context, caller domain.Identity, in CreateAppointmentInput) (domain.Appointment, error) {
	l := slogx.FromContext(ctx)

	switch caller.Role {
	case domain.RolePatient:
	default:
		return domain.Appointment{}, fmt.Errorf("%w: only patients can book appointments", ErrForbidden)
	}

	doctorID := strings.TrimSpace(in.DoctorID)
	if doctorID == "" || strings.TrimSpace(in.Time) == "" {
		return domain.Appointment{}, fmt.Errorf("%w: doctor_id and appointment_time are required", ErrBadRequest)
	}

	at, err := domain.ParseTime(in.Time)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("%w: invalid appointment_time format", ErrBadRequest)
	}

	doctor, err := s.Store.Users().GetUserByID(ctx, doctorID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.Appointment{}, fmt.Errorf("%w: doctor not found", ErrBadRequest)
	case err != nil:
		return domain.Appointment{}, err
	case doctor.Role != domain.RoleDoctor:
		return domain.Appointment{}, fmt.Errorf("%w: doctor_id does not reference a doctor", ErrBadRequest)
	}

	patient, err := s.Store.Users().GetUserByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Appointment{}, fmt.Errorf("%w: caller no longer exists", ErrUnauthorized)
		}
		return domain.Appointment{}, err
	}

	appt := domain.Appointment{
		ID:        idx.New().String(),
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Time:      at,
		Reason:    strings.TrimSpace(in.Reason),
		Status:    domain.StatusConfirmed,
	}
	if err := s.Store.Appointments().CreateAppointment(ctx, appt); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Appointment{}, fmt.Errorf("%w: unknown participant", ErrBadRequest)
		}
		return domain.Appointment{}, err
	}

	l.Info("appointment booked",
		slog.String("appointment_id", appt.ID),
		slog.String("doctor_id", doctor.ID),
	)

	if s.Dispatcher != nil {
		s.Dispatcher.Dispatch(ctx, calendar.NewAppointmentEvent(appt, patient, doctor))
	}

	return appt, nil
}

// ListAppointments returns the caller's side of the appointments table.
func (s *BookingService) ListAppointments(ctx context.Context, caller domain.Identity) ([]domain.AppointmentView, error) {
	switch caller.Role {
	case domain.RolePatient:
		return s.Store.Appointments().ListByPatient(ctx, caller.UserID)
	case domain.RoleDoctor:
		return s.Store.Appointments().ListByDoctor(ctx, caller.UserID)
	default:
		return nil, fmt.Errorf("%w: unknown role", ErrForbidden)
	}
}

// UpdateStatus moves an appointment out of Confirmed. Existence is checked
// before ownership so a missing id is always a 404.
func (s *BookingService) UpdateStatus(ctx context.Context, caller domain.Identity, appointmentID, status string) (StatusUpdate, error) {
	appt, err := s.Store.Appointments().GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return StatusUpdate{}, fmt.Errorf("%w: appointment not found", ErrNotFound)
		}
		return StatusUpdate{}, err
	}

	switch caller.Role {
	case domain.RoleDoctor:
		if appt.DoctorID != caller.UserID {
			return StatusUpdate{}, fmt.Errorf("%w: not your appointment", ErrForbidden)
		}
	default:
		return StatusUpdate{}, fmt.Errorf("%w: only the assigned doctor can update status", ErrForbidden)
	}

	next, err := domain.ParseTargetStatus(status)
	if err != nil {
		return StatusUpdate{}, fmt.Errorf("%w: invalid status, must be %s or %s", ErrBadRequest, domain.StatusAttended, domain.StatusNoShow)
	}

	changed, err := appt.Status.CheckTransition(next)
	if err != nil {
		return StatusUpdate{}, fmt.Errorf("%w: appointment is already %s", ErrBadRequest, appt.Status)
	}
	if !changed {
		return StatusUpdate{Appointment: appt}, nil
	}

	if err := s.Store.Appointments().UpdateStatus(ctx, appt.ID, next); err != nil {
		return StatusUpdate{}, err
	}
	appt.Status = next

	slogx.FromContext(ctx).Info("appointment status updated",
		slog.String("appointment_id", appt.ID),
		slog.String("status", string(next)),
	)
	return StatusUpdate{Appointment: appt, Changed: true}, nil
}
