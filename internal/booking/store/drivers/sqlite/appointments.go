package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/medbook/internal/booking/domain"
	"github.com/aussiebroadwan/medbook/internal/booking/store/drivers/sqlite/gen"
)

type appointmentsRepo struct {
	q   *gen.Queries
	now func() time.Time
}

func (r *appointmentsRepo) CreateAppointment(ctx context.Context, a domain.Appointment) error {
	now := r.now()
	if a.Status == "" {
		a.Status = domain.StatusConfirmed
	}
	return mapWriteError(r.q.CreateAppointment(ctx, gen.CreateAppointmentParams{
		ID:              a.ID,
		PatientID:       a.PatientID,
		DoctorID:        a.DoctorID,
		AppointmentTime: a.Time.UTC(),
		Reason:          a.Reason,
		Status:          string(a.Status),
		CreatedAt:       now,
		UpdatedAt:       now,
	}))
}

func (r *appointmentsRepo) GetAppointmentByID(ctx context.Context, id string) (domain.Appointment, error) {
	row, err := r.q.GetAppointmentByID(ctx, id)
	if err != nil {
		return domain.Appointment{}, mapNotFound(err)
	}
	return mapAppointment(row), nil
}

func (r *appointmentsRepo) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	return affected(r.q.UpdateAppointmentStatus(ctx, gen.UpdateAppointmentStatusParams{
		Status:    string(status),
		UpdatedAt: r.now(),
		ID:        id,
	}))
}

func (r *appointmentsRepo) ListByPatient(ctx context.Context, patientID string) ([]domain.AppointmentView, error) {
	rows, err := r.q.ListAppointmentsByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.AppointmentView, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapView(row))
	}
	return out, nil
}

func (r *appointmentsRepo) ListByDoctor(ctx context.Context, doctorID string) ([]domain.AppointmentView, error) {
	rows, err := r.q.ListAppointmentsByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.AppointmentView, 0, len(rows))
	for _, row := range rows {
		// Both list queries select the same columns.
		out = append(out, mapView(gen.ListAppointmentsByPatientRow(row)))
	}
	return out, nil
}

func mapView(row gen.ListAppointmentsByPatientRow) domain.AppointmentView {
	return domain.AppointmentView{
		Appointment: mapAppointment(gen.Appointment{
			ID:              row.ID,
			PatientID:       row.PatientID,
			DoctorID:        row.DoctorID,
			AppointmentTime: row.AppointmentTime,
			Reason:          row.Reason,
			Status:          row.Status,
			CreatedAt:       row.CreatedAt,
			UpdatedAt:       row.UpdatedAt,
		}),
		PatientName:  row.PatientName,
		PatientEmail: row.PatientEmail,
		DoctorName:   row.DoctorName,
		DoctorEmail:  row.DoctorEmail,
	}
}
