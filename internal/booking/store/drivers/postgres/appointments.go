package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/medbook/internal/booking/domain"
	"github.com/jackc/pgx/v5"
)

type appointmentsRepo struct {
	db  dbtx
	now func() time.Time
}

const appointmentColumns = `id, patient_id, doctor_id, appointment_time, reason, status, created_at, updated_at`

const viewQuery = `
SELECT a.id, a.patient_id, a.doctor_id, a.appointment_time, a.reason, a.status, a.created_at, a.updated_at,
       p.name, p.email, d.name, d.email
FROM appointments a
JOIN users p ON p.id = a.patient_id
JOIN users d ON d.id = a.doctor_id
`

func scanAppointment(row pgx.Row, extra ...any) (domain.Appointment, error) {
	var (
		a      domain.Appointment
		status string
	)
	dest := append([]any{&a.ID, &a.PatientID, &a.DoctorID, &a.Time, &a.Reason, &status, &a.CreatedAt, &a.UpdatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return domain.Appointment{}, err
	}
	a.Status = domain.Status(status)
	a.Time = a.Time.UTC()
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return a, nil
}

func (r *appointmentsRepo) CreateAppointment(ctx context.Context, a domain.Appointment) error {
	now := r.now()
	if a.Status == "" {
		a.Status = domain.StatusConfirmed
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO appointments (`+appointmentColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.PatientID, a.DoctorID, a.Time.UTC(), a.Reason, string(a.Status), now, now,
	)
	return mapWriteError(err)
}

func (r *appointmentsRepo) GetAppointmentByID(ctx context.Context, id string) (domain.Appointment, error) {
	a, err := scanAppointment(r.db.QueryRow(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id))
	return a, mapNotFound(err)
}

func (r *appointmentsRepo) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	return affected(r.db.Exec(ctx,
		`UPDATE appointments SET status = $1, updated_at = $2 WHERE id = $3`, string(status), r.now(), id))
}

func (r *appointmentsRepo) ListByPatient(ctx context.Context, patientID string) ([]domain.AppointmentView, error) {
	return r.listViews(ctx, viewQuery+`WHERE a.patient_id = $1 ORDER BY a.appointment_time, a.id`, patientID)
}

func (r *appointmentsRepo) ListByDoctor(ctx context.Context, doctorID string) ([]domain.AppointmentView, error) {
	return r.listViews(ctx, viewQuery+`WHERE a.doctor_id = $1 ORDER BY a.appointment_time, a.id`, doctorID)
}

func (r *appointmentsRepo) listViews(ctx context.Context, query, arg string) ([]domain.AppointmentView, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AppointmentView
	for rows.Next() {
		var v domain.AppointmentView
		a, err := scanAppointment(rows, &v.PatientName, &v.PatientEmail, &v.DoctorName, &v.DoctorEmail)
		if err != nil {
			return nil, err
		}
		v.Appointment = a
		out = append(out, v)
	}
	return out, rows.Err()
}
