package http

import (
	"net/http"

	"github.com/aussiebroadwan/medbook/internal/booking/domain"
	"github.com/aussiebroadwan/medbook/internal/booking/service"
	"github.com/aussiebroadwan/medbook/pkg/bookingsdk"
	"github.com/aussiebroadwan/medbook/pkg/httpx"
)

type AppointmentsHandler struct {
	AuthService    *service.AuthService
	BookingService *service.BookingService
}

// HandleCreate books an appointment.
//
//	@Summary		Book an appointment
//	@Description	Books the calling patient with a doctor. The appointment is confirmed immediately; a calendar event is mirrored to the doctor's calendar on a best-effort basis.
//	@Description	appointment_time is ISO-8601; a trailing Z and naive timestamps are both read as UTC.
//	@Tags			Appointments
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		bookingsdk.CreateAppointmentRequest	true	"Appointment"
//	@Success		201		{object}	bookingsdk.CreatedResponse
//	@Failure		400		{object}	bookingsdk.ErrorResponse	"Missing fields, bad time, or unknown doctor"
//	@Failure		401		{object}	bookingsdk.ErrorResponse
//	@Failure		403		{object}	bookingsdk.ErrorResponse	"Caller is not a patient"
//	@Router			/appointments [post].
func (h *AppointmentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r, h.AuthService)
	if !ok {
		return
	}

	var req bookingsdk.CreateAppointmentRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	appt, err := h.BookingService.CreateAppointment(r.Context(), caller, service.CreateAppointmentInput{
		DoctorID: req.DoctorID,
		Time:     req.AppointmentTime,
		Reason:   req.Reason,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, bookingsdk.CreatedResponse{
		Message: "Appointment created successfully",
		ID:      appt.ID,
	})
}

// HandleList lists the caller's appointments.
//
//	@Summary		List my appointments
//	@Description	Patients see the appointments they booked, doctors see the appointments booked with them. Ordered by time.
//	@Tags			Appointments
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	bookingsdk.AppointmentsResponse
//	@Failure		401	{object}	bookingsdk.ErrorResponse
//	@Failure		403	{object}	bookingsdk.ErrorResponse
//	@Router			/appointments [get].
func (h *AppointmentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r, h.AuthService)
	if !ok {
		return
	}

	views, err := h.BookingService.ListAppointments(r.Context(), caller)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := bookingsdk.AppointmentsResponse{Appointments: make([]bookingsdk.Appointment, 0, len(views))}
	for _, v := range views {
		out.Appointments = append(out.Appointments, toAppointment(v))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdateStatus records the outcome of an appointment.
//
//	@Summary		Update appointment status
//	@Description	The assigned doctor marks a confirmed appointment Attended or No-Show. Re-sending the current status is accepted; changing a final status is not.
//	@Tags			Appointments
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Appointment id"
//	@Param			request	body		bookingsdk.UpdateStatusRequest	true	"New status"
//	@Success		200		{object}	bookingsdk.MessageResponse
//	@Failure		400		{object}	bookingsdk.ErrorResponse	"Invalid or final status"
//	@Failure		401		{object}	bookingsdk.ErrorResponse
//	@Failure		403		{object}	bookingsdk.ErrorResponse	"Not the assigned doctor"
//	@Failure		404		{object}	bookingsdk.ErrorResponse	"Unknown appointment"
//	@Router			/appointments/{id}/status [patch].
func (h *AppointmentsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r, h.AuthService)
	if !ok {
		return
	}

	var req bookingsdk.UpdateStatusRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	res, err := h.BookingService.UpdateStatus(r.Context(), caller, r.PathValue("id"), req.Status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if !res.Changed {
		httpx.WriteMessage(w, http.StatusOK, "Appointment status unchanged")
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Appointment status updated successfully")
}

func toAppointment(v domain.AppointmentView) bookingsdk.Appointment {
	return bookingsdk.Appointment{
		ID:              v.ID,
		PatientID:       v.PatientID,
		DoctorID:        v.DoctorID,
		AppointmentTime: domain.FormatTime(v.Time),
		Reason:          v.Reason,
		Status:          string(v.Status),
		PatientName:     v.PatientName,
		PatientEmail:    v.PatientEmail,
		DoctorName:      v.DoctorName,
		DoctorEmail:     v.DoctorEmail,
	}
}
