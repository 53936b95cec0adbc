package http

import (
	"net/http"

	"github.com/aussiebroadwan/medbook/internal/booking/service"
	"github.com/aussiebroadwan/medbook/pkg/bookingsdk"
	"github.com/aussiebroadwan/medbook/pkg/httpx"
)

type DoctorsHandler struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

// HandleList lists doctors.
//
//	@Summary		List doctors
//	@Description	Public listing of doctor accounts, ordered by email.
//	@Tags			Doctors
//	@Produce		json
//	@Success		200	{object}	bookingsdk.DoctorsResponse
//	@Router			/doctors [get].
func (h *DoctorsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	docs, err := h.UserService.ListDoctors(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := bookingsdk.DoctorsResponse{Doctors: make([]bookingsdk.Doctor, 0, len(docs))}
	for _, d := range docs {
		out.Doctors = append(out.Doctors, bookingsdk.Doctor{ID: d.ID, Email: d.Email})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdateCalendar sets the calendar a doctor's appointments go to.
//
//	@Summary		Set doctor calendar
//	@Description	Sets the Google Calendar id appointment events are inserted into. Only the doctor themself may change it.
//	@Tags			Doctors
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Doctor id"
//	@Param			request	body		bookingsdk.UpdateCalendarRequest	true	"Calendar id"
//	@Success		200		{object}	bookingsdk.MessageResponse
//	@Failure		400		{object}	bookingsdk.ErrorResponse	"Missing calendar_id"
//	@Failure		401		{object}	bookingsdk.ErrorResponse
//	@Failure		403		{object}	bookingsdk.ErrorResponse	"Not a doctor, or not this doctor"
//	@Router			/doctors/{id}/calendar [patch].
func (h *DoctorsHandler) HandleUpdateCalendar(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r, h.AuthService)
	if !ok {
		return
	}

	var req bookingsdk.UpdateCalendarRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	if _, err := h.UserService.UpdateCalendarID(r.Context(), caller, r.PathValue("id"), req.CalendarID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Calendar ID updated successfully")
}
