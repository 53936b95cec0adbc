package http

import (
	"net/http"

	"github.com/aussiebroadwan/medbook/internal/booking/service"
	"github.com/aussiebroadwan/medbook/pkg/bookingsdk"
	"github.com/aussiebroadwan/medbook/pkg/httpx"
)

type UsersHandler struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

// HandleUpdateProfile changes the caller's own profile.
//
//	@Summary		Update profile
//	@Description	Updates the caller's display name. Users can only edit themselves.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"User id"
//	@Param			request	body		bookingsdk.UpdateProfileRequest	true	"Profile fields"
//	@Success		200		{object}	bookingsdk.MessageResponse
//	@Failure		401		{object}	bookingsdk.ErrorResponse
//	@Failure		403		{object}	bookingsdk.ErrorResponse	"Not your profile"
//	@Router			/users/{id}/profile [patch].
func (h *UsersHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r, h.AuthService)
	if !ok {
		return
	}

	var req bookingsdk.UpdateProfileRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	if _, err := h.UserService.UpdateProfile(r.Context(), caller, r.PathValue("id"), req.Name); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Profile updated successfully")
}
