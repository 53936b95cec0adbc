package http

import (
	"net/http"

	"github.com/aussiebroadwan/medbook/internal/booking/service"
	"github.com/aussiebroadwan/medbook/pkg/bookingsdk"
	"github.com/aussiebroadwan/medbook/pkg/httpx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP registers a new patient.
//
//	@Summary		Register a patient
//	@Description	Creates a patient account. Doctors cannot self-register. The keys "nombre" and "telefono" are accepted as aliases of "name" and "phone".
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		bookingsdk.RegisterRequest	true	"Account details"
//	@Success		201		{object}	bookingsdk.CreatedResponse
//	@Failure		400		{object}	bookingsdk.ErrorResponse	"Missing email or password"
//	@Failure		409		{object}	bookingsdk.ErrorResponse	"Email already registered"
//	@Failure		429		{object}	bookingsdk.ErrorResponse
//	@Router			/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req bookingsdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	u, err := h.AuthService.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, bookingsdk.CreatedResponse{
		Message: "User registered successfully",
		ID:      u.ID,
	})
}

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP exchanges credentials for an access token.
//
//	@Summary		Log in
//	@Description	Verifies email and password and returns a short-lived bearer token with the account summary.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		bookingsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	bookingsdk.LoginResponse
//	@Failure		400		{object}	bookingsdk.ErrorResponse	"Missing email or password"
//	@Failure		401		{object}	bookingsdk.ErrorResponse	"Invalid credentials"
//	@Failure		429		{object}	bookingsdk.ErrorResponse
//	@Router			/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req bookingsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	tok, u, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bookingsdk.LoginResponse{
		AccessToken: tok.Token,
		TokenType:   tok.TokenType,
		ExpiresIn:   tok.ExpiresIn,
		User: bookingsdk.UserSummary{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			Role:       u.Role.String(),
			CalendarID: u.CalendarID,
		},
	})
}
