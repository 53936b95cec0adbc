package service

import "errors"

// Sentinels the HTTP layer maps onto status codes. Details are attached with
// fmt.Errorf("%w: ...") and shown to the caller as the message.
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrBadRequest         = errors.New("bad request")
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBootstrapDisabled  = errors.New("bootstrap disabled")
	ErrBootstrapDone      = errors.New("system already bootstrapped")
)
