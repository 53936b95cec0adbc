package bookingsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error codes the server puts in ErrorResponse.Error.
const (
	ErrorCodeBadRequest    = "bad_request"
	ErrorCodeUnauthorized  = "unauthorized"
	ErrorCodeForbidden     = "forbidden"
	ErrorCodeNotFound      = "not_found"
	ErrorCodeConflict      = "conflict"
	ErrorCodeRateLimited   = "rate_limit_exceeded"
	ErrorCodeServerError   = "server_error"
	ErrorCodeUnavailable   = "unavailable"
)

// APIError is a non-2xx response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%d %s", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
}

// parseErrorResponse builds an APIError, falling back to the status text
// when the body is not the usual JSON shape.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		apiErr.Code = er.Error
		apiErr.Message = er.Message
		return apiErr
	}

	apiErr.Code = http.StatusText(resp.StatusCode)
	apiErr.Message = string(body)
	return apiErr
}

// StatusCode returns the HTTP status of an *APIError, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsBadRequest(err error) bool   { return StatusCode(err) == http.StatusBadRequest }
func IsUnauthorized(err error) bool { return StatusCode(err) == http.StatusUnauthorized }
func IsForbidden(err error) bool    { return StatusCode(err) == http.StatusForbidden }
func IsNotFound(err error) bool     { return StatusCode(err) == http.StatusNotFound }
func IsConflict(err error) bool     { return StatusCode(err) == http.StatusConflict }
