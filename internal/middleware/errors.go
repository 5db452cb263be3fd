package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
)

// Common error codes used by middleware
const (
	ErrorCodeInternal          = "INTERNAL_ERROR"
	ErrorCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrorCodeRequestTimeout    = "REQUEST_TIMEOUT"
	ErrorCodeUnauthorized      = "UNAUTHORIZED"
)

// Common error messages used by middleware
const (
	ErrorMessageInternal          = "An internal error occurred"
	ErrorMessageRateLimitExceeded = "Too many requests"
	ErrorMessageRequestTimeout    = "Request timeout"
	ErrorMessageUnauthorized      = "Missing or invalid credentials"
)

// ErrorResponse is the JSON error envelope shared by middleware and handlers.
// Stack is only filled in development.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Stack     string    `json:"stack,omitempty"`
}

// WriteError renders the error envelope with status.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	WriteErrorResponse(w, r, status, ErrorResponse{Error: code, Message: message})
}

func WriteErrorResponse(w http.ResponseWriter, r *http.Request, status int, resp ErrorResponse) {
	if resp.Timestamp.IsZero() {
		resp.Timestamp = time.Now().UTC()
	}
	render.Status(r, status)
	render.JSON(w, r, resp)
}
