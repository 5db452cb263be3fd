package whatsapp

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotConfigured is returned when no phone number id or token is set.
var ErrNotConfigured = errors.New("whatsapp: client not configured")

// transientCodes are provider error codes worth retrying: throttling,
// temporary unavailability and "try again later" service errors.
var transientCodes = map[int]struct{}{
	1:      {},
	2:      {},
	4:      {},
	80007:  {},
	130429: {},
	131000: {},
	131016: {},
	131048: {},
	131056: {},
	133004: {},
}

// APIError is an error body returned by the Graph API.
type APIError struct {
	HTTPStatus int    `json:"-"`
	Code       int    `json:"code"`
	Subcode    int    `json:"error_subcode"`
	Type       string `json:"type"`
	Message    string `json:"message"`
	FBTraceID  string `json:"fbtrace_id"`
	ErrorData  struct {
		Details string `json:"details"`
	} `json:"error_data"`
}

func (e *APIError) Error() string {
	msg := e.Message
	if e.ErrorData.Details != "" {
		msg += ": " + e.ErrorData.Details
	}
	return fmt.Sprintf("whatsapp api error %d (http %d): %s", e.Code, e.HTTPStatus, msg)
}

// Transient reports whether the request may succeed if repeated.
func (e *APIError) Transient() bool {
	if e.HTTPStatus == http.StatusTooManyRequests || e.HTTPStatus >= http.StatusInternalServerError {
		return true
	}
	_, ok := transientCodes[e.Code]
	return ok
}

// IsPermanent reports whether err is a provider rejection that retrying
// cannot fix, such as an invalid recipient or malformed payload.
func IsPermanent(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && !apiErr.Transient()
}
