package transport

import (
	"net/http"

	"github.com/gallerykit/portal/internal"
)

type HttpClientError struct {
	// Http status code
	StatusCode int `json:"-"`
	// Human readable summary of error
	Summary string `json:"title"`
	// Message that will be sent back to the client
	Description string `json:"message"`
}

func (h *HttpClientError) Error() string {
	return h.Description
}

// statusOf maps the error taxonomy onto HTTP statuses. Everything in the
// taxonomy is recoverable by the user so nothing here maps to a 5xx
// except genuinely internal failures.
func statusOf(code internal.ErrorCode) int {
	switch code {
	case internal.ErrorCodeInvalidArgument, internal.ErrorCodeBadCredentials:
		return http.StatusBadRequest
	case internal.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case internal.ErrorCodeForbidden, internal.ErrorCodePermissionDenied, internal.ErrorCodeAccountLocked:
		return http.StatusForbidden
	case internal.ErrorCodeNotFound:
		return http.StatusNotFound
	case internal.ErrorCodeConflict:
		return http.StatusConflict
	case internal.ErrorCodeExpired:
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}
