package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a failure reported by (or on behalf of) the remote API.
type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code string, message string, details string, status int) *APIError {
	return &APIError{Code: code, Message: message, Details: details, HTTPStatus: status}
}

// FromStatus builds an APIError for a non-2xx response.
func FromStatus(status int, message string) *APIError {
	var code string
	switch status {
	case http.StatusBadRequest:
		code = "BAD_REQUEST"
	case http.StatusUnauthorized:
		code = "UNAUTHORIZED"
	case http.StatusForbidden:
		code = "FORBIDDEN"
	case http.StatusNotFound:
		code = "NOT_FOUND"
	case http.StatusConflict:
		code = "ALREADY_EXISTS"
	default:
		code = "API_ERROR"
	}

	if message == "" {
		message = http.StatusText(status)
	}

	return &APIError{Code: code, Message: message, HTTPStatus: status}
}

// IsAuthFailure reports whether the error is the server signaling that the
// current session is no longer valid.
func IsAuthFailure(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.HTTPStatus == http.StatusUnauthorized
}
