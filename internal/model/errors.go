package model

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
)

// ErrorResponse is the wire shape emitted by the central error classifier.
// Every failure routed through the classifier produces this body; the title
// is derived from the status code class.
type ErrorResponse struct {
	Status     int    `json:"-"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	StackTrace string `json:"stackTrace,omitempty"`
}

// Error implements the error interface
func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("[%d] %s: %s", e.Status, e.Title, e.Message)
}

// WriteJSON writes the error response as JSON
func (e *ErrorResponse) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(e)
}

// TitleForStatus maps a status code to its classifier title.
// Unrecognized status codes classify as "Unknown Error".
func TitleForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Validation Failed"
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusForbidden:
		return "Forbidden"
	case http.StatusNotFound:
		return "Not Found"
	case http.StatusInternalServerError:
		return "Server Error"
	default:
		return "Unknown Error"
	}
}

// NewErrorResponse builds a classified error for the given status code,
// capturing the stack at construction time.
func NewErrorResponse(status int, message string) *ErrorResponse {
	return &ErrorResponse{
		Status:     status,
		Title:      TitleForStatus(status),
		Message:    message,
		StackTrace: string(debug.Stack()),
	}
}

// Common error constructors

func NewValidationError(message string) *ErrorResponse {
	return NewErrorResponse(http.StatusBadRequest, message)
}

func NewUnauthorizedError(message string) *ErrorResponse {
	return NewErrorResponse(http.StatusUnauthorized, message)
}

func NewForbiddenError(message string) *ErrorResponse {
	return NewErrorResponse(http.StatusForbidden, message)
}

func NewNotFoundError(resource string) *ErrorResponse {
	return NewErrorResponse(http.StatusNotFound, fmt.Sprintf("%s not found", resource))
}

func NewServerError(message string) *ErrorResponse {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return NewErrorResponse(http.StatusInternalServerError, message)
}
