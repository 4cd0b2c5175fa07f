// Package api provides a typed client for the job-board REST backend. Every
// operation validates its outgoing payload before any network I/O and checks
// the incoming JSON against a declared response schema.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/jobboard-client/internal/schemas"
)

// FieldIssue is a single field-level problem in a request or response payload.
type FieldIssue struct {
	Field   string
	Message string
}

// RequestValidationError indicates the outgoing payload failed its declared
// shape. It is returned before any network call is made.
type RequestValidationError struct {
	Issues []FieldIssue
}

func (e *RequestValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("request validation failed:\n")
	for i, issue := range e.Issues {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, issue.Field, issue.Message))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// HTTPError indicates a non-2xx response. Body holds the parsed JSON error
// payload when the backend sent one; Raw always holds the response text.
type HTTPError struct {
	StatusCode int
	Body       any
	Raw        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error %d: %s", e.StatusCode, e.Raw)
}

// ResponseValidationError indicates the backend returned JSON that does not
// match the declared response schema. This is a contract violation between
// client and backend, not a user error.
type ResponseValidationError struct {
	Schema string
	Issues []FieldIssue
}

func (e *ResponseValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("response validation failed for %s:\n", e.Schema))
	for i, issue := range e.Issues {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, issue.Field, issue.Message))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// NetworkError indicates a transport-level failure before any HTTP status was
// received. StatusCode is always 0.
type NetworkError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *NetworkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("network error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("network error: %s", e.Message)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// IsStatus reports whether err is an *HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == code
}

// UserMessage maps an error to a user-facing message. Callers present this
// directly; the raw error stays available for logs.
func UserMessage(err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusUnauthorized:
			return "Invalid credentials. Please check your email and password."
		case http.StatusForbidden:
			return "You must be logged in to do that."
		case http.StatusNotFound:
			return "The requested resource was not found."
		case http.StatusConflict:
			return "This conflicts with something that already exists."
		case http.StatusServiceUnavailable:
			return "The service is temporarily unavailable. Please try again later."
		default:
			return "Something went wrong. Please try again."
		}
	}

	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr.Message
	}

	var reqErr *RequestValidationError
	if errors.As(err, &reqErr) {
		return "Some fields are invalid. Please review your input."
	}

	return "Something went wrong. Please try again."
}

// newRequestValidationError converts a validator error into the typed form.
func newRequestValidationError(err error) *RequestValidationError {
	out := &RequestValidationError{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out.Issues = append(out.Issues, FieldIssue{
				Field:   fe.Field(),
				Message: fmt.Sprintf("failed %q validation", fe.Tag()),
			})
		}
		return out
	}

	out.Issues = append(out.Issues, FieldIssue{Field: "(root)", Message: err.Error()})
	return out
}

// newResponseValidationError converts a schemas validation error.
func newResponseValidationError(schemaName string, ve *schemas.ValidationError) *ResponseValidationError {
	out := &ResponseValidationError{Schema: schemaName}
	for _, fe := range ve.Errors {
		out.Issues = append(out.Issues, FieldIssue{Field: fe.Field, Message: fe.Message})
	}
	return out
}
