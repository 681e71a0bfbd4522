package quickbooks

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a failure so callers can branch on it without
// matching message strings.
type ErrorKind string

const (
	// ErrorKindInvalidConfig indicates a missing or invalid construction field.
	ErrorKindInvalidConfig ErrorKind = "invalid_config"

	// ErrorKindUnauthorized indicates missing stored credentials or a 401/403
	// from the API.
	ErrorKindUnauthorized ErrorKind = "unauthorized"

	// ErrorKindTokenExpired indicates the provider reported an expired token.
	ErrorKindTokenExpired ErrorKind = "token_expired"

	// ErrorKindRefreshFailed indicates a non-2xx response during token refresh.
	ErrorKindRefreshFailed ErrorKind = "refresh_failed"

	// ErrorKindRateLimited indicates a 429 that survived the retry budget.
	ErrorKindRateLimited ErrorKind = "rate_limited"

	// ErrorKindNetwork indicates a transport-level failure.
	ErrorKindNetwork ErrorKind = "network_error"

	// ErrorKindAPI is the catch-all for any other non-2xx response.
	ErrorKindAPI ErrorKind = "api_error"
)

// FaultError is a single error entry in a QuickBooks fault body.
type FaultError struct {
	Message string `json:"Message" yaml:"message"`
	Detail  string `json:"Detail"  yaml:"detail"`
	Code    string `json:"code"    yaml:"code"`
	Element string `json:"element" yaml:"element"`
}

// Fault is the error payload QuickBooks returns on failed calls.
type Fault struct {
	Errors []FaultError `json:"Error" yaml:"errors"`
	Type   string       `json:"type"  yaml:"type"`
}

type faultEnvelope struct {
	Fault *Fault `json:"Fault"`
	Time  string `json:"time"`
}

// Error is the normalized failure surfaced by every client operation.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Fault      *Fault
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("quickbooks: %s (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}

	return fmt.Sprintf("quickbooks: %s: %s", e.Kind, e.Message)
}

// NewError builds an Error with no HTTP context.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf returns the kind of err, or an empty string for non-client errors.
func KindOf(err error) ErrorKind {
	qbErr := &Error{}
	if errors.As(err, &qbErr) {
		return qbErr.Kind
	}

	return ""
}

// IsInvalidConfig reports whether err is a construction-time configuration error.
func IsInvalidConfig(err error) bool {
	return KindOf(err) == ErrorKindInvalidConfig
}

// IsUnauthorized reports whether err is an authorization failure.
func IsUnauthorized(err error) bool {
	return KindOf(err) == ErrorKindUnauthorized
}

// IsTokenExpired reports whether the provider declared the token expired.
func IsTokenExpired(err error) bool {
	return KindOf(err) == ErrorKindTokenExpired
}

// IsRateLimited reports whether err is a 429 that exhausted its retries.
func IsRateLimited(err error) bool {
	return KindOf(err) == ErrorKindRateLimited
}

// NormalizeHTTPError maps a non-2xx response to the error taxonomy. The body
// is decoded best-effort: an unparseable body yields an error with no fault
// payload, never a secondary failure.
func NormalizeHTTPError(statusCode int, body []byte) *Error {
	var envelope faultEnvelope

	_ = json.Unmarshal(body, &envelope)

	qbErr := &Error{
		StatusCode: statusCode,
		Fault:      envelope.Fault,
		Message:    faultMessage(envelope.Fault, statusCode),
	}

	switch {
	case faultReportsExpiredToken(envelope.Fault):
		qbErr.Kind = ErrorKindTokenExpired
	case statusCode == 401 || statusCode == 403:
		qbErr.Kind = ErrorKindUnauthorized
	case statusCode == 429:
		qbErr.Kind = ErrorKindRateLimited
	default:
		qbErr.Kind = ErrorKindAPI
	}

	return qbErr
}

func faultMessage(fault *Fault, statusCode int) string {
	if fault == nil || len(fault.Errors) == 0 {
		return fmt.Sprintf("request failed with status %d", statusCode)
	}

	first := fault.Errors[0]
	if first.Detail != "" {
		return fmt.Sprintf("%s: %s", first.Message, first.Detail)
	}

	return first.Message
}

// faultReportsExpiredToken matches the provider's expired-token wording. The
// API signals this condition only through the fault text, not a dedicated
// status code.
func faultReportsExpiredToken(fault *Fault) bool {
	if fault == nil {
		return false
	}

	for _, fe := range fault.Errors {
		text := strings.ToLower(fe.Message + " " + fe.Detail)
		if strings.Contains(text, "token expired") || strings.Contains(text, "token has expired") {
			return true
		}
	}

	return false
}
