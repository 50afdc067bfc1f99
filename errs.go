package webpurify

import (
	"errors"
	"fmt"
)

var (
	ErrAPIKeyRequired = errors.New("API key is required")
	ErrInvalidURI     = errors.New("invalid uri")

	// Response errors
	ErrHTTPStatus       = errors.New("unexpected http status")
	ErrDeserialize      = errors.New("failed to deserialize response")
	ErrMissingField     = errors.New("missing field")
	ErrInvalidField     = errors.New("invalid field")
	ErrNonOkStat        = errors.New("response stat is not ok")
	ErrMismatchedMethod = errors.New("response method does not match request method")

	// Errors reported by WebPurify in the rsp.err object
	ErrInvalidAPIKey      = errors.New("invalid API key")
	ErrInactiveAPIKey     = errors.New("inactive API key")
	ErrMissingAPIKey      = errors.New("missing API key")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrUnknownAPIError    = errors.New("unknown API error")
)

// StatusError is returned when WebPurify answers with a non-2xx status. The body is not inspected.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: %d", ErrHTTPStatus, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrHTTPStatus
}

// DecodeError is returned when the response body is not the JSON document we expect.
type DecodeError struct {
	// Err is the underlying decoding error.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: %v", ErrDeserialize, e.Err)
}

// Unwrap makes both errors.Is(err, ErrDeserialize) and checks against the underlying cause work.
func (e *DecodeError) Unwrap() []error {
	return []error{ErrDeserialize, e.Err}
}

// FieldError is returned when an operation specific field is absent or malformed.
// Err is either ErrMissingField or ErrInvalidField.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v %q", e.Err, e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// APIError wraps the error object WebPurify embeds in its response when a call
// is rejected. Err is one of ErrInvalidAPIKey, ErrInactiveAPIKey, ErrMissingAPIKey,
// ErrServiceUnavailable or ErrUnknownAPIError, so callers can branch on it directly:
//
//	if errors.Is(err, webpurify.ErrInvalidAPIKey) {
//		// Rotate the key
//	}
//
//	var apiErr *webpurify.APIError
//	if errors.As(err, &apiErr) {
//		log.Printf("webpurify rejected the call: code=%s msg=%s", apiErr.Code, apiErr.Msg)
//	}
type APIError struct {
	// Code is the numeric error code as sent by WebPurify, e.g. "100".
	Code string
	// Msg is the human readable message that came with the code.
	Msg string
	Err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%v (code %s): %s", e.Err, e.Code, e.Msg)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// newAPIError maps a WebPurify error code to its sentinel.
func newAPIError(code, msg string) *APIError {
	apiErr := &APIError{Code: code, Msg: msg}
	switch code {
	case "100":
		apiErr.Err = ErrInvalidAPIKey
	case "101":
		apiErr.Err = ErrInactiveAPIKey
	case "102":
		apiErr.Err = ErrMissingAPIKey
	case "103":
		apiErr.Err = ErrServiceUnavailable
	default:
		apiErr.Err = ErrUnknownAPIError
	}
	return apiErr
}

// StatError is returned when rsp.@attributes.stat is present and not "ok".
type StatError struct {
	Stat string
}

func (e *StatError) Error() string {
	return fmt.Sprintf("%v: %q", ErrNonOkStat, e.Stat)
}

func (e *StatError) Unwrap() error {
	return ErrNonOkStat
}

// MethodMismatchError is returned when a response is parsed for a different method than
// the one that produced it, e.g. a check response handed to ParseReplaceResult.
type MethodMismatchError struct {
	Actual   string
	Expected string
}

func (e *MethodMismatchError) Error() string {
	return fmt.Sprintf("%v: got %q, expected %q", ErrMismatchedMethod, e.Actual, e.Expected)
}

func (e *MethodMismatchError) Unwrap() error {
	return ErrMismatchedMethod
}
