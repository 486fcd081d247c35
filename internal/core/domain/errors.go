package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies every failure the API client core can produce.
type ErrorKind string

const (
	KindInvalidConfiguration ErrorKind = "invalid_configuration"
	KindEncodingFailed       ErrorKind = "encoding_failed"
	KindNetworkFailure       ErrorKind = "network_failure"
	KindRequestFailed        ErrorKind = "request_failed"
	KindDecodingFailed       ErrorKind = "decoding_failed"
	KindMissingAccessToken   ErrorKind = "missing_access_token"
)

// Sentinels, one per kind. Any *APIError matches its kind's sentinel with errors.Is.
var (
	ErrInvalidConfiguration = errors.New("invalid api configuration")
	ErrEncodingFailed       = errors.New("request encoding failed")
	ErrNetworkFailure       = errors.New("network failure")
	ErrRequestFailed        = errors.New("request failed")
	ErrDecodingFailed       = errors.New("response decoding failed")
	ErrMissingAccessToken   = errors.New("server did not return an access token")
)

var sentinels = map[ErrorKind]error{
	KindInvalidConfiguration: ErrInvalidConfiguration,
	KindEncodingFailed:       ErrEncodingFailed,
	KindNetworkFailure:       ErrNetworkFailure,
	KindRequestFailed:        ErrRequestFailed,
	KindDecodingFailed:       ErrDecodingFailed,
	KindMissingAccessToken:   ErrMissingAccessToken,
}

// APIError is the structured failure surfaced to callers of the client core.
// StatusCode and Message are only meaningful for KindRequestFailed; Message is
// empty when the server sent no textual body.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindRequestFailed:
		if e.Message != "" {
			return e.Message
		}
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	case KindMissingAccessToken:
		return ErrMissingAccessToken.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", sentinels[e.Kind], e.Err)
	}
	return sentinels[e.Kind].Error()
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *APIError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s, ok := sentinels[e.Kind]; ok {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func NewInvalidConfiguration(err error) *APIError {
	return &APIError{Kind: KindInvalidConfiguration, Err: err}
}

func NewEncodingFailed(err error) *APIError {
	return &APIError{Kind: KindEncodingFailed, Err: err}
}

func NewNetworkFailure(err error) *APIError {
	return &APIError{Kind: KindNetworkFailure, Err: err}
}

func NewRequestFailed(status int, message string) *APIError {
	return &APIError{Kind: KindRequestFailed, StatusCode: status, Message: message}
}

func NewDecodingFailed(err error) *APIError {
	return &APIError{Kind: KindDecodingFailed, Err: err}
}

func NewMissingAccessToken() *APIError {
	return &APIError{Kind: KindMissingAccessToken}
}

// KindOf returns the kind of the first *APIError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

// StatusOf returns the HTTP status of a RequestFailed error, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Kind == KindRequestFailed {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is RequestFailed with status 404.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}
