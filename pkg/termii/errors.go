package termii

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fivetwenty-io/termii/internal/constants"
)

// ErrorKind classifies a failed call.
type ErrorKind string

const (
	KindUnauthorized        ErrorKind = "unauthorized"
	KindInsufficientBalance ErrorKind = "insufficient_balance"
	KindNotFound            ErrorKind = "not_found"
	KindGeneralFailure      ErrorKind = "general_failure"
	KindTransportFailure    ErrorKind = "transport_failure"
)

// Classified failures. Use errors.Is against these; use errors.As with
// *APIError or *TransportError for the details.
var (
	ErrUnauthorized        = errors.New("invalid API key")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNotFound            = errors.New("not found")
	ErrGeneralFailure      = errors.New("request failed")
	ErrTransportFailure    = errors.New("no response received")
)

// Caller errors. These are never retried and never reach the network.
var (
	ErrConfigRequired          = errors.New("config is required")
	ErrAPIKeyRequired          = errors.New("API key is required")
	ErrRequestRequired         = errors.New("request is required")
	ErrReservedField           = errors.New("payload contains a reserved field")
	ErrInvalidPayload          = errors.New("payload must encode to a JSON object")
	ErrUnsupportedTokenChannel = errors.New("unsupported token channel")
)

// APIError is a non-2xx response from the Termii API.
type APIError struct {
	Kind       ErrorKind `json:"kind"        yaml:"kind"`
	StatusCode int       `json:"status_code" yaml:"status_code"`
	Message    string    `json:"message"     yaml:"message"`
}

// NewAPIError classifies a status code and upstream message.
func NewAPIError(statusCode int, message string) *APIError {
	if strings.TrimSpace(message) == "" {
		message = constants.UnknownErrorMessage
	}

	return &APIError{
		Kind:       kindForStatus(statusCode),
		StatusCode: statusCode,
		Message:    message,
	}
}

func kindForStatus(statusCode int) ErrorKind {
	switch statusCode {
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusPaymentRequired:
		return KindInsufficientBalance
	case http.StatusNotFound:
		return KindNotFound
	default:
		return KindGeneralFailure
	}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("termii: %s (status %d): %s", e.Kind, e.StatusCode, e.Message)
}

// Is matches the sentinel for the error's kind.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Kind == KindUnauthorized
	case ErrInsufficientBalance:
		return e.Kind == KindInsufficientBalance
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrGeneralFailure:
		return e.Kind == KindGeneralFailure
	default:
		return false
	}
}

// TransportError means no response was received after every attempt.
type TransportError struct {
	Method   string
	URL      string
	Attempts int
	Err      error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("termii: %s %s failed after %d attempt(s): %v", e.Method, e.URL, e.Attempts, e.Err)
}

// Unwrap returns the underlying network, timeout or context error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is matches ErrTransportFailure.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransportFailure
}

// KindOf returns the classification of err, or "" for unclassified errors.
func KindOf(err error) ErrorKind {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}

	transportErr := &TransportError{}
	if errors.As(err, &transportErr) {
		return KindTransportFailure
	}

	return ""
}

// IsUnauthorized checks if the API key was rejected.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsInsufficientBalance checks if the account ran out of funds.
func IsInsufficientBalance(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsNotFound checks if the referenced resource does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsTransportFailure checks if no response was received.
func IsTransportFailure(err error) bool {
	return errors.Is(err, ErrTransportFailure)
}

// ParseErrorMessage extracts the message field from an error body. Bodies that
// are not JSON objects are returned as trimmed text.
func ParseErrorMessage(body []byte) string {
	var envelope map[string]json.RawMessage

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return strings.TrimSpace(string(body))
	}

	raw, ok := envelope[constants.MessageField]
	if !ok {
		return ""
	}

	var message string

	err = json.Unmarshal(raw, &message)
	if err != nil {
		return strings.TrimSpace(string(raw))
	}

	return message
}
