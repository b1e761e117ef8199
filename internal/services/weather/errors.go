package weather

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrWeather matches every classified failure of the weather client.
var ErrWeather = errors.New("weather error")

const (
	msgFetchFailed     = "failed to fetch weather data"
	msgInvalidResponse = "invalid API response"
)

// ValidationError reports an input rejected before any network activity.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrWeather
}

// APIError reports a failed exchange with the upstream API or a response
// that could not be read as weather data. StatusCode is zero when no HTTP
// response was received.
type APIError struct {
	Msg        string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func (e *APIError) Is(target error) bool {
	return target == ErrWeather
}

func newTransportError(statusCode int, err error) *APIError {
	return &APIError{Msg: msgFetchFailed, StatusCode: statusCode, Err: err}
}

func newParseError(err error) *APIError {
	return &APIError{Msg: msgInvalidResponse, Err: err}
}

// IsNotFound reports whether err is an APIError caused by an upstream 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
