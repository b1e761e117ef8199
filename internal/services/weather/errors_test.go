package weather_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nazarious-ucu/weather-report/internal/services/weather"
)

func TestErrors_ShareBase(t *testing.T) {
	cause := errors.New("boom")
	apiErr := &weather.APIError{Msg: "invalid API response", Err: cause}
	vErr := &weather.ValidationError{Field: "API key", Reason: "must be a non-empty string"}

	assert.ErrorIs(t, apiErr, weather.ErrWeather)
	assert.ErrorIs(t, vErr, weather.ErrWeather)
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", vErr), weather.ErrWeather)
	assert.ErrorIs(t, apiErr, cause)

	assert.EqualError(t, apiErr, "invalid API response: boom")
	assert.EqualError(t, &weather.APIError{Msg: "failed to fetch weather data"}, "failed to fetch weather data")
	assert.EqualError(t, vErr, "API key must be a non-empty string")

	assert.NotErrorIs(t, errors.New("other"), weather.ErrWeather)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, weather.IsNotFound(&weather.APIError{StatusCode: http.StatusNotFound}))
	assert.True(t, weather.IsNotFound(fmt.Errorf("ctx: %w", &weather.APIError{StatusCode: http.StatusNotFound})))
	assert.False(t, weather.IsNotFound(&weather.APIError{StatusCode: http.StatusInternalServerError}))
	assert.False(t, weather.IsNotFound(errors.New("status 404")))
}
