package weather_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weather-report/internal/handlers/weather"
	"github.com/Nazarious-ucu/weather-report/internal/models"
	serviceWeather "github.com/Nazarious-ucu/weather-report/internal/services/weather"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByCity(ctx context.Context, city string) (models.WeatherReport, error) {
	args := m.Called(ctx, city)

	data, ok := args.Get(0).(models.WeatherReport)

	if !ok {
		return models.WeatherReport{}, args.Error(1)
	}

	return data, args.Error(1)
}

func serve(t *testing.T, m *mockService, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	c.Request = req

	weather.NewHandler(m).GetWeather(c)

	return rec
}

func TestGetWeather_Success(t *testing.T) {
	data := models.WeatherReport{
		City:                     "Kyiv",
		TemperatureCelsius:       20.5,
		Description:              "clear sky",
		HumidityPercent:          40,
		WindSpeedMetersPerSecond: 2.5,
		ObservedAt:               "2023-11-14T22:13:20",
	}

	m := &mockService{}
	m.On("GetByCity", mock.Anything, "Kyiv").Return(data, nil).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	rec := serve(t, m, "/weather?city=Kyiv")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"city": "Kyiv",
		"temperature": 20.5,
		"description": "clear sky",
		"humidity": 40,
		"wind_speed": 2.5,
		"timestamp": "2023-11-14T22:13:20"
	}`, rec.Body.String())
}

func TestGetWeather_NoCity(t *testing.T) {
	m := &mockService{}
	m.On("GetByCity", mock.Anything, "").
		Return(models.WeatherReport{}, &serviceWeather.ValidationError{
			Field:  "city name",
			Reason: "must be a non-empty string",
		}).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	rec := serve(t, m, "/weather")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"city name must be a non-empty string"}`, rec.Body.String())
}

func TestGetWeather_CityNotFound(t *testing.T) {
	m := &mockService{}
	m.On("GetByCity", mock.Anything, "Atlantis").
		Return(models.WeatherReport{}, &serviceWeather.APIError{
			Msg:        "failed to fetch weather data",
			StatusCode: http.StatusNotFound,
			Err:        errors.New("OpenWeatherMap error: status 404 Not Found: city not found"),
		}).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	rec := serve(t, m, "/weather?city=Atlantis")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"City not found"}`, rec.Body.String())
}

func TestGetWeather_UpstreamError(t *testing.T) {
	m := &mockService{}
	m.On("GetByCity", mock.Anything, "Kyiv").
		Return(models.WeatherReport{}, &serviceWeather.APIError{
			Msg: "invalid API response",
			Err: errors.New(`missing field "main"`),
		}).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	rec := serve(t, m, "/weather?city=Kyiv")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error":"invalid API response: missing field \"main\""}`, rec.Body.String())
}

func TestGetWeather_UnclassifiedError(t *testing.T) {
	m := &mockService{}
	m.On("GetByCity", mock.Anything, "Kyiv").
		Return(models.WeatherReport{}, errors.New("service unavailable")).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	rec := serve(t, m, "/weather?city=Kyiv")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"service unavailable"}`, rec.Body.String())
}

func TestGetWeather_SetsDeadline(t *testing.T) {
	m := &mockService{}
	m.On("GetByCity", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), "Kyiv").Return(models.WeatherReport{City: "Kyiv"}, nil).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	rec := serve(t, m, "/weather?city=Kyiv")

	assert.Equal(t, http.StatusOK, rec.Code)
}
