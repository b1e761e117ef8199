package weather_test

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/stretchr/testify/mock"

	"github.com/Nazarious-ucu/weather-report/internal/models"
)

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	resp, ok := args.Get(0).(*http.Response)
	if !ok {
		return nil, args.Error(1)
	}
	return resp, args.Error(1)
}

type mockWrapped struct {
	mock.Mock
}

func (m *mockWrapped) FetchCurrentWeather(ctx context.Context, city, apiKey string) (models.WeatherReport, error) {
	args := m.Called(ctx, city, apiKey)
	data, ok := args.Get(0).(models.WeatherReport)
	if !ok {
		return models.WeatherReport{}, args.Error(1)
	}
	return data, args.Error(1)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}
