package weather

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-report/internal/models"
)

type client interface {
	FetchCurrentWeather(ctx context.Context, city, apiKey string) (models.WeatherReport, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ServiceProvider answers city lookups with a fixed, operator-supplied API key.
type ServiceProvider struct {
	logger zerolog.Logger
	client client
	apiKey string
}

func NewService(logger zerolog.Logger, apiKey string, cl client) *ServiceProvider {
	return &ServiceProvider{logger: logger, client: cl, apiKey: apiKey}
}

func (s *ServiceProvider) GetByCity(ctx context.Context, city string) (models.WeatherReport, error) {
	s.logger.Debug().
		Ctx(ctx).
		Str("city", city).
		Msg("calling FetchCurrentWeather")

	report, err := s.client.FetchCurrentWeather(ctx, city, s.apiKey)
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Str("city", city).
			Err(err).
			Msg("fetch failed")
		return models.WeatherReport{}, err
	}
	return report, nil
}
