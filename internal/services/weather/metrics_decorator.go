package weather

import (
	"context"
	"errors"
	"time"

	"github.com/Nazarious-ucu/weather-report/internal/models"
)

const (
	OutcomeSuccess      = "success"
	OutcomeValidation   = "validation_error"
	OutcomeAPI          = "api_error"
	OutcomeUnclassified = "unclassified"

	fetchOperation = "fetch_current_weather"
)

type metricsCollector interface {
	ObserveLatency(operation string, duration time.Duration)
	IncrementCounter(metric string, labels ...string)
}

type InstrumentedClient struct {
	next      client
	collector metricsCollector
}

func NewInstrumentedClient(next client, collector metricsCollector) *InstrumentedClient {
	return &InstrumentedClient{next: next, collector: collector}
}

func (m *InstrumentedClient) FetchCurrentWeather(
	ctx context.Context,
	city, apiKey string,
) (models.WeatherReport, error) {
	start := time.Now()
	report, err := m.next.FetchCurrentWeather(ctx, city, apiKey)
	m.collector.ObserveLatency(fetchOperation, time.Since(start))
	m.collector.IncrementCounter(fetchOperation, Outcome(err))
	return report, err
}

// Outcome classifies err into one of the Outcome* labels.
func Outcome(err error) string {
	var (
		vErr   *ValidationError
		apiErr *APIError
	)
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.As(err, &vErr):
		return OutcomeValidation
	case errors.As(err, &apiErr):
		return OutcomeAPI
	default:
		return OutcomeUnclassified
	}
}
