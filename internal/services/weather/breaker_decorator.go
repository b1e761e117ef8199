package weather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Nazarious-ucu/weather-report/internal/models"
)

type BreakerConfig struct {
	TimeInterval time.Duration
	TimeTimeOut  time.Duration
	RepeatNumber uint32
}

// BreakerClient stops calling the upstream API after RepeatNumber consecutive
// failures until TimeTimeOut has passed. It never retries a call.
type BreakerClient struct {
	name    string
	cb      *gobreaker.CircuitBreaker
	wrapped client
}

func NewBreakerClient(name string, cfg BreakerConfig, wrapped client) *BreakerClient {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    cfg.TimeInterval,
		Timeout:     cfg.TimeTimeOut,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.RepeatNumber
		},
		// Bad input says nothing about upstream health.
		IsSuccessful: func(err error) bool {
			var vErr *ValidationError
			return err == nil || errors.As(err, &vErr)
		},
	}
	return &BreakerClient{
		name:    name,
		cb:      gobreaker.NewCircuitBreaker(settings),
		wrapped: wrapped,
	}
}

func (b *BreakerClient) FetchCurrentWeather(
	ctx context.Context,
	city, apiKey string,
) (models.WeatherReport, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.wrapped.FetchCurrentWeather(ctx, city, apiKey)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return models.WeatherReport{},
				newTransportError(0, fmt.Errorf("%s unavailable: %w", b.name, err))
		}
		return models.WeatherReport{}, err
	}
	res, ok := result.(models.WeatherReport)
	if !ok {
		return models.WeatherReport{},
			fmt.Errorf("%s returned unexpected result", b.name)
	}
	return res, nil
}
