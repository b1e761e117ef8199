package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-report/internal/models"
	"github.com/Nazarious-ucu/weather-report/pkg/logger"
)

// DefaultOpenWeatherMapURL is the current-weather endpoint used when no URL is configured.
const DefaultOpenWeatherMapURL = "http://api.openweathermap.org/data/2.5/weather"

const (
	observedAtLayout         = "2006-01-02T15:04:05"
	observedAtFractionLayout = "2006-01-02T15:04:05.000000"
	unitsMetric      = "metric"

	errorBodyLimit = 4 << 10
)

var (
	errMissingField = errors.New("missing field")
	errTrailingData = errors.New("unexpected data after JSON body")
)

// Pointer fields let a missing key be told apart from a zero value.
type apiResponse struct {
	Name *string `json:"name"`
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description *string `json:"description"`
	} `json:"weather"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Dt *float64 `json:"dt"`
}

// apiErrorBody is what OpenWeatherMap sends with non-2xx statuses.
// cod comes back as either a number or a string.
type apiErrorBody struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}

// ClientOpenWeatherMap fetches current weather from the OpenWeatherMap API.
type ClientOpenWeatherMap struct {
	apiURL   string
	client   HTTPClient
	logger   zerolog.Logger
	location *time.Location
}

// NewClientOpenWeatherMap constructs a client for apiURL. An empty apiURL
// selects DefaultOpenWeatherMapURL. Observation times are rendered in time.Local.
func NewClientOpenWeatherMap(apiURL string, httpClient HTTPClient, logger zerolog.Logger) *ClientOpenWeatherMap {
	if apiURL == "" {
		apiURL = DefaultOpenWeatherMapURL
	}
	return &ClientOpenWeatherMap{
		apiURL:   apiURL,
		client:   httpClient,
		logger:   logger,
		location: time.Local,
	}
}

// WithLocation returns a copy of the client that renders observation times in loc.
func (s *ClientOpenWeatherMap) WithLocation(loc *time.Location) *ClientOpenWeatherMap {
	c := *s
	if loc != nil {
		c.location = loc
	}
	return &c
}

// FetchCurrentWeather validates the query, performs a single GET against the
// API and normalizes the response. Failures are *ValidationError or *APIError;
// nothing is retried.
func (s *ClientOpenWeatherMap) FetchCurrentWeather(
	ctx context.Context,
	city, apiKey string,
) (models.WeatherReport, error) {
	if err := validateQuery(city, apiKey); err != nil {
		s.logger.Warn().
			Err(err).
			Msg("rejected weather query")
		return models.WeatherReport{}, err
	}

	start := time.Now()

	reqURL, err := s.requestURL(city, apiKey)
	if err != nil {
		return models.WeatherReport{}, fmt.Errorf("build request url: %w", err)
	}
	safeURL := logger.RedactURL(reqURL)

	s.logger.Debug().
		Str("city", city).
		Str("url", safeURL).
		Msg("starting OpenWeatherMap request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("city", city).
			Str("url", safeURL).
			Msg("failed to create HTTP request")
		return models.WeatherReport{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		apiErr := newTransportError(0, redactURLError(err))
		s.logger.Error().
			Err(apiErr).
			Str("city", city).
			Str("url", safeURL).
			Msg("API request failed")
		return models.WeatherReport{}, apiErr
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			s.logger.Error().
				Err(cerr).
				Str("city", city).
				Msg("failed to close response body")
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := newTransportError(resp.StatusCode, statusError(resp))
		s.logger.Error().
			Err(apiErr).
			Str("city", city).
			Int("status_code", resp.StatusCode).
			Msg("API request failed")
		return models.WeatherReport{}, apiErr
	}

	var raw apiResponse
	if err := decodeBody(resp.Body, &raw); err != nil {
		apiErr := newParseError(err)
		s.logger.Error().
			Err(apiErr).
			Str("city", city).
			Msg("invalid API response")
		return models.WeatherReport{}, apiErr
	}

	report, err := raw.toReport(s.location)
	if err != nil {
		apiErr := newParseError(err)
		s.logger.Error().
			Err(apiErr).
			Str("city", city).
			Msg("invalid API response")
		return models.WeatherReport{}, apiErr
	}

	s.logger.Info().
		Str("city", city).
		Dur("duration_ms", time.Since(start)).
		Msg("weather data retrieved")

	return report, nil
}

func (s *ClientOpenWeatherMap) requestURL(city, apiKey string) (string, error) {
	u, err := url.Parse(s.apiURL)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("q", city)
	q.Set("appid", apiKey)
	q.Set("units", unitsMetric)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func validateQuery(city, apiKey string) error {
	if city == "" {
		return &ValidationError{Field: "city name", Reason: "must be a non-empty string"}
	}
	if apiKey == "" {
		return &ValidationError{Field: "API key", Reason: "must be a non-empty string"}
	}
	return nil
}

func (r *apiResponse) toReport(loc *time.Location) (models.WeatherReport, error) {
	switch {
	case r.Name == nil:
		return models.WeatherReport{}, missingField("name")
	case r.Main == nil:
		return models.WeatherReport{}, missingField("main")
	case r.Main.Temp == nil:
		return models.WeatherReport{}, missingField("main.temp")
	case len(r.Weather) == 0:
		return models.WeatherReport{}, missingField("weather[0]")
	case r.Weather[0].Description == nil:
		return models.WeatherReport{}, missingField("weather[0].description")
	case r.Main.Humidity == nil:
		return models.WeatherReport{}, missingField("main.humidity")
	case r.Wind == nil:
		return models.WeatherReport{}, missingField("wind")
	case r.Wind.Speed == nil:
		return models.WeatherReport{}, missingField("wind.speed")
	case r.Dt == nil:
		return models.WeatherReport{}, missingField("dt")
	}

	return models.WeatherReport{
		City:                     *r.Name,
		TemperatureCelsius:       *r.Main.Temp,
		Description:              *r.Weather[0].Description,
		HumidityPercent:          *r.Main.Humidity,
		WindSpeedMetersPerSecond: *r.Wind.Speed,
		ObservedAt:               observedAt(*r.Dt, loc),
	}, nil
}

// decodeBody decodes exactly one JSON value from r; anything but whitespace
// after it is an error.
func decodeBody(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return err
		}
		return errTrailingData
	}
	return nil
}

// observedAt renders Unix seconds at microsecond precision. The fraction is
// only printed when it is non-zero.
func observedAt(dt float64, loc *time.Location) string {
	t := time.UnixMicro(int64(math.Round(dt * 1e6))).In(loc)
	if t.Nanosecond() == 0 {
		return t.Format(observedAtLayout)
	}
	return t.Format(observedAtFractionLayout)
}

func missingField(name string) error {
	return fmt.Errorf("%w %q", errMissingField, name)
}

// statusError describes a non-2xx response, including the upstream message if
// the body carries one.
func statusError(resp *http.Response) error {
	status := resp.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	if err == nil {
		var apiErr apiErrorBody
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("OpenWeatherMap error: status %s: %s", status, apiErr.Message)
		}
	}
	return fmt.Errorf("OpenWeatherMap error: status %s", status)
}

// redactURLError strips the API key out of *url.Error messages.
func redactURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &url.Error{Op: urlErr.Op, URL: logger.RedactURL(urlErr.URL), Err: urlErr.Err}
	}
	return err
}
