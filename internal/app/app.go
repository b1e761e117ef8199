package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerfiles "github.com/swaggo/files"
	swagger "github.com/swaggo/gin-swagger"

	_ "github.com/Nazarious-ucu/weather-report/docs"
	"github.com/Nazarious-ucu/weather-report/internal/config"
	"github.com/Nazarious-ucu/weather-report/internal/handlers/weather"
	loggerT "github.com/Nazarious-ucu/weather-report/internal/services/logger"
	metricsSvc "github.com/Nazarious-ucu/weather-report/internal/services/metrics"
	serviceWeather "github.com/Nazarious-ucu/weather-report/internal/services/weather"
	fLogger "github.com/Nazarious-ucu/weather-report/pkg/logger"
)

const (
	ServiceName = "weather_report"

	shutdownTimeout = 5 * time.Second
	upstreamName    = "OpenWeatherMap"
)

var errMissingAPIKey = errors.New("OPEN_WEATHER_MAP_API_KEY is required to serve weather requests")

// ServiceContainer holds initialized dependencies for the HTTP server.
type ServiceContainer struct {
	WeatherService *serviceWeather.ServiceProvider

	Router     *gin.Engine
	Srv        *http.Server
	fileLogger *fLogger.FileLogger
}

// App ties together config, logger, and metrics for startup/shutdown.
type App struct {
	cfg config.Config
	l   zerolog.Logger
	m   *metricsSvc.Metrics
}

func New(cfg config.Config, logger zerolog.Logger, met *metricsSvc.Metrics) *App {
	return &App{
		cfg: cfg,
		l:   logger,
		m:   met,
	}
}

// Init builds the weather client chain and the router without starting anything.
func (a *App) Init() (ServiceContainer, error) {
	if a.cfg.OpenWeatherMap.APIKey == "" {
		return ServiceContainer{}, errMissingAPIKey
	}

	a.l.Info().
		Str("upstream_url", a.cfg.OpenWeatherMap.URL).
		Str("address", a.cfg.ServerAddress()).
		Msg("initializing weather service")

	httpClient, fileLogger := NewHTTPClient(a.cfg.HTTPLogsPath)

	breakerCfg := serviceWeather.BreakerConfig{
		TimeInterval: time.Duration(a.cfg.Breaker.TimeInterval) * time.Second,
		TimeTimeOut:  time.Duration(a.cfg.Breaker.TimeTimeOut) * time.Second,
		RepeatNumber: a.cfg.Breaker.RepeatNumber,
	}

	openWeather := serviceWeather.NewInstrumentedClient(
		serviceWeather.NewBreakerClient(upstreamName, breakerCfg,
			serviceWeather.NewClientOpenWeatherMap(a.cfg.OpenWeatherMap.URL, httpClient, a.l),
		),
		metricsSvc.NewPromCollector(a.m.Registerer(), ServiceName),
	)
	weatherService := serviceWeather.NewService(a.l, a.cfg.OpenWeatherMap.APIKey, openWeather)

	router := gin.New()
	router.Use(gin.Recovery(), a.m.HTTPMiddleware())

	weatherHandler := weather.NewHandler(weatherService)
	router.GET("/weather", weatherHandler.GetWeather)
	router.GET("/metrics", gin.WrapH(a.m.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", swagger.WrapHandler(swaggerfiles.Handler))

	httpServer := &http.Server{
		Addr:        a.cfg.ServerAddress(),
		Handler:     router,
		ReadTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}

	return ServiceContainer{
		WeatherService: weatherService,
		Router:         router,
		Srv:            httpServer,
		fileLogger:     fileLogger,
	}, nil
}

// Start serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Start(ctx context.Context) error {
	srvContainer, err := a.Init()
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		a.l.Info().Str("address", srvContainer.Srv.Addr).Msg("HTTP server running")
		if serveErr := srvContainer.Srv.ListenAndServe(); serveErr != nil &&
			!errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		a.l.Info().Msg("shutdown signal received, stopping weather service")
	case serveErr := <-errCh:
		if serveErr != nil {
			a.l.Error().Err(serveErr).Msg("HTTP server failed")
			return serveErr
		}
	}

	return a.Shutdown(srvContainer)
}

// Shutdown stops the HTTP server and syncs the traffic logger.
func (a *App) Shutdown(srvContainer ServiceContainer) error {
	a.l.Info().Msg("stopping weather service…")

	if srvContainer.fileLogger != nil {
		defer func(logger *fLogger.FileLogger) {
			if err := logger.Close(); err != nil {
				a.l.Error().Err(err).Msg("failed to close HTTP traffic log")
			}
		}(srvContainer.fileLogger)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srvContainer.Srv.Shutdown(ctx); err != nil {
		a.l.Error().Err(err).Msg("HTTP shutdown error")
		return err
	}

	a.l.Info().Msg("shutdown complete")
	return nil
}

// NewHTTPClient returns the client used for upstream calls. When logsPath is
// set, every exchange is recorded there by a zap-backed RoundTripper and the
// returned FileLogger must be closed; it is nil otherwise. No client timeout is set.
func NewHTTPClient(logsPath string) (*http.Client, *fLogger.FileLogger) {
	if logsPath == "" {
		return &http.Client{}, nil
	}

	fileLogger := fLogger.NewFileLogger(logsPath)

	return &http.Client{Transport: loggerT.NewRoundTripper(fileLogger.Logger)}, fileLogger
}
