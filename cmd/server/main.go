package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Nazarious-ucu/weather-report/internal/app"
	"github.com/Nazarious-ucu/weather-report/internal/config"
	metricsSvc "github.com/Nazarious-ucu/weather-report/internal/services/metrics"
	"github.com/Nazarious-ucu/weather-report/pkg/logger"
)

// @title Weather Report API
// @version 1.0
// @description Current weather for a city, normalized from OpenWeatherMap
// @host localhost:8082
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	l, err := logger.NewLogger(cfg.LogsPath, app.ServiceName, cfg.LogLevel)
	if err != nil {
		log.Panicf("failed to create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(*cfg, l, metricsSvc.NewMetrics(app.ServiceName))

	if err := application.Start(ctx); err != nil {
		l.Fatal().Err(err).Msg("application failed to run")
	}
}
