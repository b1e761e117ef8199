package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Nazarious-ucu/weather-report/internal/app"
	"github.com/Nazarious-ucu/weather-report/internal/config"
	serviceWeather "github.com/Nazarious-ucu/weather-report/internal/services/weather"
	"github.com/Nazarious-ucu/weather-report/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	l, err := logger.NewLogger(cfg.LogsPath, "weather-cli", cfg.LogLevel)
	if err != nil {
		log.Panicf("failed to create logger: %v", err)
	}

	httpClient, fileLogger := app.NewHTTPClient(cfg.HTTPLogsPath)
	if fileLogger != nil {
		defer func() {
			if err := fileLogger.Close(); err != nil {
				l.Error().Err(err).Msg("failed to close HTTP traffic log")
			}
		}()
	}

	client := serviceWeather.NewClientOpenWeatherMap(cfg.OpenWeatherMap.URL, httpClient, l)

	report, err := client.FetchCurrentWeather(context.Background(), cfg.City, cfg.OpenWeatherMap.APIKey)
	if err != nil {
		if errors.Is(err, serviceWeather.ErrWeather) {
			fmt.Printf("Error: %v\n", err)
			return
		}
		log.Panic(err)
	}

	if err := printReport(os.Stdout, report); err != nil {
		log.Panic(err)
	}
}
