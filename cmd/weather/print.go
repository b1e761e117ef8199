package main

import (
	"fmt"
	"io"

	"github.com/Nazarious-ucu/weather-report/internal/models"
)

func printReport(w io.Writer, r models.WeatherReport) error {
	_, err := fmt.Fprintf(w,
		"Current weather in %s:\n"+
			"Temperature: %v°C\n"+
			"Description: %s\n"+
			"Humidity: %v%%\n"+
			"Wind Speed: %v m/s\n"+
			"Last Updated: %s\n",
		r.City,
		r.TemperatureCelsius,
		r.Description,
		r.HumidityPercent,
		r.WindSpeedMetersPerSecond,
		r.ObservedAt,
	)
	return err
}
