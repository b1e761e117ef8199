package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weather-report/internal/models"
)

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer

	err := printReport(&buf, models.WeatherReport{
		City:                     "London",
		TemperatureCelsius:       15.5,
		Description:              "light rain",
		HumidityPercent:          72,
		WindSpeedMetersPerSecond: 3.1,
		ObservedAt:               "2023-11-14T22:13:20",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"Current weather in London:\n"+
			"Temperature: 15.5°C\n"+
			"Description: light rain\n"+
			"Humidity: 72%\n"+
			"Wind Speed: 3.1 m/s\n"+
			"Last Updated: 2023-11-14T22:13:20\n",
		buf.String())
}
