package models

// WeatherReport is a normalized snapshot of the current weather in one city.
type WeatherReport struct {
	City                     string  `json:"city"`
	TemperatureCelsius       float64 `json:"temperature"`
	Description              string  `json:"description"`
	HumidityPercent          float64 `json:"humidity"`
	WindSpeedMetersPerSecond float64 `json:"wind_speed"`
	ObservedAt               string  `json:"timestamp"`
}
