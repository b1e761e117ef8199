package config

import (
	"github.com/kelseyhightower/envconfig"
)

type OpenWeatherMap struct {
	APIKey string `envconfig:"OPEN_WEATHER_MAP_API_KEY"`
	URL    string `envconfig:"OPEN_WEATHER_MAP_URL" default:"http://api.openweathermap.org/data/2.5/weather"`
}

type Server struct {
	Host        string `envconfig:"WEATHER_SERVER_HOST" default:"localhost"`
	Port        string `envconfig:"WEATHER_SERVER_PORT" default:"8082"`
	ReadTimeout int    `envconfig:"WEATHER_SERVER_TIMEOUT" default:"10"`
}

type Breaker struct {
	TimeInterval int    `envconfig:"BREAKER_INTERVAL" default:"30"`
	TimeTimeOut  int    `envconfig:"BREAKER_TIMEOUT" default:"10"`
	RepeatNumber uint32 `envconfig:"BREAKER_REPEAT_NUM" default:"5"`
}

type Config struct {
	OpenWeatherMap OpenWeatherMap

	City string `envconfig:"WEATHER_CITY" default:"London"`

	Server  Server
	Breaker Breaker

	LogsPath     string `envconfig:"LOGS_PATH" default:"./log/weather-report.log"`
	HTTPLogsPath string `envconfig:"HTTP_LOGS_PATH"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ServerAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}
