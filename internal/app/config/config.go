package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Backend  Backend    `mapstructure:",squash"`
	Search   Search     `mapstructure:",squash"`
	Messages Messages   `mapstructure:",squash"`
}

type HTTP struct {
	Port        int           `mapstructure:"HTTP_PORT"`
	Timeout     time.Duration `mapstructure:"HTTP_TIMEOUT"`
	CORSOrigins []string      `mapstructure:"HTTP_CORS_ORIGINS"`
}

// Redis is optional. An empty Addr falls back to an in-process rate limiter.
type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// Backend holds the routes and schedules API configuration.
type Backend struct {
	RoutesURL    string        `mapstructure:"BACKEND_ROUTES_URL"`
	SchedulesURL string        `mapstructure:"BACKEND_SCHEDULES_URL"`
	Timeout      time.Duration `mapstructure:"BACKEND_TIMEOUT"`
	MaxRetries   int           `mapstructure:"BACKEND_MAX_RETRIES"`
	RateLimitRPS int           `mapstructure:"BACKEND_RATE_LIMIT"`
	Operator     string        `mapstructure:"BACKEND_OPERATOR"`
}

type Search struct {
	DateTimeLayout       string        `mapstructure:"SEARCH_DATETIME_LAYOUT"`
	MinConnectionTime    time.Duration `mapstructure:"SEARCH_MIN_CONNECTION_TIME"`
	MaxConcurrentFetches int           `mapstructure:"SEARCH_MAX_CONCURRENT_FETCHES"`
}

// Messages are the texts of the search response envelope. Description is a format
// string taking the direct and one-stop itinerary counts.
type Messages struct {
	Found       string `mapstructure:"RESPONSE_MESSAGE_FOUND"`
	NoFlights   string `mapstructure:"RESPONSE_MESSAGE_NO_FLIGHTS"`
	Description string `mapstructure:"RESPONSE_MESSAGE_DESCRIPTION"`
}
