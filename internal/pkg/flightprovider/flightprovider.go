package flightprovider

import (
	"context"
	"net/http"
	"time"

	"github.com/ijalalfrz/flight-connection-service/internal/pkg/flight"
)

// config for schedule provider
type FlightProviderConfig struct {
	RoutesURL    string
	SchedulesURL string
	Operator     string
	Timeout      time.Duration
	MaxRetries   int
	Backoff      time.Duration
	Limiter      Limiter
	HTTPClient   *http.Client
}

// ScheduleProvider is the backend the search engine reads routes and monthly
// timetables from.
type ScheduleProvider interface {
	// Routes returns the usable non-stop edges of the network.
	Routes(ctx context.Context) ([]flight.RouteEdge, error)
	// Schedule returns the timetable of edge for one month. A month without flights
	// is an empty timetable, not an error.
	Schedule(ctx context.Context, edge flight.RouteEdge, ym flight.YearMonth) (flight.Timetable, error)
}
