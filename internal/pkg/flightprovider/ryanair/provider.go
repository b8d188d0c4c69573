package ryanair

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ijalalfrz/flight-connection-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-connection-service/internal/pkg/flightprovider"
	"github.com/ijalalfrz/flight-connection-service/internal/pkg/flightprovider/providerutils"
)

const (
	ProviderName    = "Ryanair"
	DefaultOperator = "RYANAIR"
	DefaultTimeout  = 10 * time.Second
)

type Provider struct {
	Name         string
	RoutesURL    string
	SchedulesURL string
	Operator     string
	Timeout      time.Duration
	MaxRetries   int
	Backoff      time.Duration
	Limiter      flightprovider.Limiter
	HTTPClient   *http.Client
}

func NewProvider(config flightprovider.FlightProviderConfig) *Provider {
	p := &Provider{
		Name:         ProviderName,
		RoutesURL:    config.RoutesURL,
		SchedulesURL: strings.TrimRight(config.SchedulesURL, "/"),
		Operator:     config.Operator,
		Timeout:      config.Timeout,
		MaxRetries:   config.MaxRetries,
		Backoff:      config.Backoff,
		Limiter:      config.Limiter,
		HTTPClient:   config.HTTPClient,
	}

	if p.Operator == "" {
		p.Operator = DefaultOperator
	}

	if p.Timeout <= 0 {
		p.Timeout = DefaultTimeout
	}

	if p.Backoff <= 0 {
		p.Backoff = providerutils.DefaultBackoff
	}

	if p.Limiter == nil {
		p.Limiter = flightprovider.NewLocalLimiter(0)
	}

	if p.HTTPClient == nil {
		p.HTTPClient = &http.Client{}
	}

	return p
}

// Routes fetches the route network and keeps the edges a single flight of the
// configured operator serves.
func (p *Provider) Routes(ctx context.Context) ([]flight.RouteEdge, error) {
	var routes []Route
	if err := p.getJSON(ctx, p.RoutesURL, &routes); err != nil {
		return nil, fmt.Errorf("failed to fetch routes: %w", err)
	}

	edges := p.routesToEdges(routes)

	slog.DebugContext(ctx, "routes fetched", "total", len(routes), "usable", len(edges))

	return edges, nil
}

// Schedule fetches the monthly timetable of edge.
func (p *Provider) Schedule(ctx context.Context, edge flight.RouteEdge, ym flight.YearMonth,
) (flight.Timetable, error) {
	endpoint := fmt.Sprintf("%s/%s/%s/years/%d/months/%d", p.SchedulesURL,
		url.PathEscape(edge.Origin), url.PathEscape(edge.Destination), ym.Year, int(ym.Month))

	var response ScheduleResponse
	if err := p.getJSON(ctx, endpoint, &response); err != nil {
		return flight.Timetable{}, fmt.Errorf("failed to fetch schedule %s %s: %w", edge.Key(), ym, err)
	}

	return p.scheduleToTimetable(response), nil
}

func (p *Provider) routesToEdges(routes []Route) []flight.RouteEdge {
	edges := make([]flight.RouteEdge, 0, len(routes))

	for _, route := range routes {
		if route.ConnectingAirport != nil && *route.ConnectingAirport != "" {
			continue
		}

		if !strings.EqualFold(route.Operator, p.Operator) {
			continue
		}

		edges = append(edges, flight.RouteEdge{
			Origin:      route.AirportFrom,
			Destination: route.AirportTo,
		})
	}

	return edges
}

func (p *Provider) scheduleToTimetable(response ScheduleResponse) flight.Timetable {
	timetable := flight.Timetable{
		Month: response.Month,
		Days:  make([]flight.TimetableDay, len(response.Days)),
	}

	for i, day := range response.Days {
		flights := make([]flight.TimetableFlight, len(day.Flights))
		for j, f := range day.Flights {
			flights[j] = flight.TimetableFlight{
				CarrierCode:   f.CarrierCode,
				FlightNumber:  f.Number,
				DepartureTime: f.DepartureTime,
				ArrivalTime:   f.ArrivalTime,
			}
		}

		timetable.Days[i] = flight.TimetableDay{Day: day.Day, Flights: flights}
	}

	return timetable
}

// getJSON performs a rate limited GET with retries and decodes the body into out.
func (p *Provider) getJSON(ctx context.Context, endpoint string, out any) error {
	return providerutils.Retry(ctx, p.MaxRetries, p.Backoff, flightprovider.ErrRetryExceeded,
		func(ctx context.Context, attempt int) (bool, error) {
			allowed, err := p.Limiter.Allow(ctx, strings.ToLower(p.Name))
			if err != nil {
				return false, fmt.Errorf("failed to rate limit: %w", err)
			}

			// refused before reaching the backend
			if !allowed {
				return false, flightprovider.ErrBackendUnavailable.WithCause(flightprovider.ErrRateLimitExceeded)
			}

			return p.doGet(ctx, endpoint, out)
		})
}

func (p *Provider) doGet(ctx context.Context, endpoint string, out any) (bool, error) {
	reqCtx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		// the caller gave up, nothing to retry
		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		return true, flightprovider.ErrBackendUnavailable.WithCause(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode >= http.StatusInternalServerError:
		return true, flightprovider.ErrBackendUnavailable.WithCause(statusError(resp))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return false, flightprovider.ErrBackendUnavailable.WithCause(statusError(resp))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return true, flightprovider.ErrBackendUnavailable.WithCause(err)
		}

		return false, flightprovider.ErrBackendUnavailable.WithCause(
			fmt.Errorf("failed to decode response: %w", err))
	}

	return false, nil
}

func statusError(resp *http.Response) error {
	return fmt.Errorf("invalid response from backend: %s %s", resp.Request.URL.Path, resp.Status)
}
