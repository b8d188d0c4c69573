package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ijalalfrz/flight-connection-service/internal/app/config"
	"github.com/ijalalfrz/flight-connection-service/internal/app/dto"
	"github.com/ijalalfrz/flight-connection-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-connection-service/internal/pkg/flightprovider"
	"github.com/ijalalfrz/flight-connection-service/internal/pkg/logger"
)

// SearchResult is the outcome of one itinerary search.
type SearchResult struct {
	Itineraries      []flight.Itinerary
	RoutesResolved   int
	SchedulesFetched int
}

type SearchService struct {
	Provider             flightprovider.ScheduleProvider
	MinConnectionTime    time.Duration
	MaxConcurrentFetches int
	DateTimeLayout       string
	Messages             config.Messages
}

func NewSearchService(provider flightprovider.ScheduleProvider, cfg config.Search,
	messages config.Messages,
) *SearchService {
	minConnection := cfg.MinConnectionTime
	if minConnection <= 0 {
		minConnection = flight.DefaultMinConnectionTime
	}

	layout := cfg.DateTimeLayout
	if layout == "" {
		layout = dto.DefaultDateTimeLayout
	}

	return &SearchService{
		Provider:             provider,
		MinConnectionTime:    minConnection,
		MaxConcurrentFetches: cfg.MaxConcurrentFetches,
		DateTimeLayout:       layout,
		Messages:             messages,
	}
}

// Search finds direct and one-stop itineraries for the criteria, then applies the
// optional filters and sort order.
// Search godoc
// @Summary      Search interconnections
// @Tags         Flights
// @Description  Search direct flights and one-stop connections between two airports
// @Param        request  body      dto.SearchCriteria  true  "Search Criteria"
// @Success      200      {object}  dto.SearchResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/search [post]
func (s *SearchService) Search(ctx context.Context, criteria dto.SearchCriteria) (dto.SearchResponse, error) {
	startTime := time.Now()

	req, err := criteria.SearchRequest(s.DateTimeLayout)
	if err != nil {
		return dto.SearchResponse{}, ErrInvalidRequest.WithCause(err)
	}

	result, err := s.FindItineraries(ctx, req)
	if err != nil {
		return dto.SearchResponse{}, fmt.Errorf("failed to find itineraries: %w", err)
	}

	itineraries := flight.FilterItineraries(ctx, result.Itineraries, criteria.FilterOption())
	itineraries = flight.SortItineraries(itineraries, criteria.SortOption())

	direct := 0
	for _, it := range itineraries {
		if it.Stops == 0 {
			direct++
		}
	}

	message := s.Messages.Found
	if len(itineraries) == 0 {
		message = s.Messages.NoFlights
	}

	return dto.SearchResponse{
		TimeStamp:          time.Now().UTC().Format(time.RFC3339),
		ResponseCode:       http.StatusOK,
		Message:            message,
		MessageDescription: fmt.Sprintf(s.Messages.Description, direct, len(itineraries)-direct),
		Metadata: dto.Metadata{
			TotalResults:          len(itineraries),
			DirectResults:         direct,
			InterconnectedResults: len(itineraries) - direct,
			RoutesResolved:        result.RoutesResolved,
			SchedulesFetched:      result.SchedulesFetched,
			SearchTimeMs:          int(time.Since(startTime).Milliseconds()),
		},
		Data: dto.NewItineraries(itineraries, s.DateTimeLayout),
	}, nil
}

// FindItineraries resolves candidate paths, fetches every schedule they need
// concurrently and assembles the itineraries. Any failed fetch fails the search and
// cancels the fetches still running. No route is an empty result, not an error.
func (s *SearchService) FindItineraries(ctx context.Context, req flight.SearchRequest) (SearchResult, error) {
	ctx = logger.WithAttrs(ctx,
		slog.String("origin", req.Origin),
		slog.String("destination", req.Destination))

	edges, err := s.Provider.Routes(ctx)
	if err != nil {
		return SearchResult{}, err
	}

	paths := flight.ResolveRoutes(edges, req.Origin, req.Destination)
	if len(paths) == 0 {
		slog.InfoContext(ctx, "no route between airports")
		return SearchResult{Itineraries: []flight.Itinerary{}}, nil
	}

	months := flight.MonthsOverlapping(req.Window.Start, req.Window.End)

	batches, err := s.fetchSchedules(ctx, flight.DistinctEdges(paths), months, req.Window)
	if err != nil {
		return SearchResult{}, err
	}

	flightsByRoute := flight.GroupByRoute(batches)

	var (
		direct      []flight.ResolvedFlight
		connections []flight.Connection
	)

	for _, path := range paths {
		switch path.Kind {
		case flight.PathDirect:
			direct = flightsByRoute[path.First.Key()]
		case flight.PathOneStop:
			connections = append(connections, flight.MatchConnections(
				flightsByRoute[path.First.Key()],
				flightsByRoute[path.Second.Key()],
				s.MinConnectionTime,
			)...)
		}
	}

	itineraries := flight.AssembleItineraries(direct, connections)

	slog.InfoContext(ctx, "search completed",
		slog.Int("paths", len(paths)),
		slog.Int("schedules", len(batches)),
		slog.Int("itineraries", len(itineraries)))

	return SearchResult{
		Itineraries:      itineraries,
		RoutesResolved:   len(paths),
		SchedulesFetched: len(batches),
	}, nil
}

// fetchSchedules fetches one timetable per edge and month. Results are ordered by
// edge, then month, whatever order the fetches complete in.
func (s *SearchService) fetchSchedules(ctx context.Context, edges []flight.RouteEdge,
	months []flight.YearMonth, window flight.Window,
) ([]flight.RouteFlights, error) {
	batches := make([]flight.RouteFlights, len(edges)*len(months))

	g, gctx := errgroup.WithContext(ctx)
	if s.MaxConcurrentFetches > 0 {
		g.SetLimit(s.MaxConcurrentFetches)
	}

	for i, edge := range edges {
		edge := edge
		for j, ym := range months {
			ym := ym
			slot := i*len(months) + j

			g.Go(func() error {
				timetable, err := s.Provider.Schedule(gctx, edge, ym)
				if err != nil {
					slog.WarnContext(gctx, "schedule fetch failed",
						slog.String("route", string(edge.Key())),
						slog.String("month", ym.String()),
						slog.Any("error", err))
					return err
				}

				batches[slot] = flight.RouteFlights{
					Edge:      edge,
					YearMonth: ym,
					Flights:   flight.FilterTimetable(gctx, edge, ym, timetable, window),
				}

				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return batches, nil
}
