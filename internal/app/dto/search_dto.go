package dto

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ijalalfrz/flight-connection-service/internal/pkg/exception"
	"github.com/ijalalfrz/flight-connection-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-connection-service/internal/pkg/utils"
)

var AllowedSortField = map[string]bool{
	flight.SortByDepartureTime: true,
	flight.SortByArrivalTime:   true,
	flight.SortByDuration:      true,
}

// SearchCriteria is decoded from the query string of the interconnections endpoint or
// from the JSON body of the search endpoint.
type SearchCriteria struct {
	Departure          string  `json:"departure" validate:"required,iata"`
	Arrival            string  `json:"arrival" validate:"required,iata"`
	DepartureDateTime  string  `json:"departureDateTime" validate:"required,search_datetime"`
	ArrivalDateTime    string  `json:"arrivalDateTime" validate:"required,search_datetime"`
	MaxStops           *int    `json:"maxStops,omitempty" validate:"omitempty,min=0,max=1"`
	MaxDurationMinutes *int    `json:"maxDurationMinutes,omitempty" validate:"omitempty,gt=0"`
	DepartureTimeStart *string `json:"departureTimeStart,omitempty" validate:"omitempty,datetime=15:04"`
	DepartureTimeEnd   *string `json:"departureTimeEnd,omitempty" validate:"omitempty,datetime=15:04"`
	SortBy             string  `json:"sortBy,omitempty"`
	SortOrder          string  `json:"sortOrder,omitempty" validate:"omitempty,oneof=asc desc"`
}

func (s *SearchCriteria) Bind(r *http.Request) error {
	s.Departure = strings.ToUpper(strings.TrimSpace(s.Departure))
	s.Arrival = strings.ToUpper(strings.TrimSpace(s.Arrival))

	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *SearchCriteria) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return badRequest(err.Error())
	}

	if s.Departure == s.Arrival {
		return badRequest("departure and arrival must be different airports")
	}

	if s.SortBy != "" && !AllowedSortField[s.SortBy] {
		return badRequest(fmt.Sprintf("Invalid sort field %s", s.SortBy))
	}

	if (s.DepartureTimeStart == nil) != (s.DepartureTimeEnd == nil) {
		return badRequest("departureTimeStart and departureTimeEnd must be provided together")
	}

	return nil
}

// Window parses the requested travel window with layout. Timestamps carry no zone and
// are read as UTC.
func (s *SearchCriteria) Window(layout string) (flight.Window, error) {
	start, err := time.Parse(layout, s.DepartureDateTime)
	if err != nil {
		return flight.Window{}, fmt.Errorf("invalid departureDateTime %q", s.DepartureDateTime)
	}

	end, err := time.Parse(layout, s.ArrivalDateTime)
	if err != nil {
		return flight.Window{}, fmt.Errorf("invalid arrivalDateTime %q", s.ArrivalDateTime)
	}

	return flight.Window{Start: start, End: end}, nil
}

// SearchRequest converts validated criteria into the engine request.
func (s *SearchCriteria) SearchRequest(layout string) (flight.SearchRequest, error) {
	window, err := s.Window(layout)
	if err != nil {
		return flight.SearchRequest{}, badRequest(err.Error())
	}

	return flight.SearchRequest{
		Origin:      s.Departure,
		Destination: s.Arrival,
		Window:      window,
	}, nil
}

// FilterOption returns nil when no filter field is set.
func (s *SearchCriteria) FilterOption() *flight.FilterOption {
	if s.MaxStops == nil && s.MaxDurationMinutes == nil &&
		s.DepartureTimeStart == nil && s.DepartureTimeEnd == nil {
		return nil
	}

	return &flight.FilterOption{
		MaxStops:           s.MaxStops,
		MaxDurationMinutes: s.MaxDurationMinutes,
		DepartureTimeStart: s.DepartureTimeStart,
		DepartureTimeEnd:   s.DepartureTimeEnd,
	}
}

// SortOption returns nil when no sort field is set. The order defaults to ascending.
func (s *SearchCriteria) SortOption() *flight.SortOption {
	if s.SortBy == "" {
		return nil
	}

	order := s.SortOrder
	if order == "" {
		order = flight.SortOrderAsc
	}

	return &flight.SortOption{Field: s.SortBy, Order: order}
}

func badRequest(message string) error {
	return exception.ApplicationError{
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

type Metadata struct {
	TotalResults          int `json:"totalResults"`
	DirectResults         int `json:"directResults"`
	InterconnectedResults int `json:"interconnectedResults"`
	RoutesResolved        int `json:"routesResolved"`
	SchedulesFetched      int `json:"schedulesFetched"`
	SearchTimeMs          int `json:"searchTimeMs"`
}

type Itinerary struct {
	Stops    int      `json:"stops"`
	Legs     []Leg    `json:"legs"`
	Duration Duration `json:"duration"`
}

type Leg struct {
	DepartureAirport  string `json:"departureAirport"`
	ArrivalAirport    string `json:"arrivalAirport"`
	DepartureDateTime string `json:"departureDateTime"`
	ArrivalDateTime   string `json:"arrivalDateTime"`
	CarrierCode       string `json:"carrierCode"`
	FlightNumber      string `json:"flightNumber"`
}

type Duration struct {
	TotalMinutes int    `json:"totalMinutes"`
	Formatted    string `json:"formatted"`
}

// SearchResponse is the response struct for the search endpoints
type SearchResponse struct {
	TimeStamp          string      `json:"timeStamp"`
	ResponseCode       int         `json:"responseCode"`
	Message            string      `json:"message"`
	MessageDescription string      `json:"messageDescription"`
	Metadata           Metadata    `json:"metadata"`
	Data               []Itinerary `json:"data"`
}

// NewItineraries formats engine itineraries with layout.
func NewItineraries(itineraries []flight.Itinerary, layout string) []Itinerary {
	results := make([]Itinerary, len(itineraries))

	for i, it := range itineraries {
		legs := make([]Leg, len(it.Legs))
		for j, leg := range it.Legs {
			legs[j] = Leg{
				DepartureAirport:  leg.Origin,
				ArrivalAirport:    leg.Destination,
				DepartureDateTime: leg.Departure.Format(layout),
				ArrivalDateTime:   leg.Arrival.Format(layout),
				CarrierCode:       leg.CarrierCode,
				FlightNumber:      leg.FlightNumber,
			}
		}

		minutes := int64(it.Duration().Minutes())
		results[i] = Itinerary{
			Stops: it.Stops,
			Legs:  legs,
			Duration: Duration{
				TotalMinutes: int(minutes),
				Formatted:    utils.ConvertMinutesToDuration(minutes),
			},
		}
	}

	return results
}
