//go:build unit

package dto

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijalalfrz/flight-connection-service/internal/pkg/exception"
	"github.com/ijalalfrz/flight-connection-service/internal/pkg/flight"
)

func TestSearchCriteria_Validate(t *testing.T) {
	// Initialize validator for tests
	_ = InitValidator("")

	validateRequest := func(req SearchCriteria, wantErr bool, wantMsg string) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Validate()
			if (err != nil) != wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, wantErr)
			}

			if wantErr && err != nil {
				if diff := cmp.Diff(wantMsg, err.Error()); diff != "" {
					t.Fatalf("Validate() error message mismatch (-want +got):\n%s", diff)
				}

				var appErr exception.ApplicationError
				if !errors.As(err, &appErr) || appErr.StatusCode != http.StatusBadRequest {
					t.Fatalf("Validate() expected a bad request error, got %v", err)
				}
			}
		}
	}

	// Helper for pointers
	ptrInt := func(i int) *int { return &i }
	ptrString := func(s string) *string { return &s }

	valid := func() SearchCriteria {
		return SearchCriteria{
			Departure:         "DUB",
			Arrival:           "STN",
			DepartureDateTime: "2024-06-20T07:00",
			ArrivalDateTime:   "2024-06-21T21:00",
		}
	}

	with := func(mutate func(c *SearchCriteria)) SearchCriteria {
		c := valid()
		mutate(&c)
		return c
	}

	t.Run("valid_criteria", validateRequest(valid(), false, ""))

	t.Run("valid_with_options", validateRequest(with(func(c *SearchCriteria) {
		c.MaxStops = ptrInt(0)
		c.SortBy = flight.SortByDuration
		c.SortOrder = flight.SortOrderDesc
		c.DepartureTimeStart = ptrString("06:00")
		c.DepartureTimeEnd = ptrString("12:00")
	}), false, ""))

	t.Run("missing_departure", validateRequest(with(func(c *SearchCriteria) {
		c.Departure = ""
	}), true, "departure is a required field"))

	t.Run("invalid_iata", validateRequest(with(func(c *SearchCriteria) {
		c.Arrival = "LOND"
	}), true, "arrival must be a 3-letter uppercase IATA airport code"))

	t.Run("invalid_datetime_layout", validateRequest(with(func(c *SearchCriteria) {
		c.DepartureDateTime = "2024-06-20 07:00"
	}), true, "departureDateTime must match the layout 2006-01-02T15:04"))

	t.Run("same_airports", validateRequest(with(func(c *SearchCriteria) {
		c.Arrival = "DUB"
	}), true, "departure and arrival must be different airports"))

	t.Run("window_not_increasing", validateRequest(with(func(c *SearchCriteria) {
		c.ArrivalDateTime = c.DepartureDateTime
	}), true, "departureDateTime must be before arrivalDateTime"))

	t.Run("window_reversed", validateRequest(with(func(c *SearchCriteria) {
		c.DepartureDateTime, c.ArrivalDateTime = c.ArrivalDateTime, c.DepartureDateTime
	}), true, "departureDateTime must be before arrivalDateTime"))

	t.Run("too_many_stops", validateRequest(with(func(c *SearchCriteria) {
		c.MaxStops = ptrInt(2)
	}), true, "maxStops must be 1 or less"))

	t.Run("invalid_sort_field", validateRequest(with(func(c *SearchCriteria) {
		c.SortBy = "price"
	}), true, "Invalid sort field price"))

	t.Run("half_open_time_range", validateRequest(with(func(c *SearchCriteria) {
		c.DepartureTimeStart = ptrString("06:00")
	}), true, "departureTimeStart and departureTimeEnd must be provided together"))
}

func TestSearchCriteria_Conversions(t *testing.T) {
	_ = InitValidator("")

	maxStops := 1
	criteria := SearchCriteria{
		Departure:         "DUB",
		Arrival:           "STN",
		DepartureDateTime: "2024-06-20T07:00",
		ArrivalDateTime:   "2024-06-21T21:00",
		MaxStops:          &maxStops,
		SortBy:            flight.SortByArrivalTime,
	}

	req, err := criteria.SearchRequest(DefaultDateTimeLayout)
	require.NoError(t, err)

	want := flight.SearchRequest{
		Origin:      "DUB",
		Destination: "STN",
		Window: flight.Window{
			Start: time.Date(2024, time.June, 20, 7, 0, 0, 0, time.UTC),
			End:   time.Date(2024, time.June, 21, 21, 0, 0, 0, time.UTC),
		},
	}
	if diff := cmp.Diff(want, req); diff != "" {
		t.Fatalf("SearchRequest() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, &flight.SortOption{Field: flight.SortByArrivalTime, Order: flight.SortOrderAsc},
		criteria.SortOption())
	assert.Equal(t, &flight.FilterOption{MaxStops: &maxStops}, criteria.FilterOption())

	empty := SearchCriteria{}
	assert.Nil(t, empty.SortOption())
	assert.Nil(t, empty.FilterOption())
}

func TestNewItineraries(t *testing.T) {
	_ = InitValidator("")

	at := func(value string) time.Time {
		parsed, _ := time.Parse(DefaultDateTimeLayout, value)
		return parsed
	}

	got := NewItineraries([]flight.Itinerary{
		{
			Stops: 1,
			Legs: []flight.Leg{
				{Origin: "DUB", Destination: "WRO", Departure: at("2024-06-20T08:00"),
					Arrival: at("2024-06-20T10:00"), CarrierCode: "FR", FlightNumber: "100"},
				{Origin: "WRO", Destination: "STN", Departure: at("2024-06-20T12:00"),
					Arrival: at("2024-06-20T13:25"), CarrierCode: "FR", FlightNumber: "200"},
			},
		},
	}, DefaultDateTimeLayout)

	want := []Itinerary{
		{
			Stops: 1,
			Legs: []Leg{
				{DepartureAirport: "DUB", ArrivalAirport: "WRO", DepartureDateTime: "2024-06-20T08:00",
					ArrivalDateTime: "2024-06-20T10:00", CarrierCode: "FR", FlightNumber: "100"},
				{DepartureAirport: "WRO", ArrivalAirport: "STN", DepartureDateTime: "2024-06-20T12:00",
					ArrivalDateTime: "2024-06-20T13:25", CarrierCode: "FR", FlightNumber: "200"},
			},
			Duration: Duration{TotalMinutes: 325, Formatted: "5h 25m"},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("NewItineraries() mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchCriteria_CustomLayout(t *testing.T) {
	const layout = "02/01/2006 15:04"

	criteria := SearchCriteria{
		Departure:         "DUB",
		Arrival:           "STN",
		DepartureDateTime: "20/06/2024 07:00",
		ArrivalDateTime:   "21/06/2024 21:00",
	}

	t.Run("window_parsed_with_layout", func(t *testing.T) {
		window, err := criteria.Window(layout)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.June, 20, 7, 0, 0, 0, time.UTC), window.Start)
		assert.Equal(t, time.Date(2024, time.June, 21, 21, 0, 0, 0, time.UTC), window.End)
	})

	t.Run("default_layout_unaffected", func(t *testing.T) {
		_, err := criteria.Window(DefaultDateTimeLayout)
		assert.Error(t, err)

		_, err = criteria.SearchRequest(DefaultDateTimeLayout)
		assert.Equal(t, http.StatusBadRequest, exception.StatusCode(err))
	})

	t.Run("itineraries_formatted_with_layout", func(t *testing.T) {
		departure := time.Date(2024, time.June, 20, 8, 0, 0, 0, time.UTC)
		got := NewItineraries([]flight.Itinerary{
			{Legs: []flight.Leg{{Origin: "DUB", Destination: "STN", Departure: departure,
				Arrival: departure.Add(90 * time.Minute), CarrierCode: "FR", FlightNumber: "1"}}},
		}, layout)

		require.Len(t, got, 1)
		assert.Equal(t, "20/06/2024 08:00", got[0].Legs[0].DepartureDateTime)
		assert.Equal(t, "20/06/2024 09:30", got[0].Legs[0].ArrivalDateTime)
	})
}
