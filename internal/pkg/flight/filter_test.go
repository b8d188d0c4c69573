package flight

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFilterItineraries(t *testing.T) {
	direct := resolved("FR", "1", "DUB", "STN", "2024-06-20T10:00", "2024-06-20T11:30")
	first := resolved("FR", "100", "DUB", "WRO", "2024-06-20T06:00", "2024-06-20T08:00")
	second := resolved("FR", "200", "WRO", "STN", "2024-06-20T12:00", "2024-06-20T13:30")

	itineraries := []Itinerary{
		{Stops: 0, Legs: []Leg{direct.Leg()}},
		{Stops: 1, Legs: []Leg{first.Leg(), second.Leg()}},
	}

	filterRequest := func(opts *FilterOption, wantNumbers []string) func(t *testing.T) {
		return func(t *testing.T) {
			got := FilterItineraries(context.Background(), itineraries, opts)
			gotNumbers := make([]string, len(got))
			for i, it := range got {
				gotNumbers[i] = it.Legs[0].FlightNumber
			}

			diff := cmp.Diff(wantNumbers, gotNumbers)
			if diff != "" {
				t.Fatalf("FilterItineraries result mismatch (-want +got):\n%s", diff)
			}
		}
	}

	ptrInt := func(i int) *int { return &i }
	ptrString := func(s string) *string { return &s }

	t.Run("nil_filter", filterRequest(nil, []string{"1", "100"}))
	t.Run("direct_only", filterRequest(&FilterOption{MaxStops: ptrInt(0)}, []string{"1"}))
	t.Run("max_duration", filterRequest(&FilterOption{MaxDurationMinutes: ptrInt(120)}, []string{"1"}))
	t.Run("departure_time_range", filterRequest(&FilterOption{
		DepartureTimeStart: ptrString("05:30"),
		DepartureTimeEnd:   ptrString("06:00"),
	}, []string{"100"}))
	t.Run("no_match", filterRequest(&FilterOption{
		DepartureTimeStart: ptrString("20:00"),
		DepartureTimeEnd:   ptrString("23:00"),
	}, []string{}))
}

func TestIsWithinTimeRange_Closure(t *testing.T) {
	timeRangeRequest := func(target, start, end string, want bool) func(t *testing.T) {
		return func(t *testing.T) {
			got := isWithinTimeRange(context.Background(), ts(target), start, end)
			assert.Equal(t, want, got)
		}
	}

	t.Run("within_range", timeRangeRequest("2024-01-01T14:30", "12:00", "16:00", true))
	t.Run("on_upper_bound", timeRangeRequest("2024-01-01T16:00", "12:00", "16:00", true))
	t.Run("past_upper_bound_minute", timeRangeRequest("2024-01-01T16:01", "12:00", "16:00", false))
	t.Run("outside_range", timeRangeRequest("2024-01-01T10:00", "12:00", "16:00", false))
	t.Run("invalid_format", timeRangeRequest("2024-01-01T14:30", "noon", "16:00", false))
}
