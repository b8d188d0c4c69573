package flight

import (
	"context"
	"log/slog"
	"time"
)

// FilterOption narrows assembled itineraries. Nil fields are not applied.
type FilterOption struct {
	MaxStops           *int
	MaxDurationMinutes *int
	DepartureTimeStart *string
	DepartureTimeEnd   *string
}

func FilterItineraries(ctx context.Context, itineraries []Itinerary, filterOpts *FilterOption) []Itinerary {
	if filterOpts == nil {
		return itineraries
	}

	results := make([]Itinerary, 0, len(itineraries))

	for _, itinerary := range itineraries {
		if filterOpts.MaxStops != nil && itinerary.Stops > *filterOpts.MaxStops {
			continue
		}

		if filterOpts.MaxDurationMinutes != nil &&
			int(itinerary.Duration().Minutes()) > *filterOpts.MaxDurationMinutes {
			continue
		}

		if filterOpts.DepartureTimeStart != nil && filterOpts.DepartureTimeEnd != nil {
			if !isWithinTimeRange(ctx, itinerary.Departure(),
				*filterOpts.DepartureTimeStart, *filterOpts.DepartureTimeEnd) {
				continue
			}
		}

		results = append(results, itinerary)
	}

	return results
}

// startTime and endTime are times of day, compared at minute precision against the
// wall clock of target. Both bounds are inclusive.
func isWithinTimeRange(ctx context.Context, target time.Time, startTime string, endTime string) bool {
	startTimeParsed, err := time.Parse(TimeOfDayLayout, startTime)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse start time", slog.String("time", startTime), slog.Any("error", err))
		return false
	}

	endTimeParsed, err := time.Parse(TimeOfDayLayout, endTime)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse end time", slog.String("time", endTime), slog.Any("error", err))
		return false
	}

	minuteOfDay := target.Hour()*60 + target.Minute()

	return minuteOfDay >= startTimeParsed.Hour()*60+startTimeParsed.Minute() &&
		minuteOfDay <= endTimeParsed.Hour()*60+endTimeParsed.Minute()
}
