package flight

import (
	"context"
	"log/slog"
	"time"
)

// TimeOfDayLayout is the wall-clock layout of timetable departure and arrival times.
const TimeOfDayLayout = "15:04"

// Timetable is the monthly schedule of one directed airport pair.
type Timetable struct {
	Month int
	Days  []TimetableDay
}

type TimetableDay struct {
	Day     int
	Flights []TimetableFlight
}

// TimetableFlight carries times of day only, the date comes from the enclosing day.
type TimetableFlight struct {
	CarrierCode   string
	FlightNumber  string
	DepartureTime string
	ArrivalTime   string
}

// FilterTimetable materializes the timetable of edge for ym into absolute flights and
// keeps those departing strictly after window.Start and arriving strictly before
// window.End. Entries with an unparsable time or an impossible day are skipped.
func FilterTimetable(ctx context.Context, edge RouteEdge, ym YearMonth, timetable Timetable,
	window Window,
) []ResolvedFlight {
	results := make([]ResolvedFlight, 0)

	for _, day := range timetable.Days {
		date := time.Date(ym.Year, ym.Month, day.Day, 0, 0, 0, 0, window.Start.Location())
		if day.Day < 1 || date.Month() != ym.Month {
			slog.WarnContext(ctx, "skipping timetable day outside month",
				slog.String("route", string(edge.Key())),
				slog.String("month", ym.String()),
				slog.Int("day", day.Day))
			continue
		}

		for _, entry := range day.Flights {
			flight, err := resolveFlight(edge, date, entry)
			if err != nil {
				slog.WarnContext(ctx, "skipping timetable flight with invalid time",
					slog.String("route", string(edge.Key())),
					slog.String("flight_number", entry.FlightNumber),
					slog.Any("error", err))
				continue
			}

			if !window.Contains(flight.Departure, flight.Arrival) {
				continue
			}

			results = append(results, flight)
		}
	}

	return results
}

func resolveFlight(edge RouteEdge, date time.Time, entry TimetableFlight) (ResolvedFlight, error) {
	departure, err := atTimeOfDay(date, entry.DepartureTime)
	if err != nil {
		return ResolvedFlight{}, err
	}

	arrival, err := atTimeOfDay(date, entry.ArrivalTime)
	if err != nil {
		return ResolvedFlight{}, err
	}

	// overnight flights land on the following day
	if arrival.Before(departure) {
		arrival = arrival.AddDate(0, 0, 1)
	}

	return ResolvedFlight{
		CarrierCode:  entry.CarrierCode,
		FlightNumber: entry.FlightNumber,
		Origin:       edge.Origin,
		Destination:  edge.Destination,
		Departure:    departure,
		Arrival:      arrival,
	}, nil
}

func atTimeOfDay(date time.Time, clock string) (time.Time, error) {
	parsed, err := time.Parse(TimeOfDayLayout, clock)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), nil
}
