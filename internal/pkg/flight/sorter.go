package flight

import "sort"

const (
	SortByDepartureTime = "departure_time"
	SortByArrivalTime   = "arrival_time"
	SortByDuration      = "duration"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

type SortOption struct {
	Field string
	Order string
}

// SortItineraries orders itineraries by the requested field. Without an option the
// assembled order (direct first, then connections) is kept. Equal keys keep their
// relative order.
func SortItineraries(itineraries []Itinerary, sortOption *SortOption) []Itinerary {
	if sortOption == nil {
		return itineraries
	}

	desc := sortOption.Order == SortOrderDesc

	switch sortOption.Field {
	case SortByDepartureTime:
		sort.SliceStable(itineraries, func(i, j int) bool {
			if desc {
				return itineraries[i].Departure().After(itineraries[j].Departure())
			}
			return itineraries[i].Departure().Before(itineraries[j].Departure())
		})
	case SortByArrivalTime:
		sort.SliceStable(itineraries, func(i, j int) bool {
			if desc {
				return itineraries[i].Arrival().After(itineraries[j].Arrival())
			}
			return itineraries[i].Arrival().Before(itineraries[j].Arrival())
		})
	case SortByDuration:
		sort.SliceStable(itineraries, func(i, j int) bool {
			if desc {
				return itineraries[i].Duration() > itineraries[j].Duration()
			}
			return itineraries[i].Duration() < itineraries[j].Duration()
		})
	}

	return itineraries
}
