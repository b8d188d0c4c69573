package flight

// RouteFlights is the filtered result of one schedule fetch.
type RouteFlights struct {
	Edge      RouteEdge
	YearMonth YearMonth
	Flights   []ResolvedFlight
}

// GroupByRoute reduces fetch results into flights per route key. Flights keep the order
// of batches, so batches ordered by month yield chronologically grouped flights.
func GroupByRoute(batches []RouteFlights) map[RouteKey][]ResolvedFlight {
	grouped := make(map[RouteKey][]ResolvedFlight, len(batches))

	for _, batch := range batches {
		key := batch.Edge.Key()
		if _, ok := grouped[key]; !ok {
			grouped[key] = make([]ResolvedFlight, 0, len(batch.Flights))
		}
		grouped[key] = append(grouped[key], batch.Flights...)
	}

	return grouped
}

// AssembleItineraries turns direct flights and matched connections into itineraries.
// Direct itineraries come first, value-equal direct flights are emitted once, and both
// groups keep their input order.
func AssembleItineraries(direct []ResolvedFlight, connections []Connection) []Itinerary {
	itineraries := make([]Itinerary, 0, len(direct)+len(connections))
	seen := make(map[flightKey]struct{}, len(direct))

	for _, f := range direct {
		key := f.key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		itineraries = append(itineraries, Itinerary{
			Stops: 0,
			Legs:  []Leg{f.Leg()},
		})
	}

	for _, conn := range connections {
		itineraries = append(itineraries, Itinerary{
			Stops: 1,
			Legs:  []Leg{conn.Departing.Leg(), conn.Arriving.Leg()},
		})
	}

	return itineraries
}
