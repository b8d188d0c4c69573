package flight

import "time"

// DefaultMinConnectionTime is the floor between landing and the next departure.
const DefaultMinConnectionTime = 2 * time.Hour

// MatchConnections pairs every departing flight with the earliest arriving flight that
// leaves at least minConnection after it lands. Ties keep the first flight in arriving
// order. Departing flights without a feasible partner are dropped. An arriving flight
// may be paired with any number of departing flights.
func MatchConnections(departing, arriving []ResolvedFlight, minConnection time.Duration) []Connection {
	connections := make([]Connection, 0)

	for _, dep := range departing {
		threshold := dep.Arrival.Add(minConnection)
		best := -1

		for i, arr := range arriving {
			if arr.Departure.Before(threshold) {
				continue
			}

			if best == -1 || arr.Departure.Before(arriving[best].Departure) {
				best = i
			}
		}

		if best == -1 {
			continue
		}

		connections = append(connections, Connection{
			Departing: dep,
			Arriving:  arriving[best],
		})
	}

	return connections
}
