package flight

import "time"

const testLayout = "2006-01-02T15:04"

func ts(value string) time.Time {
	parsed, err := time.Parse(testLayout, value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func resolved(carrier, number, origin, destination, departure, arrival string) ResolvedFlight {
	return ResolvedFlight{
		CarrierCode:  carrier,
		FlightNumber: number,
		Origin:       origin,
		Destination:  destination,
		Departure:    ts(departure),
		Arrival:      ts(arrival),
	}
}
