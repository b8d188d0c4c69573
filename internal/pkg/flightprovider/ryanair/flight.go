package ryanair

// Route is one entry of the routes API. ConnectingAirport is set for routes that are
// sold through a hub and are not a single flight.
type Route struct {
	AirportFrom       string  `json:"airportFrom"`
	AirportTo         string  `json:"airportTo"`
	ConnectingAirport *string `json:"connectingAirport"`
	NewRoute          bool    `json:"newRoute"`
	SeasonalRoute     bool    `json:"seasonalRoute"`
	Operator          string  `json:"operator"`
	Group             string  `json:"group"`
}

type ScheduleResponse struct {
	Month int           `json:"month"`
	Days  []ScheduleDay `json:"days"`
}

type ScheduleDay struct {
	Day     int              `json:"day"`
	Flights []ScheduleFlight `json:"flights"`
}

type ScheduleFlight struct {
	CarrierCode   string `json:"carrierCode"`
	Number        string `json:"number"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
}
