package flight

import (
	"fmt"
	"time"
)

// RouteKey identifies a directed airport pair, e.g. "DUB-STN".
type RouteKey string

// RouteEdge states that a non-stop service exists between two airports.
type RouteEdge struct {
	Origin      string
	Destination string
}

func (e RouteEdge) Key() RouteKey {
	return RouteKey(e.Origin + "-" + e.Destination)
}

type PathKind string

const (
	PathDirect  PathKind = "DIRECT"
	PathOneStop PathKind = "ONE_STOP"
)

// CandidatePath is either a direct edge or two edges joined at an intermediate airport.
// Second is the zero value for direct paths.
type CandidatePath struct {
	Kind   PathKind
	First  RouteEdge
	Second RouteEdge
}

func DirectPath(edge RouteEdge) CandidatePath {
	return CandidatePath{Kind: PathDirect, First: edge}
}

func OneStopPath(first, second RouteEdge) CandidatePath {
	return CandidatePath{Kind: PathOneStop, First: first, Second: second}
}

// Edges returns the edges of the path in travel order.
func (p CandidatePath) Edges() []RouteEdge {
	if p.Kind == PathDirect {
		return []RouteEdge{p.First}
	}

	return []RouteEdge{p.First, p.Second}
}

// Intermediate returns the connecting airport, empty for direct paths.
func (p CandidatePath) Intermediate() string {
	if p.Kind == PathDirect {
		return ""
	}

	return p.First.Destination
}

func (p CandidatePath) String() string {
	if p.Kind == PathDirect {
		return fmt.Sprintf("%s(%s)", p.Kind, p.First.Key())
	}

	return fmt.Sprintf("%s(%s, %s)", p.Kind, p.First.Key(), p.Second.Key())
}

// YearMonth is one calendar month, the unit the timetable provider is queried by.
type YearMonth struct {
	Year  int
	Month time.Month
}

func (ym YearMonth) Next() YearMonth {
	if ym.Month == time.December {
		return YearMonth{Year: ym.Year + 1, Month: time.January}
	}

	return YearMonth{Year: ym.Year, Month: ym.Month + 1}
}

func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}

	return ym.Month < other.Month
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Window is the requested travel window. Flights must depart strictly after Start
// and arrive strictly before End.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(departure, arrival time.Time) bool {
	return departure.After(w.Start) && arrival.Before(w.End)
}

type SearchRequest struct {
	Origin      string
	Destination string
	Window      Window
}

// ResolvedFlight is a timetable entry placed on an absolute date.
type ResolvedFlight struct {
	CarrierCode  string
	FlightNumber string
	Origin       string
	Destination  string
	Departure    time.Time
	Arrival      time.Time
}

type flightKey struct {
	carrierCode  string
	flightNumber string
	origin       string
	destination  string
	departure    int64
	arrival      int64
}

func (f ResolvedFlight) key() flightKey {
	return flightKey{
		carrierCode:  f.CarrierCode,
		flightNumber: f.FlightNumber,
		origin:       f.Origin,
		destination:  f.Destination,
		departure:    f.Departure.Unix(),
		arrival:      f.Arrival.Unix(),
	}
}

// Equal reports value equality: same carrier, number, route and absolute times.
func (f ResolvedFlight) Equal(other ResolvedFlight) bool {
	return f.key() == other.key()
}

func (f ResolvedFlight) Leg() Leg {
	return Leg{
		Origin:       f.Origin,
		Destination:  f.Destination,
		Departure:    f.Departure,
		Arrival:      f.Arrival,
		CarrierCode:  f.CarrierCode,
		FlightNumber: f.FlightNumber,
	}
}

// Connection pairs a departing leg with the arriving leg it connects to.
type Connection struct {
	Departing ResolvedFlight
	Arriving  ResolvedFlight
}

type Leg struct {
	Origin       string
	Destination  string
	Departure    time.Time
	Arrival      time.Time
	CarrierCode  string
	FlightNumber string
}

type Itinerary struct {
	Stops int
	Legs  []Leg
}

func (it Itinerary) Departure() time.Time {
	if len(it.Legs) == 0 {
		return time.Time{}
	}

	return it.Legs[0].Departure
}

func (it Itinerary) Arrival() time.Time {
	if len(it.Legs) == 0 {
		return time.Time{}
	}

	return it.Legs[len(it.Legs)-1].Arrival
}

// Duration is the elapsed time from first departure to last arrival, layover included.
func (it Itinerary) Duration() time.Duration {
	return it.Arrival().Sub(it.Departure())
}
