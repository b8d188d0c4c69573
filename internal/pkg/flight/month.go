package flight

import "time"

// MonthsOverlapping lists every calendar month touched by [start, end], both ends
// inclusive, in chronological order and without duplicates. The month of start is always
// included, even when end does not come after start.
func MonthsOverlapping(start, end time.Time) []YearMonth {
	first := YearMonth{Year: start.Year(), Month: start.Month()}
	last := YearMonth{Year: end.Year(), Month: end.Month()}

	months := []YearMonth{first}
	for ym := first.Next(); !last.Before(ym); ym = ym.Next() {
		months = append(months, ym)
	}

	return months
}
