package domain

import "time"

const DayFormat = "2006-01-02"

// Day truncates t to midnight UTC. All unified entities are keyed by day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayFormat, s)
}

func FormatDay(t time.Time) string {
	return t.UTC().Format(DayFormat)
}

// DayRange returns every calendar day in [start, end] inclusive.
// Returns nil when end precedes start.
func DayRange(start, end time.Time) []time.Time {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return nil
	}

	days := make([]time.Time, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
