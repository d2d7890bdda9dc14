package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate parses the dashboard's date strings. The second return value is
// false for empty or malformed input; callers decide what a bad date means
// (range filters exclude such records, they never match a bound).
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// ResolveDateRange turns a named preset into concrete inclusive bounds at
// call time. "custom" uses the explicit start/end strings; an absent bound
// on custom means unbounded on that side.
func ResolveDateRange(preset, start, end string) (time.Time, time.Time, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfToday := today.Add(24*time.Hour - time.Nanosecond)

	switch preset {
	case "today":
		return today, endOfToday, nil
	case "week":
		return today.AddDate(0, 0, -6), endOfToday, nil
	case "month":
		return today.AddDate(0, -1, 0), endOfToday, nil
	case "quarter":
		return today.AddDate(0, -3, 0), endOfToday, nil
	case "year":
		return today.AddDate(-1, 0, 0), endOfToday, nil
	case "custom":
		from, okFrom := ParseDate(start)
		to, okTo := ParseDate(end)
		if !okFrom && start != "" {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date: %s", start)
		}
		if !okTo && end != "" {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date: %s", end)
		}
		if !okFrom {
			from = time.Time{}
		}
		if !okTo {
			to = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
		} else {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		return from, to, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown date range: %s", preset)
	}
}
