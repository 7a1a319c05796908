package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// gameDateLayouts lists the date shapes observed in the source files, most
// specific first.
var gameDateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	DateLayout,
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseGameDate parses a game date in any of the shapes the dataset uses.
// The ok result is false when no layout matches; callers treat that as a
// soft failure and keep the row without a season.
func ParseGameDate(value string) (time.Time, bool) {
	for _, layout := range gameDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SeasonOf returns the calendar-year season of a game date, or 0 for the
// zero time.
func SeasonOf(t time.Time) int {
	if t.IsZero() {
		return 0
	}
	return t.Year()
}
