package tool

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

const (
	clockLayout = "15:04"
	dateLayout  = "2006-01-02"
)

// ParseClock parses an "HH:MM" wall-clock string into a time-of-day value.
func ParseClock(s string) (datatypes.Time, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return datatypes.NewTime(t.Hour(), t.Minute(), 0, 0), nil
}

// FormatClock renders a time-of-day value back as "HH:MM".
func FormatClock(t datatypes.Time) string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

// ParseDate parses a "YYYY-MM-DD" string into a date value.
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return datatypes.Date(t), nil
}

// FormatDate renders a date value as "YYYY-MM-DD".
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(dateLayout)
}

// Today returns the current date truncated to midnight local time.
func Today() datatypes.Date {
	now := time.Now()
	return datatypes.Date(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local))
}
