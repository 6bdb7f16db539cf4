package scheduling

import (
	"fmt"
	"time"
)

// Wire formats. Timestamps are naive local wall-clock values at minute
// resolution; seconds are kept in the serialized form but always zero.
const (
	ISOFormat  = "2006-01-02T15:04:05"
	DayFormat  = "2006-01-02"
	TimeFormat = "15:04"
)

// CombineDayTime parses a "2006-01-02" day and a "15:04" clock into one
// local timestamp.
func CombineDayTime(day, clock string) (time.Time, error) {
	return time.ParseInLocation(DayFormat+" "+TimeFormat, day+" "+clock, time.Local)
}

// TruncateToMinute drops seconds and sub-second precision.
func TruncateToMinute(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}

// FormatClockLabel renders a 12-hour clock label such as "9:00 AM".
func FormatClockLabel(t time.Time) string {
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	ampm := "AM"
	if t.Hour() >= 12 {
		ampm = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), ampm)
}

// FormatTimeRange renders a span label such as "9:00 AM → 9:30 AM".
func FormatTimeRange(start, end time.Time) string {
	return FormatClockLabel(start) + " → " + FormatClockLabel(end)
}

// NextSlotEnd returns the "15:04" end clock for a slot of the given length.
// Hours past midnight keep counting up (e.g. 23:45 + 30m yields 24:15), which
// matches how consecutive-slot previews are rendered.
func NextSlotEnd(start string, minutes int) (string, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(start, "%d:%d", &hour, &minute); err != nil {
		return "", fmt.Errorf("invalid start time %q: %w", start, err)
	}
	total := hour*60 + minute + minutes
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}
