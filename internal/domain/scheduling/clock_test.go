package scheduling

import (
	"testing"
	"time"
)

func TestCombineDayTime(t *testing.T) {
	ts, err := CombineDayTime("2025-06-01", "09:05")
	if err != nil {
		t.Fatalf("CombineDayTime: %v", err)
	}
	want := time.Date(2025, 6, 1, 9, 5, 0, 0, time.Local)
	if !ts.Equal(want) {
		t.Errorf("got %v, want %v", ts, want)
	}

	for _, bad := range []struct{ day, clock string }{
		{"2025-13-01", "09:00"},
		{"2025-06-01", "25:00"},
		{"not-a-day", "09:00"},
		{"2025-06-01", ""},
	} {
		if _, err := CombineDayTime(bad.day, bad.clock); err == nil {
			t.Errorf("CombineDayTime(%q, %q) should fail", bad.day, bad.clock)
		}
	}
}

func TestTruncateToMinute(t *testing.T) {
	ts := time.Date(2025, 6, 1, 9, 5, 42, 999, time.Local)
	got := TruncateToMinute(ts)
	if got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("TruncateToMinute left sub-minute precision: %v", got)
	}
	if got.Hour() != 9 || got.Minute() != 5 {
		t.Errorf("TruncateToMinute changed the minute: %v", got)
	}
}

func TestFormatClockLabel(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         string
	}{
		{0, 0, "12:00 AM"},
		{9, 0, "9:00 AM"},
		{12, 0, "12:00 PM"},
		{13, 5, "1:05 PM"},
		{23, 59, "11:59 PM"},
	}
	for _, tt := range tests {
		ts := time.Date(2025, 6, 1, tt.hour, tt.minute, 0, 0, time.Local)
		if got := FormatClockLabel(ts); got != tt.want {
			t.Errorf("FormatClockLabel(%02d:%02d) = %q, want %q", tt.hour, tt.minute, got, tt.want)
		}
	}
}

func TestFormatTimeRange(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)
	end := start.Add(30 * time.Minute)
	if got := FormatTimeRange(start, end); got != "9:00 AM → 9:30 AM" {
		t.Errorf("FormatTimeRange = %q", got)
	}
}

func TestNextSlotEnd(t *testing.T) {
	tests := []struct {
		start   string
		minutes int
		want    string
	}{
		{"09:00", 30, "09:30"},
		{"09:45", 30, "10:15"},
		{"10:00", 90, "11:30"},
	}
	for _, tt := range tests {
		got, err := NextSlotEnd(tt.start, tt.minutes)
		if err != nil {
			t.Fatalf("NextSlotEnd(%q, %d): %v", tt.start, tt.minutes, err)
		}
		if got != tt.want {
			t.Errorf("NextSlotEnd(%q, %d) = %q, want %q", tt.start, tt.minutes, got, tt.want)
		}
	}

	if _, err := NextSlotEnd("garbage", 30); err == nil {
		t.Errorf("NextSlotEnd should reject unparseable input")
	}
}
