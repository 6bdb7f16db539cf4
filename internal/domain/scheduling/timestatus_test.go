package scheduling

import (
	"testing"
	"time"
)

func TestClassifyTimeStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  TimeStatus
	}{
		{"starts in 30m", now.Add(30 * time.Minute), now.Add(60 * time.Minute), TimeStatusUpcoming},
		{"starts in 59m", now.Add(59 * time.Minute), now.Add(90 * time.Minute), TimeStatusUpcoming},
		{"starts in exactly 1h", now.Add(time.Hour), now.Add(90 * time.Minute), TimeStatusScheduled},
		{"starts tomorrow", now.Add(24 * time.Hour), now.Add(25 * time.Hour), TimeStatusScheduled},
		{"running", now.Add(-10 * time.Minute), now.Add(10 * time.Minute), TimeStatusInProgress},
		{"starts right now", now, now.Add(30 * time.Minute), TimeStatusInProgress},
		{"ends right now", now.Add(-30 * time.Minute), now, TimeStatusInProgress},
		{"ended a minute ago", now.Add(-60 * time.Minute), now.Add(-time.Minute), TimeStatusOverdue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyTimeStatus(tt.start, tt.end, now); got != tt.want {
				t.Errorf("ClassifyTimeStatus = %q, want %q", got, tt.want)
			}
		})
	}
}
