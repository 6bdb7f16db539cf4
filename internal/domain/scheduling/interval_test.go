package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func at(t *testing.T, clock string) time.Time {
	t.Helper()
	ts, err := CombineDayTime("2025-06-01", clock)
	if err != nil {
		t.Fatalf("CombineDayTime(%q): %v", clock, err)
	}
	return ts
}

func span(t *testing.T, start, end string) Interval {
	t.Helper()
	return Interval{Start: at(t, start), End: at(t, end)}
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{"disjoint before", span(t, "09:00", "09:30"), span(t, "10:00", "10:30"), false},
		{"disjoint after", span(t, "10:00", "10:30"), span(t, "09:00", "09:30"), false},
		{"back to back", span(t, "09:00", "09:30"), span(t, "09:30", "10:00"), false},
		{"partial overlap", span(t, "09:00", "09:30"), span(t, "09:15", "09:45"), true},
		{"contained", span(t, "09:00", "10:00"), span(t, "09:15", "09:30"), true},
		{"identical", span(t, "09:00", "09:30"), span(t, "09:00", "09:30"), true},
		{"zero-length inside", span(t, "09:15", "09:15"), span(t, "09:00", "09:30"), true},
		{"zero-length at boundary", span(t, "09:30", "09:30"), span(t, "09:00", "09:30"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("a.Overlaps(b) = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("b.Overlaps(a) = %v, want %v (test must be commutative)", got, tt.want)
			}
		})
	}
}

func TestWithGrace(t *testing.T) {
	iv := span(t, "09:00", "09:30")

	widened := iv.WithGrace(5 * time.Minute)
	if !widened.Start.Equal(at(t, "08:55")) || !widened.End.Equal(at(t, "09:35")) {
		t.Errorf("WithGrace(5m) = [%v, %v)", widened.Start, widened.End)
	}

	same := iv.WithGrace(0)
	if !same.Start.Equal(iv.Start) || !same.End.Equal(iv.End) {
		t.Errorf("WithGrace(0) changed the interval")
	}
}

func TestFindConflict(t *testing.T) {
	first := BookedSlot{ID: uuid.New(), Title: "Cleaning", Interval: span(t, "09:00", "09:30")}
	second := BookedSlot{ID: uuid.New(), Title: "Filling", Interval: span(t, "11:00", "11:30")}
	booked := []BookedSlot{first, second}

	t.Run("identical slot conflicts", func(t *testing.T) {
		got := FindConflict(booked, span(t, "09:00", "09:30"), 5*time.Minute, uuid.Nil)
		if got == nil || got.ID != first.ID {
			t.Fatalf("FindConflict = %+v, want slot %s", got, first.ID)
		}
	})

	t.Run("grace padding widens the exclusion zone", func(t *testing.T) {
		// 09:30-10:00 is clear of 09:00-09:30 only without grace.
		if got := FindConflict(booked, span(t, "09:30", "10:00"), 0, uuid.Nil); got != nil {
			t.Errorf("back-to-back with zero grace should be allowed, got %+v", got)
		}
		if got := FindConflict(booked, span(t, "09:30", "10:00"), 5*time.Minute, uuid.Nil); got == nil {
			t.Errorf("5m grace should block a back-to-back booking")
		}
	})

	t.Run("exclude own id", func(t *testing.T) {
		if got := FindConflict(booked, span(t, "09:00", "09:30"), 5*time.Minute, first.ID); got != nil {
			t.Errorf("slot must not conflict with itself, got %+v", got)
		}
	})

	t.Run("zero-length candidate collides with covering interval", func(t *testing.T) {
		if got := FindConflict(booked, span(t, "11:10", "11:10"), 0, uuid.Nil); got == nil || got.ID != second.ID {
			t.Errorf("instantaneous candidate inside a booking should conflict, got %+v", got)
		}
	})

	t.Run("clear slot", func(t *testing.T) {
		if got := FindConflict(booked, span(t, "14:00", "14:30"), 5*time.Minute, uuid.Nil); got != nil {
			t.Errorf("expected no conflict, got %+v", got)
		}
	})
}

// The temporal-exclusivity invariant: after any sequence of accepted
// bookings, no two grace-widened intervals for one provider overlap.
func TestSequentialBookingsNeverOverlap(t *testing.T) {
	grace := 5 * time.Minute
	candidates := []Interval{
		span(t, "09:00", "09:30"),
		span(t, "09:20", "09:50"), // rejected: overlaps first
		span(t, "09:40", "10:10"),
		span(t, "09:33", "09:37"), // rejected: inside grace zone of first
		span(t, "10:20", "10:50"),
		span(t, "10:15", "10:45"), // rejected
	}

	var booked []BookedSlot
	for _, c := range candidates {
		if FindConflict(booked, c, grace, uuid.Nil) == nil {
			booked = append(booked, BookedSlot{ID: uuid.New(), Interval: c})
		}
	}

	if len(booked) != 3 {
		t.Fatalf("accepted %d bookings, want 3", len(booked))
	}
	for i := range booked {
		for j := i + 1; j < len(booked); j++ {
			if booked[i].WithGrace(grace).Overlaps(booked[j].Interval) {
				t.Errorf("accepted bookings %d and %d violate the exclusivity invariant", i, j)
			}
		}
	}
}
