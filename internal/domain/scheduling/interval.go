package scheduling

import (
	"time"

	"github.com/google/uuid"
)

// Interval is a half-open time span [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// WithGrace widens the interval symmetrically by the grace buffer. Grace is
// applied to the candidate side only; because the overlap test is commutative
// the effective exclusion zone between two bookings is still symmetric.
func (iv Interval) WithGrace(grace time.Duration) Interval {
	if grace <= 0 {
		return iv
	}
	return Interval{Start: iv.Start.Add(-grace), End: iv.End.Add(grace)}
}

// Overlaps reports whether the two half-open intervals intersect. Back-to-back
// spans (one's end equal to the other's start) do not overlap. A zero-length
// interval still collides with any interval that strictly covers its instant.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && iv.End.After(other.Start)
}

// BookedSlot is an existing booking as seen by the conflict check.
type BookedSlot struct {
	ID    uuid.UUID
	Title string
	Interval
}

// FindConflict decides whether candidate, widened by grace, collides with any
// existing booking for the same provider. Slots matching excludeID are
// skipped so an appointment never conflicts with itself during re-timing.
// Returns the first blocking slot, or nil when the candidate is clear.
func FindConflict(existing []BookedSlot, candidate Interval, grace time.Duration, excludeID uuid.UUID) *BookedSlot {
	window := candidate.WithGrace(grace)
	for i := range existing {
		slot := &existing[i]
		if excludeID != uuid.Nil && slot.ID == excludeID {
			continue
		}
		if slot.Overlaps(window) {
			return slot
		}
	}
	return nil
}
