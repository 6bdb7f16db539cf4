package scheduling

import "time"

// TimeStatus is the ephemeral, read-time classification of an appointment
// against the wall clock. It is recomputed on every read and is orthogonal to
// the persisted lifecycle status: a cancelled visit can still read as overdue.
type TimeStatus string

const (
	TimeStatusUpcoming   TimeStatus = "upcoming"
	TimeStatusScheduled  TimeStatus = "scheduled"
	TimeStatusInProgress TimeStatus = "in-progress"
	TimeStatusOverdue    TimeStatus = "overdue"
)

// UpcomingThreshold is how close a future appointment has to be before it
// reads as upcoming rather than scheduled.
const UpcomingThreshold = time.Hour

// ClassifyTimeStatus maps (start, end, now) to a display status. Both
// interval boundaries count as in-progress.
func ClassifyTimeStatus(start, end, now time.Time) TimeStatus {
	if now.Before(start) {
		if start.Sub(now) < UpcomingThreshold {
			return TimeStatusUpcoming
		}
		return TimeStatusScheduled
	}
	if !now.After(end) {
		return TimeStatusInProgress
	}
	return TimeStatusOverdue
}
