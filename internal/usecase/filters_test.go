package usecase

import (
	"testing"
	"time"

	"clinic-scheduler/internal/domain/entity"

	"github.com/google/uuid"
)

func mkAppt(name, title string, end time.Time) entity.Appointment {
	return entity.Appointment{
		ID:          uuid.New(),
		PatientName: name,
		Title:       title,
		StartsAt:    end.Add(-30 * time.Minute),
		EndsAt:      end,
	}
}

func TestFilterSearch(t *testing.T) {
	now := time.Now()
	phone := "0791234567"
	pid := uuid.New()
	appts := []entity.Appointment{
		mkAppt("Ahmad Khalil", "Follow-up", now),
		mkAppt("Sara Haddad", "Dental cleaning", now),
		{ID: uuid.New(), PatientID: &pid, PatientName: "Omar", PatientPhone: &phone, Title: "X-ray", EndsAt: now},
	}
	shortIDs := map[string]string{pid.String(): "PT-0042"}

	tests := []struct {
		name string
		term string
		want int
	}{
		{"empty term keeps everything", "", 3},
		{"matches patient name case-insensitively", "ahmad", 1},
		{"matches title", "cleaning", 1},
		{"matches phone", "079123", 1},
		{"matches short id", "pt-0042", 1},
		{"no match", "nobody", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := make([]entity.Appointment, len(appts))
			copy(in, appts)
			got := filterSearch(in, shortIDs, tc.term)
			if len(got) != tc.want {
				t.Errorf("filterSearch(%q) kept %d rows, want %d", tc.term, len(got), tc.want)
			}
		})
	}
}

func TestFilterShow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	past := mkAppt("A", "past visit", now.Add(-time.Hour))
	future := mkAppt("B", "future visit", now.Add(90*time.Minute))
	inProgress := mkAppt("C", "in progress", now.Add(20*time.Minute)) // started 10m ago
	startingNow := mkAppt("D", "starting now", now.Add(30*time.Minute))

	tests := []struct {
		name string
		show string
		want []string
	}{
		{"all", "all", []string{"past visit", "future visit", "in progress", "starting now"}},
		{"past", "past", []string{"past visit", "in progress"}},
		{"upcoming", "upcoming", []string{"future visit", "starting now"}},
		{"unknown falls back to upcoming", "bogus", []string{"future visit", "starting now"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := []entity.Appointment{past, future, inProgress, startingNow}
			got := filterShow(in, tc.show, now)
			if len(got) != len(tc.want) {
				t.Fatalf("filterShow(%q) kept %d rows, want %d", tc.show, len(got), len(tc.want))
			}
			for i, title := range tc.want {
				if got[i].Title != title {
					t.Errorf("row %d = %q, want %q", i, got[i].Title, title)
				}
			}
		})
	}
}

// The buckets split on the start time, not the end: a visit that is underway
// has already started, so it belongs to past and never to upcoming.
func TestFilterShowBucketsInProgressByStart(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	underway := entity.Appointment{
		ID:       uuid.New(),
		Title:    "underway",
		StartsAt: now.Add(-10 * time.Minute),
		EndsAt:   now.Add(20 * time.Minute),
	}

	if got := filterShow([]entity.Appointment{underway}, "upcoming", now); len(got) != 0 {
		t.Errorf("upcoming kept a row that already started")
	}
	if got := filterShow([]entity.Appointment{underway}, "past", now); len(got) != 1 {
		t.Errorf("past dropped a row that already started")
	}
}

func TestDayRange(t *testing.T) {
	from, to, err := dayRange("2026-03-10", "")
	if err != nil {
		t.Fatalf("dayRange returned error: %v", err)
	}
	if from.Hour() != 0 || from.Minute() != 0 {
		t.Errorf("from = %v, want midnight", from)
	}
	if to.Hour() != 23 || to.Minute() != 59 || to.Second() != 59 {
		t.Errorf("to = %v, want end of day", to)
	}
	if from.Day() != to.Day() {
		t.Errorf("empty end day should cover a single day, got %v..%v", from, to)
	}

	if _, _, err := dayRange("not-a-day", ""); err != ErrInvalidDateTime {
		t.Errorf("dayRange with bad day = %v, want ErrInvalidDateTime", err)
	}
}
