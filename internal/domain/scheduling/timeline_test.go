package scheduling

import (
	"testing"
	"time"
)

type timelineEntry struct {
	name  string
	start time.Time
}

func TestBinByHourEmpty(t *testing.T) {
	blocks := BinByHour(nil, func(e timelineEntry) time.Time { return e.start })

	if len(blocks) != 24 {
		t.Fatalf("got %d blocks, want 24", len(blocks))
	}
	for i, block := range blocks {
		want := time.Date(2000, 1, 1, i, 0, 0, 0, time.UTC).Format("15")
		if block.Hour != want {
			t.Errorf("block %d hour = %q, want %q", i, block.Hour, want)
		}
		if len(block.Entries) != 0 {
			t.Errorf("block %q has %d entries, want 0", block.Hour, len(block.Entries))
		}
	}
}

func TestBinByHourGroupsAndSorts(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	entries := []timelineEntry{
		{"late nine", day.Add(9*time.Hour + 45*time.Minute)},
		{"early nine", day.Add(9 * time.Hour)},
		{"fourteen", day.Add(14 * time.Hour)},
		{"midnight", day},
		{"last hour", day.Add(23*time.Hour + 30*time.Minute)},
	}

	blocks := BinByHour(entries, func(e timelineEntry) time.Time { return e.start })

	if len(blocks) != 24 {
		t.Fatalf("got %d blocks, want 24", len(blocks))
	}

	total := 0
	for _, block := range blocks {
		total += len(block.Entries)
	}
	if total != len(entries) {
		t.Errorf("total binned entries = %d, want %d", total, len(entries))
	}

	nine := blocks[9]
	if len(nine.Entries) != 2 {
		t.Fatalf("hour 09 has %d entries, want 2", len(nine.Entries))
	}
	if nine.Entries[0].name != "early nine" || nine.Entries[1].name != "late nine" {
		t.Errorf("hour 09 entries not sorted by start: %q, %q", nine.Entries[0].name, nine.Entries[1].name)
	}

	if len(blocks[0].Entries) != 1 || blocks[0].Entries[0].name != "midnight" {
		t.Errorf("hour 00 should hold the midnight entry")
	}
	if len(blocks[23].Entries) != 1 || blocks[23].Entries[0].name != "last hour" {
		t.Errorf("hour 23 should hold the last entry")
	}
}
