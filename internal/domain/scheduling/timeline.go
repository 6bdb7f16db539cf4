package scheduling

import (
	"fmt"
	"sort"
	"time"
)

// HourBlock is one calendar-grid bucket: the zero-padded hour of day and the
// entries starting within it.
type HourBlock[T any] struct {
	Hour    string `json:"hour"`
	Entries []T    `json:"entries"`
}

// BinByHour groups items into 24 hour-of-day buckets keyed by the hour of
// their start time. The result always holds exactly 24 blocks in hour order,
// even for empty input; entries within a block are sorted by start ascending.
func BinByHour[T any](items []T, startOf func(T) time.Time) []HourBlock[T] {
	blocks := make([]HourBlock[T], 24)
	for hr := range blocks {
		blocks[hr].Hour = fmt.Sprintf("%02d", hr)
	}
	for _, item := range items {
		hr := startOf(item).Hour()
		blocks[hr].Entries = append(blocks[hr].Entries, item)
	}
	for hr := range blocks {
		entries := blocks[hr].Entries
		sort.SliceStable(entries, func(i, j int) bool {
			return startOf(entries[i]).Before(startOf(entries[j]))
		})
	}
	return blocks
}
