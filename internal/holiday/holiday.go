// Package holiday loads and indexes Japanese national holiday dates, such as
// the Cabinet Office syukujitsu.csv distribution.
package holiday

import (
	"time"
)

// Index records which days are holidays, keyed by year and month. Each
// (year, month) pair carries one uint32 mask with bit day-1 set for a holiday.
// Build it once with Add, then it is read-only.
type Index struct {
	masks map[int]map[time.Month]uint32
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{masks: make(map[int]map[time.Month]uint32)}
}

// Add marks the calendar date of t as a holiday. Adding the same date twice
// has no further effect.
func (idx *Index) Add(t time.Time) {
	year, month, day := t.Date()
	months := idx.masks[year]
	if months == nil {
		months = make(map[time.Month]uint32)
		idx.masks[year] = months
	}
	months[month] |= 1 << (day - 1)
}

// IsHoliday reports whether the given day is a recorded holiday. Unknown
// years and months simply report false.
func (idx *Index) IsHoliday(year int, month time.Month, day int) bool {
	return idx.masks[year][month]&(1<<(day-1)) != 0
}

// Len returns the number of recorded holidays.
func (idx *Index) Len() int {
	n := 0
	for _, months := range idx.masks {
		for _, mask := range months {
			for ; mask != 0; mask &= mask - 1 {
				n++
			}
		}
	}
	return n
}
