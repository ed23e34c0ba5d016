package render

import (
	"testing"
	"time"
)

// wantGrid builds the expected 42-cell layout from a leading zero count and
// a day count; the rest of the grid stays zero.
func wantGrid(lead, days int) [gridCells]int {
	var grid [gridCells]int
	for d := 1; d <= days; d++ {
		grid[lead+d-1] = d
	}
	return grid
}

func TestDayGridStartingWeekdays(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		wantLead int
		wantDays int
	}{
		{"starts Sunday", 2024, time.December, 0, 31},
		{"starts Monday", 2024, time.July, 1, 31},
		{"starts Tuesday", 2024, time.October, 2, 31},
		{"starts Wednesday", 2024, time.May, 3, 31},
		{"starts Thursday", 2024, time.August, 4, 31},
		{"starts Friday", 2024, time.March, 5, 31},
		{"starts Saturday", 2024, time.June, 6, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DayGrid(tt.year, tt.month)
			if want := wantGrid(tt.wantLead, tt.wantDays); got != want {
				t.Errorf("DayGrid(%d, %v) = %v, want %v", tt.year, tt.month, got, want)
			}
		})
	}
}

func TestDayGridFebruary(t *testing.T) {
	// 2024-02-01 is a Thursday; leap year gives 29 days.
	got := DayGrid(2024, time.February)
	if want := wantGrid(4, 29); got != want {
		t.Errorf("DayGrid(2024, February) = %v, want %v", got, want)
	}

	// 2023-02-01 is a Wednesday in a common year.
	got = DayGrid(2023, time.February)
	if want := wantGrid(3, 28); got != want {
		t.Errorf("DayGrid(2023, February) = %v, want %v", got, want)
	}
}

func TestDayGridCellCount(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		grid := DayGrid(2024, month)

		nonZero := 0
		for _, cell := range grid {
			if cell != 0 {
				nonZero++
			}
		}
		want := time.Date(2024, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
		if nonZero != want {
			t.Errorf("DayGrid(2024, %v) has %d non-zero cells, want %d", month, nonZero, want)
		}
	}
}
