package render

import (
	"time"

	"github.com/username/calp/pkg/dateutil"
)

// gridCells is six week rows of seven days each. Every month fits: 31 days
// starting on Saturday still end at cell 36.
const (
	daysPerWeek = 7
	weekRows    = 6
	gridCells   = daysPerWeek * weekRows
)

// DayGrid lays out a month as a fixed 42-cell grid. Cell values are day
// numbers; zero marks padding before the 1st and after the last day. The
// first day lands at the index of its weekday, Sunday = 0.
func DayGrid(year int, month time.Month) [gridCells]int {
	var grid [gridCells]int
	start := dateutil.FirstWeekday(year, month)
	for day := 1; day <= dateutil.LastDayOfMonth(year, month); day++ {
		grid[start+day-1] = day
	}
	return grid
}
