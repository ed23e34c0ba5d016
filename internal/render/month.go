// Package render turns year/month pairs into printable calendar blocks and
// composes them into pages, up to three months per row.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/username/calp/internal/holiday"
)

// Every month block is 22 display columns wide: a 20-column body plus a
// two-space separator, so blocks can be concatenated side by side.
const headerWidth = 20

// monthLines is the fixed height of a rendered month: header, week-name row
// and six week rows.
const monthLines = 2 + weekRows

// Options bundles everything the month renderer needs besides the target
// month itself.
type Options struct {
	Lang     Lang
	ShowYear bool // append the year to the header (single-month display)
	Today    time.Time
	Holidays *holiday.Index
	Styler   Styler
}

// Month renders one month as its eight fixed-width lines: a centered header,
// the week-name row, and six rows of day cells.
func Month(year int, month time.Month, opts Options) []string {
	lines := make([]string, 0, monthLines)
	lines = append(lines, header(year, month, opts))
	lines = append(lines, weekNameRow(opts.Lang))
	lines = append(lines, dayRows(year, month, opts)...)
	return lines
}

func header(year int, month time.Month, opts Options) string {
	var text string
	switch opts.Lang {
	case LangEnglish:
		text = englishMonthNames[month-1]
	default:
		text = fmt.Sprintf("%d月(%s)", month, japaneseLunarMonthNames[month-1])
	}
	if opts.ShowYear {
		text = fmt.Sprintf("%s %d", text, year)
	}
	return center(text, headerWidth) + "  "
}

func weekNameRow(lang Lang) string {
	names := englishWeekNames
	if lang == LangJapanese {
		names = japaneseWeekNames
	}
	return strings.Join(names[:], " ") + "  "
}

func dayRows(year int, month time.Month, opts Options) []string {
	styler := opts.Styler
	if styler == nil {
		styler = PlainStyler{}
	}
	sameMonth := opts.Today.Year() == year && opts.Today.Month() == month

	grid := DayGrid(year, month)
	rows := make([]string, 0, weekRows)
	for week := 0; week < gridCells; week += daysPerWeek {
		cells := make([]string, daysPerWeek)
		for col, day := range grid[week : week+daysPerWeek] {
			if day == 0 {
				cells[col] = "  "
				continue
			}
			style := cellStyle(col, year, month, day, opts.Holidays)
			today := sameMonth && day == opts.Today.Day()
			cells[col] = styler.Style(fmt.Sprintf("%2d", day), style, today)
		}
		rows = append(rows, strings.Join(cells, " ")+"  ")
	}
	return rows
}

// cellStyle implements the emphasis policy. Sundays and listed holidays get
// the holiday style; holiday wins over weekend when a Saturday is also a
// holiday. Today is layered separately by the caller.
func cellStyle(col int, year int, month time.Month, day int, idx *holiday.Index) CellStyle {
	switch {
	case col == 0 || (idx != nil && idx.IsHoliday(year, month, day)):
		return StyleHoliday
	case col == daysPerWeek-1:
		return StyleWeekend
	}
	return StylePlain
}

// center pads text to the given number of display columns. Widths are
// measured East-Asian aware, so the wide glyphs in Japanese headers count as
// two columns and the blocks stay visually aligned.
func center(text string, width int) string {
	pad := width - runewidth.StringWidth(text)
	if pad <= 0 {
		return text
	}
	left := pad / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
}
