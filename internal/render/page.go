package render

import "strconv"

const monthsPerRow = 3

// Year-label widths for multi-month pages: two months span 40 display
// columns, three span 60.
const (
	yearLineWidthTwo  = 40
	yearLineWidthFull = 60
)

// ComposePage lays rendered month blocks into rows of up to three,
// interleaving their lines, with one blank line between rows. When the
// blocks do not carry their own year suffix (more than one month shown) a
// centered year line comes first. Pure function: composing the same input
// twice yields identical output.
func ComposePage(year int, months [][]string, showYear bool) []string {
	out := make([]string, 0, len(months)*monthLines)

	if !showYear && len(months) > 0 {
		width := yearLineWidthFull
		if len(months) == 2 {
			width = yearLineWidthTwo
		}
		out = append(out, center(strconv.Itoa(year), width))
	}

	for i := 0; i < len(months); i += monthsPerRow {
		if i > 0 {
			out = append(out, "")
		}
		row := months[i:min(i+monthsPerRow, len(months))]
		for line := 0; line < monthLines; line++ {
			var joined string
			for _, block := range row {
				joined += block[line]
			}
			out = append(out, joined)
		}
	}
	return out
}
