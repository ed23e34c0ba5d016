package render

import "github.com/charmbracelet/lipgloss/v2"

// CellStyle classifies how a day cell should be emphasized.
type CellStyle int

const (
	StylePlain CellStyle = iota
	// StyleWeekend marks the Saturday column.
	StyleWeekend
	// StyleHoliday marks the Sunday column and listed holidays.
	StyleHoliday
)

// Styler applies terminal emphasis to a rendered day cell. The renderer
// decides the policy; the styler decides the escape codes.
type Styler interface {
	Style(text string, style CellStyle, today bool) string
}

// PlainStyler leaves cells untouched. Used for --no-color and in tests.
type PlainStyler struct{}

func (PlainStyler) Style(text string, _ CellStyle, _ bool) string { return text }

// ColorStyler paints cells with ANSI colors: red for holidays and Sundays,
// blue for Saturdays, reverse video for today.
type ColorStyler struct {
	plain   lipgloss.Style
	weekend lipgloss.Style
	holiday lipgloss.Style
}

// NewColorStyler returns a ColorStyler with the standard palette.
func NewColorStyler() *ColorStyler {
	return &ColorStyler{
		plain:   lipgloss.NewStyle(),
		weekend: lipgloss.NewStyle().Foreground(lipgloss.Blue),
		holiday: lipgloss.NewStyle().Foreground(lipgloss.Red),
	}
}

func (s *ColorStyler) Style(text string, style CellStyle, today bool) string {
	st := s.plain
	switch style {
	case StyleWeekend:
		st = s.weekend
	case StyleHoliday:
		st = s.holiday
	}
	if today {
		st = st.Reverse(true)
	}
	return st.Render(text)
}
