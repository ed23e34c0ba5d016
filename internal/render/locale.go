package render

import "fmt"

// Lang selects the output locale.
type Lang int

const (
	LangJapanese Lang = iota
	LangEnglish
)

// ParseLang parses a language flag value ("ja" or "en").
func ParseLang(s string) (Lang, error) {
	switch s {
	case "ja":
		return LangJapanese, nil
	case "en":
		return LangEnglish, nil
	}
	return 0, fmt.Errorf("lang must be 'ja' or 'en', got '%s'", s)
}

func (l Lang) String() string {
	if l == LangEnglish {
		return "en"
	}
	return "ja"
}

// Traditional month names of the old Japanese calendar, shown in headers
// next to the month number.
var japaneseLunarMonthNames = [12]string{
	"睦月",   // Mutsuki
	"如月",   // Kisaragi
	"弥生",   // Yayoi
	"卯月",   // Uzuki
	"皐月",   // Satsuki
	"水無月", // Minazuki
	"文月",   // Fumizuki
	"葉月",   // Hazuki
	"長月",   // Nagatsuki
	"神無月", // Kannazuki
	"霜月",   // Shimotsuki
	"師走",   // Shiwasu
}

var englishMonthNames = [12]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

var japaneseWeekNames = [7]string{"日", "月", "火", "水", "木", "金", "土"}

var englishWeekNames = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
