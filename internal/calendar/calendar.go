// Package calendar holds the month-view math of the schedule screen.
package calendar

import (
	"fmt"
	"time"
)

// GridCells is the fixed size of a month grid: six weeks of seven days.
const GridCells = 42

// Cell is one slot of the month grid. Blank cells pad the weeks before the
// first and after the last day of the month.
type Cell struct {
	Day     int    `json:"day,omitempty"`
	DateISO string `json:"dateISO,omitempty"`
	Blank   bool   `json:"blank"`
}

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthGrid lays out a month starting on Sunday. The number of leading blanks
// equals the weekday of the first day.
func MonthGrid(year int, month time.Month) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lead := int(first.Weekday())
	days := DaysInMonth(year, month)

	cells := make([]Cell, 0, GridCells)
	for i := 0; i < lead; i++ {
		cells = append(cells, Cell{Blank: true})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{Day: d, DateISO: ISODate(year, month, d)})
	}
	for len(cells) < GridCells {
		cells = append(cells, Cell{Blank: true})
	}
	return cells
}

func ISODate(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// PrevMonth and NextMonth step the month cursor across year boundaries.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// InMonth reports whether an ISO date belongs to the given month.
func InMonth(dateISO string, year int, month time.Month) bool {
	return len(dateISO) >= 7 && dateISO[:7] == fmt.Sprintf("%04d-%02d", year, int(month))
}

// FormatKorean renders an ISO date as "2024년 6월 1일". Unparseable input is
// returned unchanged.
func FormatKorean(dateISO string) string {
	t, err := time.Parse("2006-01-02", dateISO)
	if err != nil {
		return dateISO
	}
	return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
}
