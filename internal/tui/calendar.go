package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/jask/widgetdemo/internal/demo"
)

// calendar is the date picker shown while the store's DatePickerVisible flag
// is set. It only tracks the highlighted day; the chosen date lives in the
// store.
type calendar struct {
	cursor time.Time
}

func newCalendar(d time.Time) calendar {
	return calendar{cursor: demo.DateOnly(d)}
}

func (c calendar) moveDays(n int) calendar {
	c.cursor = c.cursor.AddDate(0, 0, n)
	return c
}

// moveMonths keeps the day of month where possible and clamps to the last day
// of shorter months.
func (c calendar) moveMonths(n int) calendar {
	y, m, d := c.cursor.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, c.cursor.Location())
	last := daysIn(first)
	c.cursor = time.Date(first.Year(), first.Month(), min(d, last), 0, 0, 0, 0, c.cursor.Location())
	return c
}

func daysIn(monthStart time.Time) int {
	return monthStart.AddDate(0, 1, -1).Day()
}

// View renders a Monday-first month grid around the cursor.
func (c calendar) View(today time.Time) string {
	y, m, _ := c.cursor.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, c.cursor.Location())
	today = demo.DateOnly(today)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %d", m, y)))
	b.WriteString("\n")
	b.WriteString(calendarHeadStyle.Render("Mo Tu We Th Fr Sa Su"))
	b.WriteString("\n")

	lead := (int(first.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("   ", lead))
	col := lead
	for day := 1; day <= daysIn(first); day++ {
		cell := fmt.Sprintf("%2d", day)
		date := time.Date(y, m, day, 0, 0, 0, 0, c.cursor.Location())
		switch {
		case date.Equal(c.cursor):
			cell = calendarCursorStyle.Render(cell)
		case date.Equal(today):
			cell = calendarTodayStyle.Render(cell)
		}
		b.WriteString(cell)
		col++
		if col == 7 {
			col = 0
			if day < daysIn(first) {
				b.WriteString("\n")
			}
			continue
		}
		b.WriteString(" ")
	}
	return calendarStyle.Render(strings.TrimRight(b.String(), " "))
}
