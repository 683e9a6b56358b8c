package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCalendarMoveMonthsClampsDay(t *testing.T) {
	t.Parallel()

	c := newCalendar(time.Date(2024, 1, 31, 15, 0, 0, 0, time.UTC))
	require.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), c.cursor)

	c = c.moveMonths(1)
	require.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), c.cursor)

	c = c.moveMonths(-2)
	require.Equal(t, time.Date(2023, 12, 29, 0, 0, 0, 0, time.UTC), c.cursor)
}

func TestCalendarMoveDays(t *testing.T) {
	t.Parallel()

	c := newCalendar(time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)).moveDays(2)
	require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), c.cursor)
	c = c.moveDays(-7)
	require.Equal(t, time.Date(2024, 2, 23, 0, 0, 0, 0, time.UTC), c.cursor)
}

func TestCalendarViewGrid(t *testing.T) {
	t.Parallel()

	// March 2024 starts on a Friday.
	view := newCalendar(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)).View(time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC))
	require.Contains(t, view, "March 2024")
	require.Contains(t, view, "Mo Tu We Th Fr Sa Su")
	require.Contains(t, view, " 1  2  3")
	require.Contains(t, view, "31")
	require.False(t, strings.Contains(view, "32"))
}
