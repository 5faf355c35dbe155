package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyUsesUTC(t *testing.T) {
	seoul := time.FixedZone("KST", 9*3600)
	// 首尔 1 月 2 日 08:00 仍是 UTC 1 月 1 日
	local := time.Date(2025, 1, 2, 8, 0, 0, 0, seoul)
	assert.Equal(t, "2025-01-01", DateKey(local))
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), StartOfDay(local))
}

func TestDayOfYear(t *testing.T) {
	assert.Equal(t, 1, DayOfYear(time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, 60, DayOfYear(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 365, DayOfYear(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestWeekOfStartsOnMonday(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	cases := []time.Time{
		monday,
		time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC), // 周三
		time.Date(2025, 3, 16, 23, 59, 59, 0, time.UTC), // 周日
	}
	for _, c := range cases {
		w := WeekOf(c)
		assert.Equal(t, monday, w.Start, "周起点应该是周一: %s", c)
		assert.Equal(t, monday.AddDate(0, 0, 7), w.End)
	}

	next := WeekOf(time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-03-17", next.StartKey())
	assert.Equal(t, "2025-03-24", next.EndKey())
}

func TestWeekContainsAndPrevious(t *testing.T) {
	w := WeekOf(time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC))

	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End.Add(-time.Nanosecond)))
	assert.False(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.Start.Add(-time.Nanosecond)))

	prev := w.Previous()
	assert.Equal(t, "2025-03-03", prev.StartKey())
	assert.Equal(t, w.Start, prev.End)
}
