package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGrid(t *testing.T) {
	t.Run("June 2025 starts on the Sunday before the 1st", func(t *testing.T) {
		days := Grid(time.Date(2025, time.June, 15, 13, 45, 0, 0, time.UTC), time.Sunday)
		require.Len(t, days, GridDays)

		// June 1st 2025 is a Sunday, so the grid starts on the 1st itself.
		assert.Equal(t, day(2025, time.June, 1), days[0])
		assert.Equal(t, day(2025, time.July, 12), days[len(days)-1])
	})

	t.Run("month not starting on week start is padded with previous month", func(t *testing.T) {
		days := Grid(day(2025, time.April, 1), time.Sunday)
		require.Len(t, days, GridDays)

		// April 1st 2025 is a Tuesday; the grid opens on Sunday March 30th.
		assert.Equal(t, day(2025, time.March, 30), days[0])
		assert.Equal(t, day(2025, time.April, 1), days[2])
	})

	t.Run("configurable week start", func(t *testing.T) {
		days := Grid(day(2025, time.April, 1), time.Monday)
		assert.Equal(t, day(2025, time.March, 31), days[0])
		assert.Equal(t, time.Monday, days[0].Weekday())
	})

	t.Run("every day is midnight UTC and consecutive", func(t *testing.T) {
		days := Grid(day(2025, time.February, 10), time.Sunday)
		for i, d := range days {
			assert.Equal(t, time.UTC, d.Location())
			assert.Equal(t, 0, d.Hour())
			if i > 0 {
				assert.Equal(t, days[i-1].AddDate(0, 0, 1), d)
			}
		}
	})
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay(
		time.Date(2025, time.June, 2, 0, 0, 1, 0, time.UTC),
		time.Date(2025, time.June, 2, 23, 59, 59, 0, time.UTC),
	))
	assert.False(t, SameDay(
		time.Date(2025, time.June, 2, 23, 59, 59, 0, time.UTC),
		time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
	))

	// Comparison happens in UTC regardless of the input zone.
	est := time.FixedZone("EST", -5*3600)
	assert.True(t, SameDay(
		time.Date(2025, time.June, 2, 20, 0, 0, 0, est), // 01:00 UTC June 3rd
		time.Date(2025, time.June, 3, 1, 0, 0, 0, time.UTC),
	))
}

func TestInRange(t *testing.T) {
	start := day(2025, time.June, 1)
	end := day(2025, time.June, 30)

	assert.True(t, InRange(start, start, end))
	assert.True(t, InRange(end, start, end))
	assert.True(t, InRange(day(2025, time.June, 15), start, end))
	assert.False(t, InRange(start.Add(-time.Second), start, end))
	assert.False(t, InRange(end.Add(time.Second), start, end))
}

func TestStartOfWeek(t *testing.T) {
	// June 4th 2025 is a Wednesday.
	wed := day(2025, time.June, 4)
	assert.Equal(t, day(2025, time.June, 1), StartOfWeek(wed, time.Sunday))
	assert.Equal(t, day(2025, time.June, 2), StartOfWeek(wed, time.Monday))
	assert.Equal(t, wed, StartOfWeek(wed, time.Wednesday))
}
