package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A plain Mon-Fri 08-18 week in November 2025 with no holidays in range.
var (
	monday = time.Date(2025, time.November, 3, 12, 0, 0, 0, time.UTC)
	friday = time.Date(2025, time.November, 7, 12, 0, 0, 0, time.UTC)
)

func newCalendar(t *testing.T) *Calendar {
	t.Helper()
	c, err := New(DefaultConfig())
	require.NoError(t, err)
	return c
}

func at(base time.Time, hour, min int) time.Time {
	return time.Date(base.Year(), base.Month(), base.Day(), hour, min, 0, 0, base.Location())
}

func TestIsBusinessTimeHalfOpenWindow(t *testing.T) {
	c := newCalendar(t)

	cases := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"start hour is inside", at(monday, 8, 0), true},
		{"last full hour is inside", at(monday, 17, 0), true},
		{"mid slot is inside", at(monday, 17, 59), true},
		{"end hour is outside", at(monday, 18, 0), false},
		{"before start is outside", at(monday, 7, 0), false},
		{"midnight is outside", at(monday, 0, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.IsBusinessTime(tc.t))
		})
	}
}

func TestWeekendNeverBusinessTime(t *testing.T) {
	c := newCalendar(t)

	saturday := time.Date(2025, time.November, 8, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, time.November, 9, 0, 0, 0, 0, time.UTC)
	for _, day := range []time.Time{saturday, sunday} {
		for hour := 0; hour < 24; hour++ {
			assert.False(t, c.IsBusinessTime(at(day, hour, 0)),
				"%s %02d:00 must not be business time", day.Weekday(), hour)
		}
	}
}

func TestHolidayExcludedRegardlessOfWeekday(t *testing.T) {
	c := newCalendar(t)

	// 2030-01-01 is a Tuesday, normally a working day.
	newYear := time.Date(2030, time.January, 1, 10, 0, 0, 0, time.UTC)
	require.Equal(t, time.Tuesday, newYear.Weekday())

	assert.True(t, c.IsHoliday(newYear))
	for hour := 0; hour < 24; hour++ {
		assert.False(t, c.IsBusinessTime(at(newYear, hour, 0)))
	}
}

func TestIsHolidayIgnoresTimeOfDay(t *testing.T) {
	c := newCalendar(t)

	labourDay := time.Date(2025, time.May, 1, 23, 59, 59, 0, time.UTC)
	assert.True(t, c.IsHoliday(labourDay))
	assert.False(t, c.IsHoliday(time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC)))
}

func TestHolidaysCoverYearRollover(t *testing.T) {
	c := newCalendar(t)

	// Next year's New Year is part of the current year's set, so a caller
	// holding 2025's table still rejects 2026-01-01.
	assert.Contains(t, Holidays(2025), Date{2026, time.January, 1})
	assert.True(t, c.IsHoliday(time.Date(2026, time.January, 1, 9, 0, 0, 0, time.UTC)))
}

func TestNextBusinessInstant(t *testing.T) {
	c := newCalendar(t)

	cases := []struct {
		name string
		from time.Time
		want time.Time
	}{
		{"business time unchanged", at(monday, 10, 30), at(monday, 10, 30)},
		{"early morning snaps to start", at(monday, 6, 45), at(monday, 8, 0)},
		{"after hours rolls to next day", at(monday, 18, 0), at(monday.AddDate(0, 0, 1), 8, 0)},
		{"friday evening rolls over weekend", at(friday, 19, 0), at(friday.AddDate(0, 0, 3), 8, 0)},
		{"saturday rolls to monday", time.Date(2025, time.November, 8, 11, 0, 0, 0, time.UTC), time.Date(2025, time.November, 10, 8, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.NextBusinessInstant(tc.from))
		})
	}
}

func TestNextBusinessInstantSkipsHoliday(t *testing.T) {
	c := newCalendar(t)

	// Christmas 2025 falls on a Thursday; the evening of the 24th must land
	// on Friday the 26th at opening.
	from := time.Date(2025, time.December, 24, 18, 30, 0, 0, time.UTC)
	want := time.Date(2025, time.December, 26, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, want, c.NextBusinessInstant(from))
}

func TestAddBusinessHoursRejectsNegative(t *testing.T) {
	c := newCalendar(t)

	_, err := c.AddBusinessHours(monday, -1)
	require.ErrorIs(t, err, ErrNegativeHours)
}

func TestAddBusinessHoursZeroSnaps(t *testing.T) {
	c := newCalendar(t)

	for _, from := range []time.Time{at(monday, 10, 30), at(monday, 6, 0), at(friday, 21, 15)} {
		got, err := c.AddBusinessHours(from, 0)
		require.NoError(t, err)
		assert.Equal(t, c.NextBusinessInstant(from), got)
	}
}

func TestAddBusinessHoursWithinDay(t *testing.T) {
	c := newCalendar(t)

	got, err := c.AddBusinessHours(at(monday, 9, 0), 3)
	require.NoError(t, err)
	assert.Equal(t, at(monday, 12, 0), got)
}

// Friday 17:30 + 2 business hours: the in-progress 17:00 slot counts as the
// first hour and rolls into Monday 08:00; the second hour lands on 09:00.
func TestAddBusinessHoursFridayEveningRollover(t *testing.T) {
	c := newCalendar(t)

	got, err := c.AddBusinessHours(at(friday, 17, 30), 2)
	require.NoError(t, err)
	assert.Equal(t, at(friday.AddDate(0, 0, 3), 9, 0), got)
}

func TestAddBusinessHoursMonotonic(t *testing.T) {
	c := newCalendar(t)

	from := at(friday, 16, 20)
	prev, err := c.AddBusinessHours(from, 0)
	require.NoError(t, err)
	for h := 1; h <= 30; h++ {
		cur, err := c.AddBusinessHours(from, h)
		require.NoError(t, err)
		assert.True(t, !cur.Before(prev), "hours=%d went backwards: %v < %v", h, cur, prev)
		prev = cur
	}
}

func TestBusinessHoursBetweenRoundTrip(t *testing.T) {
	c := newCalendar(t)

	starts := []time.Time{at(monday, 8, 0), at(monday, 13, 30), at(friday, 17, 0)}
	for _, start := range starts {
		for _, n := range []int{1, 2, 5, 10, 25} {
			end, err := c.AddBusinessHours(start, n)
			require.NoError(t, err)
			assert.Equal(t, n, c.BusinessHoursBetween(start, end),
				"start=%v n=%d end=%v", start, n, end)
		}
	}
}

func TestBusinessHoursBetweenEmptyRange(t *testing.T) {
	c := newCalendar(t)

	assert.Zero(t, c.BusinessHoursBetween(monday, monday))
	assert.Zero(t, c.BusinessHoursBetween(monday, monday.Add(-time.Hour)))
}

func TestBusinessHoursBetweenSkipsWeekend(t *testing.T) {
	c := newCalendar(t)

	// Friday 16:00 .. Monday 10:00 contains 16:00, 17:00, 08:00 and 09:00.
	start := at(friday, 16, 0)
	end := at(friday.AddDate(0, 0, 3), 10, 0)
	assert.Equal(t, 4, c.BusinessHoursBetween(start, end))
}

func TestNewValidatesConfig(t *testing.T) {
	base := DefaultConfig()

	bad := base
	bad.StartHour = 18
	bad.EndHour = 8
	_, err := New(bad)
	assert.Error(t, err)

	bad = base
	bad.StartHour = -1
	_, err = New(bad)
	assert.Error(t, err)

	bad = base
	bad.WorkingDays = nil
	_, err = New(bad)
	assert.Error(t, err)

	bad = base
	bad.WorkingDays = []int{0}
	_, err = New(bad)
	assert.Error(t, err)
}

func TestWorkingDaysISONumbering(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WorkingDays = []int{6, 7} // weekend-only operation
	c, err := New(cfg)
	require.NoError(t, err)

	saturday := time.Date(2025, time.November, 8, 10, 0, 0, 0, time.UTC)
	assert.True(t, c.IsBusinessTime(saturday))
	assert.False(t, c.IsBusinessTime(monday))
}

func TestShouldSendReminderNow(t *testing.T) {
	c := newCalendar(t)

	assert.True(t, c.ShouldSendReminderNow(at(monday, 9, 0)))
	assert.False(t, c.ShouldSendReminderNow(at(monday, 22, 0)))
}
