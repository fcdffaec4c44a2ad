// Package calendar implements business-hours arithmetic: deciding whether an
// instant falls inside the working window and advancing or counting hours that
// skip nights, weekends and public holidays.
//
// All operations are pure. A Calendar holds no mutable state after New, so it
// is safe for concurrent use.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

var ErrNegativeHours = errors.New("hours must be non-negative")

// Date is a calendar date with no time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Config describes the weekly working window. WorkingDays uses ISO numbering
// (1=Monday .. 7=Sunday). Holidays maps a year to that year's holiday dates;
// it must be pure so long-running processes never see a stale set.
type Config struct {
	StartHour   int
	EndHour     int
	WorkingDays []int
	Holidays    func(year int) []Date
}

// DefaultConfig is the ministry's window: 08:00–18:00, Monday through Friday,
// national holidays per Holidays.
func DefaultConfig() Config {
	return Config{
		StartHour:   8,
		EndHour:     18,
		WorkingDays: []int{1, 2, 3, 4, 5},
		Holidays:    Holidays,
	}
}

// Calendar answers business-time questions against a fixed Config.
type Calendar struct {
	startHour int
	endHour   int
	working   [7]bool // indexed by time.Weekday
	holidays  func(year int) []Date
}

func New(cfg Config) (*Calendar, error) {
	if cfg.StartHour < 0 || cfg.StartHour > 23 || cfg.EndHour < 0 || cfg.EndHour > 23 {
		return nil, fmt.Errorf("calendar: hours must be within 0..23, got [%d, %d)", cfg.StartHour, cfg.EndHour)
	}
	if cfg.StartHour >= cfg.EndHour {
		return nil, fmt.Errorf("calendar: start hour %d must be before end hour %d", cfg.StartHour, cfg.EndHour)
	}
	if len(cfg.WorkingDays) == 0 {
		return nil, errors.New("calendar: at least one working day is required")
	}
	c := &Calendar{
		startHour: cfg.StartHour,
		endHour:   cfg.EndHour,
		holidays:  cfg.Holidays,
	}
	for _, d := range cfg.WorkingDays {
		if d < 1 || d > 7 {
			return nil, fmt.Errorf("calendar: working day %d outside ISO range 1..7", d)
		}
		c.working[time.Weekday(d%7)] = true
	}
	if c.holidays == nil {
		c.holidays = func(int) []Date { return nil }
	}
	return c, nil
}

// IsBusinessTime reports whether t falls on a working day that is not a
// holiday, with its hour inside the half-open window [StartHour, EndHour).
func (c *Calendar) IsBusinessTime(t time.Time) bool {
	if !c.working[t.Weekday()] {
		return false
	}
	if c.IsHoliday(t) {
		return false
	}
	h := t.Hour()
	return h >= c.startHour && h < c.endHour
}

// IsHoliday compares the calendar date only; the weekday and time of day are
// ignored.
func (c *Calendar) IsHoliday(t time.Time) bool {
	d := DateOf(t)
	for _, h := range c.holidays(d.Year) {
		if h == d {
			return true
		}
	}
	return false
}

// NextBusinessInstant returns from unchanged when it is already business
// time. Otherwise it advances to the next valid instant: non-working and
// holiday dates roll to StartHour on the following day, an early hour snaps
// to StartHour the same day, and anything at or past EndHour rolls to
// StartHour the next day. The date strictly increases on every roll, so the
// loop terminates.
func (c *Calendar) NextBusinessInstant(from time.Time) time.Time {
	t := from
	for !c.IsBusinessTime(t) {
		if !c.working[t.Weekday()] || c.IsHoliday(t) {
			t = c.startOfNextDay(t)
			continue
		}
		if t.Hour() < c.startHour {
			t = time.Date(t.Year(), t.Month(), t.Day(), c.startHour, 0, 0, 0, t.Location())
			continue
		}
		t = c.startOfNextDay(t)
	}
	return t
}

// AddBusinessHours advances from by the given number of hours spent inside
// business time. The starting instant is first snapped forward with
// NextBusinessInstant, then each hour moves one wall-clock hour and snaps
// again, so a partial hour at the end of a day rolls into StartHour:00 of
// the next business day. hours == 0 returns the snap itself.
func (c *Calendar) AddBusinessHours(from time.Time, hours int) (time.Time, error) {
	if hours < 0 {
		return time.Time{}, ErrNegativeHours
	}
	t := c.NextBusinessInstant(from)
	for i := 0; i < hours; i++ {
		t = c.NextBusinessInstant(t.Add(time.Hour))
	}
	return t, nil
}

// BusinessHoursBetween counts hourly steps from start (inclusive) to end
// (exclusive) that fall inside business time. Returns 0 when end <= start.
func (c *Calendar) BusinessHoursBetween(start, end time.Time) int {
	n := 0
	for t := start; t.Before(end); t = t.Add(time.Hour) {
		if c.IsBusinessTime(t) {
			n++
		}
	}
	return n
}

// ShouldSendReminderNow gates notification dispatch: reminders go out only
// during working hours even though the deadline clock runs continuously.
func (c *Calendar) ShouldSendReminderNow(now time.Time) bool {
	return c.IsBusinessTime(now)
}

func (c *Calendar) startOfNextDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+1, c.startHour, 0, 0, 0, t.Location())
}
