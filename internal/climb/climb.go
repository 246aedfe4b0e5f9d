package climb

import "time"

// DailyTotals maps a calendar day to the total elevation gain in meters
// climbed on that day. Keys are normalized to midnight UTC, one entry per
// day with at least one counted activity.
type DailyTotals map[time.Time]float64

// SeriesPoint is a single chart entry: a date or month label and the
// elevation gain in whole meters.
type SeriesPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Series is an ordered sequence of chart entries. Order is chronological
// and must be preserved by consumers.
type Series []SeriesPoint

// Aggregates holds the five dashboard series derived from DailyTotals.
type Aggregates struct {
	// HistYearMonth: per-month totals for the 12 calendar months ending
	// with the reference month, oldest first.
	HistYearMonth Series
	// HistLastMonthDay: per-day totals for every day of the month before
	// the reference month.
	HistLastMonthDay Series
	// CumulYear, CumulMonth, CumulWeek: running totals from Jan 1, the 1st
	// of the reference month, and the most recent Monday, through the
	// reference date.
	CumulYear  Series
	CumulMonth Series
	CumulWeek  Series
}

// Day returns the given calendar day at midnight UTC, the normalized form
// used for DailyTotals keys.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
