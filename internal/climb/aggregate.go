package climb

import (
	"math"
	"time"
)

const (
	dayLabelFormat   = "2006-01-02"
	monthLabelFormat = "2006-01"
)

// Aggregate derives the five dashboard series from per-day elevation
// totals, with all window boundaries computed relative to the given
// reference date. It is a pure function: no clock reads, no I/O, and the
// same inputs always produce the same output. An empty DailyTotals yields
// structurally complete all-zero series.
//
// All month windows use exact calendar arithmetic via time.Date month
// normalization, so the 12-month histogram always has exactly 12 entries
// regardless of leap years or data sparsity.
func Aggregate(daily DailyTotals, today time.Time) Aggregates {
	today = Day(today.Date())

	return Aggregates{
		HistYearMonth:    histYearMonth(daily, today),
		HistLastMonthDay: histLastMonthDay(daily, today),
		CumulYear:        cumulative(daily, Day(today.Year(), time.January, 1), today),
		CumulMonth:       cumulative(daily, Day(today.Year(), today.Month(), 1), today),
		CumulWeek:        cumulative(daily, weekStart(today), today),
	}
}

// histYearMonth sums daily totals into the 12 calendar months ending with
// the month of the reference date, oldest first. The reference month is a
// partial bucket: only days up to and including the reference date count.
// Months without any activity are kept as zero entries.
func histYearMonth(daily DailyTotals, today time.Time) Series {
	series := make(Series, 0, 12)
	for i := 11; i >= 0; i-- {
		monthStart := Day(today.Year(), today.Month()-time.Month(i), 1)
		monthEnd := monthStart.AddDate(0, 1, -1)
		if monthEnd.After(today) {
			monthEnd = today
		}

		var total float64
		for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
			total += daily[d]
		}
		series = append(series, SeriesPoint{
			Label: monthStart.Format(monthLabelFormat),
			Value: round(total),
		})
	}
	return series
}

// histLastMonthDay emits one entry per day of the calendar month before
// the reference month, zero-value days included. If the reference date is
// in January, that is December of the previous year.
func histLastMonthDay(daily DailyTotals, today time.Time) Series {
	monthStart := Day(today.Year(), today.Month()-1, 1)
	monthEnd := monthStart.AddDate(0, 1, -1)

	series := make(Series, 0, monthEnd.Day())
	for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
		series = append(series, SeriesPoint{
			Label: d.Format(dayLabelFormat),
			Value: round(daily[d]),
		})
	}
	return series
}

// cumulative emits the running total of daily values for every day from
// `from` through `to`, inclusive. Rounding happens at emission only, so
// the running sum itself does not accumulate rounding error.
func cumulative(daily DailyTotals, from, to time.Time) Series {
	var series Series
	var running float64
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		running += daily[d]
		series = append(series, SeriesPoint{
			Label: d.Format(dayLabelFormat),
			Value: round(running),
		})
	}
	return series
}

// weekStart returns the most recent Monday on or before the given day.
func weekStart(day time.Time) time.Time {
	daysSinceMonday := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -daysSinceMonday)
}

func round(v float64) int {
	return int(math.Round(v))
}
