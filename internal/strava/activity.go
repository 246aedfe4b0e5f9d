package strava

import (
	"fmt"
	"time"
)

// Activity is a single athlete activity as returned by the Strava API.
// Only the fields the dashboard cares about are mapped.
// https://developers.strava.com/docs/reference/#api-models-SummaryActivity
type Activity struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Type               string  `json:"type"`
	SportType          string  `json:"sport_type"`
	StartDateLocal     string  `json:"start_date_local"`
	TotalElevationGain float64 `json:"total_elevation_gain"`
	Distance           float64 `json:"distance"`
	MovingTime         int     `json:"moving_time"`
	ElapsedTime        int     `json:"elapsed_time"`
}

// LocalDay returns the calendar day the activity started on, in the
// athlete's local timezone, anchored at midnight UTC. Strava sends
// start_date_local as an RFC3339-looking string whose date component is
// the local date, so the date prefix is taken verbatim instead of going
// through timezone conversion.
func (a Activity) LocalDay() (time.Time, error) {
	const datePrefixLen = len("2006-01-02")
	if len(a.StartDateLocal) < datePrefixLen {
		return time.Time{}, fmt.Errorf("invalid start date %q", a.StartDateLocal)
	}
	day, err := time.ParseInLocation("2006-01-02", a.StartDateLocal[:datePrefixLen], time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse start date %q: %w", a.StartDateLocal, err)
	}
	return day, nil
}
