package climb

import (
	"github.com/2beens/climbstats/internal/strava"

	log "github.com/sirupsen/logrus"
)

// DailyElevation reduces raw activities into per-day elevation gain
// totals, keeping only activities of the accepted types. Activities with
// an unparseable start date are skipped with a warning; multiple
// activities on the same day sum into one bucket.
func DailyElevation(activities []strava.Activity, acceptedTypes []string) DailyTotals {
	accepted := make(map[string]struct{}, len(acceptedTypes))
	for _, t := range acceptedTypes {
		accepted[t] = struct{}{}
	}

	daily := make(DailyTotals)
	var counted int
	for _, activity := range activities {
		if _, ok := accepted[activity.Type]; !ok {
			continue
		}
		counted++

		day, err := activity.LocalDay()
		if err != nil {
			log.Warnf("skipping activity %d [%s]: %s", activity.ID, activity.Name, err)
			continue
		}

		daily[day] += activity.TotalElevationGain
	}

	log.Debugf("counted %d of %d activities, elevation data for %d days", counted, len(activities), len(daily))
	return daily
}
