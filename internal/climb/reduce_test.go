package climb_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/2beens/climbstats/internal/climb"
	"github.com/2beens/climbstats/internal/strava"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var footTravelTypes = []string{"Run", "Walk", "Hike"}

func TestDailyElevation(t *testing.T) {
	activities := []strava.Activity{
		{
			ID:                 1,
			Type:               "Run",
			StartDateLocal:     "2024-06-10T07:30:00Z",
			TotalElevationGain: 120.5,
		},
		{
			ID:                 2,
			Type:               "Hike",
			StartDateLocal:     "2024-06-10T15:00:00Z",
			TotalElevationGain: 80,
		},
		{
			ID:                 3,
			Type:               "Walk",
			StartDateLocal:     "2024-06-12T19:12:44Z",
			TotalElevationGain: 15,
		},
	}

	daily := climb.DailyElevation(activities, footTravelTypes)

	require.Len(t, daily, 2)
	assert.Equal(t, 200.5, daily[climb.Day(2024, time.June, 10)])
	assert.Equal(t, 15.0, daily[climb.Day(2024, time.June, 12)])
}

func TestDailyElevation_DropsOtherActivityTypes(t *testing.T) {
	activities := []strava.Activity{
		{ID: 1, Type: "Ride", StartDateLocal: "2024-06-10T07:30:00Z", TotalElevationGain: 900},
		{ID: 2, Type: "Swim", StartDateLocal: "2024-06-10T08:30:00Z", TotalElevationGain: 5},
		{ID: 3, Type: "Run", StartDateLocal: "2024-06-10T09:30:00Z", TotalElevationGain: 50},
	}

	daily := climb.DailyElevation(activities, footTravelTypes)

	require.Len(t, daily, 1)
	assert.Equal(t, 50.0, daily[climb.Day(2024, time.June, 10)])
}

func TestDailyElevation_SkipsUnparseableDates(t *testing.T) {
	activities := []strava.Activity{
		{ID: 1, Type: "Run", StartDateLocal: "not-a-date", TotalElevationGain: 100},
		{ID: 2, Type: "Run", StartDateLocal: "junk", TotalElevationGain: 100},
		{ID: 3, Type: "Run", StartDateLocal: "2024-06-10T09:30:00Z", TotalElevationGain: 42},
	}

	daily := climb.DailyElevation(activities, footTravelTypes)

	// bad records are skipped, the run continues
	require.Len(t, daily, 1)
	assert.Equal(t, 42.0, daily[climb.Day(2024, time.June, 10)])
}

func TestDailyElevation_MissingGainCountsAsZero(t *testing.T) {
	activities := []strava.Activity{
		{ID: 1, Type: "Hike", StartDateLocal: "2024-06-10T09:30:00Z"},
	}

	daily := climb.DailyElevation(activities, footTravelTypes)

	require.Len(t, daily, 1)
	assert.Zero(t, daily[climb.Day(2024, time.June, 10)])
}

func TestDailyElevation_Empty(t *testing.T) {
	daily := climb.DailyElevation(nil, footTravelTypes)
	assert.Empty(t, daily)
}

func TestDailyElevation_ManyActivities(t *testing.T) {
	// 30 days, 3 runs of 10m gain per day
	var activities []strava.Activity
	for day := 1; day <= 30; day++ {
		for i := 0; i < 3; i++ {
			activities = append(activities, strava.Activity{
				ID:                 gofakeit.Int64(),
				Name:               gofakeit.Name(),
				Type:               "Run",
				StartDateLocal:     fmt.Sprintf("2024-06-%02dT0%d:15:00Z", day, i),
				TotalElevationGain: 10,
			})
		}
	}

	daily := climb.DailyElevation(activities, footTravelTypes)

	require.Len(t, daily, 30)
	for day := 1; day <= 30; day++ {
		assert.Equal(t, 30.0, daily[climb.Day(2024, time.June, day)])
	}
}
