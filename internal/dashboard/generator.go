package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/climbstats/internal/climb"
	"github.com/2beens/climbstats/internal/report"
	"github.com/2beens/climbstats/internal/strava"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=dashboard_test

type activityFetcher interface {
	Activities(ctx context.Context, after time.Time) ([]strava.Activity, error)
}

type dashboardWriter interface {
	Write(data report.PageData) error
}

type NewGeneratorParams struct {
	Fetcher        activityFetcher
	Writer         dashboardWriter
	ActivityTypes  []string
	LookbackMonths int
	NowFunc        func() time.Time
}

// Generator runs the whole dashboard pipeline: fetch raw activities,
// reduce them to daily elevation totals, aggregate the chart series, and
// write the HTML report.
type Generator struct {
	fetcher        activityFetcher
	writer         dashboardWriter
	activityTypes  []string
	lookbackMonths int
	now            func() time.Time
}

func NewGenerator(params NewGeneratorParams) *Generator {
	now := params.NowFunc
	if now == nil {
		now = time.Now
	}
	return &Generator{
		fetcher:        params.Fetcher,
		writer:         params.Writer,
		activityTypes:  params.ActivityTypes,
		lookbackMonths: params.LookbackMonths,
		now:            now,
	}
}

// Run generates the dashboard for the given reference date. An empty
// activity history is not an error: the dashboard is rendered with
// all-zero series.
func (g *Generator) Run(ctx context.Context, today time.Time) error {
	today = climb.Day(today.Date())

	// exact month arithmetic, no day-count approximation
	after := climb.Day(today.Year(), today.Month()-time.Month(g.lookbackMonths), today.Day())
	log.Infof("generating dashboard for %s, activities since %s",
		today.Format("2006-01-02"), after.Format("2006-01-02"))

	activities, err := g.fetcher.Activities(ctx, after)
	if err != nil {
		return fmt.Errorf("fetch activities: %w", err)
	}

	daily := climb.DailyElevation(activities, g.activityTypes)
	log.Infof("found elevation data for %d days", len(daily))

	aggregates := climb.Aggregate(daily, today)

	pageData, err := report.NewPageData(aggregates, g.activityTypes, g.now())
	if err != nil {
		return fmt.Errorf("prepare page data: %w", err)
	}

	if err := g.writer.Write(pageData); err != nil {
		return fmt.Errorf("write dashboard: %w", err)
	}

	return nil
}
