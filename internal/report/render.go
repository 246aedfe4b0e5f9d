package report

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"
	"time"

	"github.com/2beens/climbstats/internal/climb"

	log "github.com/sirupsen/logrus"
)

//go:embed dashboard.html.tmpl
var dashboardTemplate string

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardTemplate))

// ChartData is one series prepared for Chart.js: parallel label and value
// arrays, in chronological order. Arrays are used instead of maps so the
// order survives JSON encoding.
type ChartData struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// PageData is everything the dashboard template needs. The series fields
// hold pre-encoded JSON so the template can drop them straight into the
// chart setup script.
type PageData struct {
	ActivityTypes string
	GeneratedAt   string

	HistYearMonth    template.JS
	HistLastMonthDay template.JS
	CumulYear        template.JS
	CumulMonth       template.JS
	CumulWeek        template.JS
}

func NewPageData(aggregates climb.Aggregates, activityTypes []string, generatedAt time.Time) (PageData, error) {
	data := PageData{
		ActivityTypes: strings.Join(activityTypes, ", "),
		GeneratedAt:   generatedAt.Format("2006-01-02 15:04:05"),
	}

	for _, chart := range []struct {
		name   string
		series climb.Series
		target *template.JS
	}{
		{"hist_year_month", aggregates.HistYearMonth, &data.HistYearMonth},
		{"hist_last_month_day", aggregates.HistLastMonthDay, &data.HistLastMonthDay},
		{"cumul_year", aggregates.CumulYear, &data.CumulYear},
		{"cumul_month", aggregates.CumulMonth, &data.CumulMonth},
		{"cumul_week", aggregates.CumulWeek, &data.CumulWeek},
	} {
		encoded, err := chartJSON(chart.series)
		if err != nil {
			return PageData{}, fmt.Errorf("encode %s series: %w", chart.name, err)
		}
		*chart.target = encoded
	}

	return data, nil
}

func chartJSON(series climb.Series) (template.JS, error) {
	chart := ChartData{
		Labels: make([]string, 0, len(series)),
		Values: make([]int, 0, len(series)),
	}
	for _, point := range series {
		chart.Labels = append(chart.Labels, point.Label)
		chart.Values = append(chart.Values, point.Value)
	}

	encoded, err := json.Marshal(chart)
	if err != nil {
		return "", err
	}
	return template.JS(encoded), nil
}

// Render writes the dashboard HTML document to the given writer.
func Render(w io.Writer, data PageData) error {
	if err := dashboardTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute dashboard template: %w", err)
	}
	return nil
}

// FileWriter renders dashboards into a file at a fixed path.
type FileWriter struct {
	path string
}

func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

func (fw *FileWriter) Write(data PageData) error {
	outputFile, err := os.Create(fw.path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer outputFile.Close()

	if err := Render(outputFile, data); err != nil {
		return err
	}

	log.Infof("dashboard written to: %s", fw.path)
	return nil
}
