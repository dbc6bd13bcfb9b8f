// Package charts renders a report as an HTML page of ECharts charts.
package charts

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/sbilibin2017/gw-training-log/internal/models"
)

// Chart titles.
const (
	MeasurementsTitle = "Body measurements"
	NutritionTitle    = "Protein intake"
	WorkTitle         = "Work per muscle group"
)

// Render writes the report page to w. Every section with data becomes a
// chart; a section without data becomes a notice paragraph.
func Render(w io.Writer, report *models.DailyReport) error {
	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("Training log: %s", report.Username)

	var notices []string

	if len(report.Measurements.Series) > 0 {
		page.AddCharts(measurementChart(report.Measurements.Series))
	} else {
		notices = append(notices, report.Measurements.Notice)
	}

	if report.Nutrition.Series != nil {
		page.AddCharts(nutritionChart(*report.Nutrition.Series))
	} else {
		notices = append(notices, report.Nutrition.Notice)
	}

	if len(report.Work.Totals) > 0 {
		page.AddCharts(workChart(report.Work.Totals))
	} else {
		notices = append(notices, report.Work.Notice)
	}

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("render charts: %w", err)
	}

	_, err := w.Write(withNotices(buf.Bytes(), notices))
	return err
}

func measurementChart(series []models.Series) *charts.Line {
	line := newLine(MeasurementsTitle, "cm")
	for _, s := range series {
		line.AddSeries(s.Name, lineData(s.Points))
	}
	return line
}

func nutritionChart(series models.Series) *charts.Line {
	line := newLine(NutritionTitle, "g")
	line.AddSeries(series.Name, lineData(series.Points))
	return line
}

func workChart(totals []models.GroupWork) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: WorkTitle}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "load × reps"}),
	)

	groups := make([]string, 0, len(totals))
	data := make([]opts.BarData, 0, len(totals))
	for _, t := range totals {
		groups = append(groups, t.MuscleGroup)
		data = append(data, opts.BarData{Value: t.Work})
	}

	bar.SetXAxis(groups).AddSeries("work", data)
	return bar
}

func newLine(title, unit string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: unit}),
	)
	return line
}

func lineData(points []models.Point) []opts.LineData {
	data := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		data = append(data, opts.LineData{Value: []interface{}{p.Date.Format(models.DateLayout), p.Value}})
	}
	return data
}

var bodyTag = []byte("<body>")

// withNotices places one paragraph per notice at the top of the page body.
func withNotices(page []byte, notices []string) []byte {
	if len(notices) == 0 {
		return page
	}

	var block bytes.Buffer
	for _, n := range notices {
		fmt.Fprintf(&block, "\n<p class=\"notice\">%s</p>", html.EscapeString(n))
	}

	i := bytes.Index(page, bodyTag)
	if i < 0 {
		return append(block.Bytes(), page...)
	}
	i += len(bodyTag)

	out := make([]byte, 0, len(page)+block.Len())
	out = append(out, page[:i]...)
	out = append(out, block.Bytes()...)
	return append(out, page[i:]...)
}
