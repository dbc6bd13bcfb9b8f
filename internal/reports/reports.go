// Package reports turns raw per-user entries into chart-ready series.
package reports

import (
	"fmt"
	"sort"
	"time"

	"github.com/sbilibin2017/gw-training-log/internal/models"
)

// ProteinSeriesName names the single nutrition series.
const ProteinSeriesName = "protein"

var dateLayouts = []string{
	models.DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ParseDate parses a stored entry date.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid entry date %q", s)
}

type datedValue struct {
	date  time.Time
	group string
	value float64
}

// sortByDate orders values chronologically. Entries on the same date keep
// their insertion order.
func sortByDate(values []datedValue) {
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].date.Before(values[j].date)
	})
}

// MeasurementTrend builds one series per muscle group. Groups appear in the
// order they were first logged; points within a series are sorted by date.
// Entries are expected in insertion order.
func MeasurementTrend(entries []models.MeasurementEntry) ([]models.Series, error) {
	values := make([]datedValue, 0, len(entries))
	var groups []string
	seen := make(map[string]bool)

	for _, e := range entries {
		date, err := ParseDate(e.Date)
		if err != nil {
			return nil, fmt.Errorf("measurement %d: %w", e.ID, err)
		}
		values = append(values, datedValue{date: date, group: e.MuscleGroup, value: e.Measurement})

		if !seen[e.MuscleGroup] {
			seen[e.MuscleGroup] = true
			groups = append(groups, e.MuscleGroup)
		}
	}

	sortByDate(values)

	group2points := make(map[string][]models.Point, len(groups))
	for _, v := range values {
		group2points[v.group] = append(group2points[v.group], models.Point{Date: v.date, Value: v.value})
	}

	series := make([]models.Series, 0, len(groups))
	for _, g := range groups {
		series = append(series, models.Series{Name: g, Points: group2points[g]})
	}

	return series, nil
}

// NutritionTrend builds the protein intake series sorted by date.
func NutritionTrend(entries []models.NutritionEntry) (models.Series, error) {
	values := make([]datedValue, 0, len(entries))
	for _, e := range entries {
		date, err := ParseDate(e.Date)
		if err != nil {
			return models.Series{}, fmt.Errorf("nutrition %d: %w", e.ID, err)
		}
		values = append(values, datedValue{date: date, value: e.Protein})
	}

	sortByDate(values)

	points := make([]models.Point, 0, len(values))
	for _, v := range values {
		points = append(points, models.Point{Date: v.date, Value: v.value})
	}

	return models.Series{Name: ProteinSeriesName, Points: points}, nil
}

// WorkByMuscleGroup sums load × reps per muscle group. Group labels are
// compared as stored, so "Peito" and "peito" are different groups.
// The result is sorted by group label.
func WorkByMuscleGroup(entries []models.ExerciseEntry) []models.GroupWork {
	group2work := make(map[string]float64)
	for _, e := range entries {
		group2work[e.MuscleGroup] += e.Work()
	}

	totals := make([]models.GroupWork, 0, len(group2work))
	for group, work := range group2work {
		totals = append(totals, models.GroupWork{MuscleGroup: group, Work: work})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].MuscleGroup < totals[j].MuscleGroup
	})

	return totals
}

// Build assembles the report sections. A section without entries carries a
// notice instead of data.
func Build(
	username string,
	exercises []models.ExerciseEntry,
	measurements []models.MeasurementEntry,
	nutrition []models.NutritionEntry,
	now time.Time,
) (*models.DailyReport, error) {
	report := &models.DailyReport{
		Username:    username,
		GeneratedAt: now,
	}

	if len(measurements) == 0 {
		report.Measurements.Notice = models.NoticeNoMeasurements
	} else {
		series, err := MeasurementTrend(measurements)
		if err != nil {
			return nil, err
		}
		report.Measurements.Series = series
	}

	if len(nutrition) == 0 {
		report.Nutrition.Notice = models.NoticeNoNutrition
	} else {
		series, err := NutritionTrend(nutrition)
		if err != nil {
			return nil, err
		}
		report.Nutrition.Series = &series
	}

	if len(exercises) == 0 {
		report.Work.Notice = models.NoticeNoExercises
	} else {
		report.Work.Totals = WorkByMuscleGroup(exercises)
	}

	return report, nil
}
