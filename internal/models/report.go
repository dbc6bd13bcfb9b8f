package models

import (
	"errors"
	"time"
)

// ErrReportNotCached is returned by report caches on a miss.
var ErrReportNotCached = errors.New("report not found in cache")

// Point is one dated value of a series.
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Series is a named, date-ordered line.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// GroupWork is the summed work (load × reps) of one muscle group.
type GroupWork struct {
	MuscleGroup string  `json:"muscle_group"`
	Work        float64 `json:"work"`
}

// MeasurementSection holds one series per muscle group, or a notice when the user has no measurements.
type MeasurementSection struct {
	Series []Series `json:"series,omitempty"`
	Notice string   `json:"notice,omitempty"`
}

// NutritionSection holds the protein series, or a notice when the user has no nutrition entries.
type NutritionSection struct {
	Series *Series `json:"series,omitempty"`
	Notice string  `json:"notice,omitempty"`
}

// WorkSection holds work totals per muscle group, or a notice when the user has no exercises.
type WorkSection struct {
	Totals []GroupWork `json:"totals,omitempty"`
	Notice string      `json:"notice,omitempty"`
}

// DailyReport is the full report of one user.
// swagger:model DailyReport
type DailyReport struct {
	Username     string             `json:"user"`
	GeneratedAt  time.Time          `json:"generated_at"`
	Measurements MeasurementSection `json:"measurements"`
	Nutrition    NutritionSection   `json:"nutrition"`
	Work         WorkSection        `json:"work"`
}

// Report notices for sections without data.
const (
	NoticeNoMeasurements = "no measurement data found"
	NoticeNoNutrition    = "no nutrition data found"
	NoticeNoExercises    = "no exercise data found"
)
