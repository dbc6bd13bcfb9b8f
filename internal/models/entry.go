package models

import (
	"fmt"
	"strings"
)

// DateLayout is the calendar date format entries are submitted and stored with.
const DateLayout = "2006-01-02"

// EntryKind enumerates the record types a user can log.
type EntryKind string

const (
	KindExercise    EntryKind = "exercise"
	KindMeasurement EntryKind = "measurement"
	KindNutrition   EntryKind = "nutrition"
)

// ParseEntryKind maps a path segment to an EntryKind.
func ParseEntryKind(s string) (EntryKind, error) {
	switch EntryKind(s) {
	case KindExercise, KindMeasurement, KindNutrition:
		return EntryKind(s), nil
	default:
		return "", fmt.Errorf("unknown entry kind %q", s)
	}
}

// Side of the body a measurement was taken on.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Valid reports whether s is one of the known sides.
func (s Side) Valid() bool {
	return s == SideLeft || s == SideRight
}

// Entry is implemented by every persisted record type.
type Entry interface {
	Kind() EntryKind
	Owner() string
	EntryDate() string
}

// ExerciseEntry is one logged set: a load lifted for a number of repetitions.
// swagger:model ExerciseEntry
type ExerciseEntry struct {
	ID          int64   `db:"id" json:"id"`
	Username    string  `db:"username" json:"user"`
	Date        string  `db:"entry_date" json:"date"`
	Exercise    string  `db:"exercise" json:"exercise"`
	MuscleGroup string  `db:"muscle_group" json:"muscle_group"`
	Load        float64 `db:"load" json:"load"`
	Reps        int     `db:"reps" json:"reps"`
}

func (e ExerciseEntry) Kind() EntryKind   { return KindExercise }
func (e ExerciseEntry) Owner() string     { return e.Username }
func (e ExerciseEntry) EntryDate() string { return e.Date }

// Work is the load times the repetitions of the set.
func (e ExerciseEntry) Work() float64 {
	return e.Load * float64(e.Reps)
}

// MeasurementEntry is a body measurement (cm) of one muscle group on one side.
// swagger:model MeasurementEntry
type MeasurementEntry struct {
	ID          int64   `db:"id" json:"id"`
	Username    string  `db:"username" json:"user"`
	Date        string  `db:"entry_date" json:"date"`
	MuscleGroup string  `db:"muscle_group" json:"muscle_group"`
	Measurement float64 `db:"measurement" json:"measurement"`
	Side        Side    `db:"side" json:"side"`
}

func (e MeasurementEntry) Kind() EntryKind   { return KindMeasurement }
func (e MeasurementEntry) Owner() string     { return e.Username }
func (e MeasurementEntry) EntryDate() string { return e.Date }

// NutritionEntry is a daily intake record.
// Vitamins holds the selected vitamins joined with a comma, as stored.
// swagger:model NutritionEntry
type NutritionEntry struct {
	ID            int64   `db:"id" json:"id"`
	Username      string  `db:"username" json:"user"`
	Date          string  `db:"entry_date" json:"date"`
	Vitamins      string  `db:"vitamins" json:"vitamins"`
	Creatine      bool    `db:"creatine" json:"creatine"`
	Protein       float64 `db:"protein" json:"protein"`
	ProteinSource string  `db:"protein_source" json:"protein_source"`
}

func (e NutritionEntry) Kind() EntryKind   { return KindNutrition }
func (e NutritionEntry) Owner() string     { return e.Username }
func (e NutritionEntry) EntryDate() string { return e.Date }

// JoinVitamins builds the stored form of a vitamin selection.
// Duplicates and empty names are kept as given.
func JoinVitamins(vitamins []string) string {
	return strings.Join(vitamins, ",")
}
