package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-training-log/internal/logger"
	"github.com/sbilibin2017/gw-training-log/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrNoEntries is returned when a user has no entry of the requested kind.
	ErrNoEntries = errors.New("no entries found")
	// ErrUnknownEntryKind is returned for a kind outside the known record types.
	ErrUnknownEntryKind = errors.New("unknown entry kind")
)

// ExerciseWriter appends exercise entries.
type ExerciseWriter interface {
	Save(ctx context.Context, entry models.ExerciseEntry) (int64, error)
}

// ExerciseReader returns the most recent exercise entry of a user.
type ExerciseReader interface {
	Latest(ctx context.Context, username string) (*models.ExerciseEntry, error)
}

// MeasurementWriter appends body measurements.
type MeasurementWriter interface {
	Save(ctx context.Context, entry models.MeasurementEntry) (int64, error)
}

// MeasurementReader returns the most recent body measurement of a user.
type MeasurementReader interface {
	Latest(ctx context.Context, username string) (*models.MeasurementEntry, error)
}

// NutritionWriter appends nutrition entries.
type NutritionWriter interface {
	Save(ctx context.Context, entry models.NutritionEntry) (int64, error)
}

// NutritionReader returns the most recent nutrition entry of a user.
type NutritionReader interface {
	Latest(ctx context.Context, username string) (*models.NutritionEntry, error)
}

// ReportInvalidator drops a cached report.
type ReportInvalidator interface {
	Invalidate(ctx context.Context, username string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EntryRepositories groups the per-kind repositories used by EntryService.
type EntryRepositories struct {
	ExerciseWriter    ExerciseWriter
	ExerciseReader    ExerciseReader
	MeasurementWriter MeasurementWriter
	MeasurementReader MeasurementReader
	NutritionWriter   NutritionWriter
	NutritionReader   NutritionReader
}

// AfterCommitFunc schedules fn to run once the write in ctx is durable.
type AfterCommitFunc func(ctx context.Context, fn func(ctx context.Context))

// EntryServiceOption configures an EntryService.
type EntryServiceOption func(*EntryService)

// WithAfterCommit delays cache invalidation and event publishing until the
// surrounding transaction commits.
func WithAfterCommit(afterCommit AfterCommitFunc) EntryServiceOption {
	return func(s *EntryService) {
		s.afterCommit = afterCommit
	}
}

// EntryService appends entries and serves the latest entry preview.
type EntryService struct {
	repos       EntryRepositories
	cache       ReportInvalidator
	kafkaWriter KafkaWriter
	afterCommit AfterCommitFunc
}

// NewEntryService creates a new EntryService. cache and kafkaWriter may be nil.
func NewEntryService(repos EntryRepositories, cache ReportInvalidator, kafkaWriter KafkaWriter, opts ...EntryServiceOption) *EntryService {
	s := &EntryService{
		repos:       repos,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		afterCommit: func(ctx context.Context, fn func(ctx context.Context)) { fn(ctx) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddExercise saves an exercise entry and returns the user's latest exercise entry.
func (s *EntryService) AddExercise(ctx context.Context, entry models.ExerciseEntry) (*models.ExerciseEntry, error) {
	return addEntry(ctx, s, entry, s.repos.ExerciseWriter.Save, s.repos.ExerciseReader.Latest)
}

// AddMeasurement saves a body measurement and returns the user's latest measurement.
func (s *EntryService) AddMeasurement(ctx context.Context, entry models.MeasurementEntry) (*models.MeasurementEntry, error) {
	return addEntry(ctx, s, entry, s.repos.MeasurementWriter.Save, s.repos.MeasurementReader.Latest)
}

// AddNutrition saves a nutrition entry and returns the user's latest nutrition entry.
func (s *EntryService) AddNutrition(ctx context.Context, entry models.NutritionEntry) (*models.NutritionEntry, error) {
	return addEntry(ctx, s, entry, s.repos.NutritionWriter.Save, s.repos.NutritionReader.Latest)
}

func addEntry[E models.Entry](
	ctx context.Context,
	s *EntryService,
	entry E,
	save func(context.Context, E) (int64, error),
	latest func(context.Context, string) (*E, error),
) (*E, error) {
	id, err := save(ctx, entry)
	if err != nil {
		logger.Log.Errorw("failed to save entry", "kind", entry.Kind(), "user", entry.Owner(), "error", err)
		return nil, err
	}

	event := models.EntryEvent{
		EventID:   uuid.NewString(),
		Kind:      entry.Kind(),
		Username:  entry.Owner(),
		Date:      entry.EntryDate(),
		EntryID:   id,
		Timestamp: time.Now().Unix(),
	}
	s.afterCommit(ctx, func(ctx context.Context) {
		s.invalidateReport(ctx, event.Username)
		s.publishEntry(ctx, event)
	})

	saved, err := latest(ctx, entry.Owner())
	if err != nil {
		logger.Log.Errorw("failed to read entry after save", "kind", entry.Kind(), "user", entry.Owner(), "error", err)
		return nil, err
	}
	if saved == nil {
		return nil, ErrNoEntries
	}

	return saved, nil
}

// Latest returns the most recently saved entry of the given kind for a user.
func (s *EntryService) Latest(ctx context.Context, kind models.EntryKind, username string) (models.Entry, error) {
	var (
		entry models.Entry
		err   error
	)

	switch kind {
	case models.KindExercise:
		var e *models.ExerciseEntry
		if e, err = s.repos.ExerciseReader.Latest(ctx, username); e != nil {
			entry = e
		}
	case models.KindMeasurement:
		var e *models.MeasurementEntry
		if e, err = s.repos.MeasurementReader.Latest(ctx, username); e != nil {
			entry = e
		}
	case models.KindNutrition:
		var e *models.NutritionEntry
		if e, err = s.repos.NutritionReader.Latest(ctx, username); e != nil {
			entry = e
		}
	default:
		return nil, ErrUnknownEntryKind
	}

	if err != nil {
		logger.Log.Errorw("failed to get latest entry", "kind", kind, "user", username, "error", err)
		return nil, err
	}
	if entry == nil {
		return nil, ErrNoEntries
	}

	return entry, nil
}

func (s *EntryService) invalidateReport(ctx context.Context, username string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, username); err != nil {
		logger.Log.Errorw("failed to invalidate cached report", "user", username, "error", err)
	}
}

// publishEntry publishes a saved entry to Kafka.
func (s *EntryService) publishEntry(ctx context.Context, event models.EntryEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal entry event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish entry event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Entry event published to Kafka", "event_id", event.EventID, "kind", event.Kind, "user", event.Username)
	}
}
