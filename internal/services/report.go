package services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/gw-training-log/internal/logger"
	"github.com/sbilibin2017/gw-training-log/internal/models"
	"github.com/sbilibin2017/gw-training-log/internal/reports"
)

// ExerciseLister lists every exercise entry of a user in insertion order.
type ExerciseLister interface {
	ListByUser(ctx context.Context, username string) ([]models.ExerciseEntry, error)
}

// MeasurementLister lists every body measurement of a user in insertion order.
type MeasurementLister interface {
	ListByUser(ctx context.Context, username string) ([]models.MeasurementEntry, error)
}

// NutritionLister lists every nutrition entry of a user in insertion order.
type NutritionLister interface {
	ListByUser(ctx context.Context, username string) ([]models.NutritionEntry, error)
}

// ReportCache stores built reports per user.
type ReportCache interface {
	Get(ctx context.Context, username string) (*models.DailyReport, error)
	Set(ctx context.Context, report *models.DailyReport) error
}

// ReportService builds per-user reports from the stored entries.
type ReportService struct {
	exercises    ExerciseLister
	measurements MeasurementLister
	nutrition    NutritionLister
	cache        ReportCache
	now          func() time.Time
}

// NewReportService creates a new ReportService. cache may be nil.
func NewReportService(
	exercises ExerciseLister,
	measurements MeasurementLister,
	nutrition NutritionLister,
	cache ReportCache,
) *ReportService {
	return &ReportService{
		exercises:    exercises,
		measurements: measurements,
		nutrition:    nutrition,
		cache:        cache,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// DailyReport returns the measurement trend, nutrition trend and work per
// muscle group of a user. A cached report is served when available.
func (s *ReportService) DailyReport(ctx context.Context, username string) (*models.DailyReport, error) {
	if s.cache != nil {
		report, err := s.cache.Get(ctx, username)
		if err == nil {
			return report, nil
		}
		if !errors.Is(err, models.ErrReportNotCached) {
			logger.Log.Warnw("failed to read cached report", "user", username, "error", err)
		}
	}

	measurements, err := s.measurements.ListByUser(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to list measurements", "user", username, "error", err)
		return nil, err
	}

	nutrition, err := s.nutrition.ListByUser(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to list nutrition entries", "user", username, "error", err)
		return nil, err
	}

	exercises, err := s.exercises.ListByUser(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to list exercises", "user", username, "error", err)
		return nil, err
	}

	report, err := reports.Build(username, exercises, measurements, nutrition, s.now())
	if err != nil {
		logger.Log.Errorw("failed to build report", "user", username, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, report); err != nil {
			logger.Log.Warnw("failed to cache report", "user", username, "error", err)
		}
	}

	return report, nil
}
