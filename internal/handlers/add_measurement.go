package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-training-log/internal/logger"
	"github.com/sbilibin2017/gw-training-log/internal/middlewares"
	"github.com/sbilibin2017/gw-training-log/internal/models"
)

// MeasurementAdder saves a body measurement and returns the stored row.
type MeasurementAdder interface {
	AddMeasurement(ctx context.Context, entry models.MeasurementEntry) (*models.MeasurementEntry, error)
}

// AddMeasurementRequest represents the JSON body for logging a body measurement
// swagger:model AddMeasurementRequest
type AddMeasurementRequest struct {
	// User the measurement belongs to
	// required: true
	// default: alice
	User string `json:"user"`

	// Date of the measurement (YYYY-MM-DD), today when omitted
	// default: 2024-01-01
	Date string `json:"date"`

	// Muscle group
	// required: true
	// default: Braços
	MuscleGroup string `json:"muscle_group"`

	// Measurement in cm
	// default: 35.5
	Measurement float64 `json:"measurement"`

	// Side of the body, left or right
	// required: true
	// default: left
	Side string `json:"side"`
}

// AddMeasurementResponse represents a successfully logged measurement
// swagger:model AddMeasurementResponse
type AddMeasurementResponse struct {
	// Success message
	// default: Measurement saved successfully
	Message string `json:"message"`

	// Most recent measurement of the user
	Entry models.MeasurementEntry `json:"entry"`
}

// NewAddMeasurementHandler returns an HTTP handler that logs one body measurement.
// @Summary Log body measurement
// @Description Append one body measurement for a user and return the latest stored measurement.
// @Tags entries
// @Accept json
// @Produce json
// @Param request body handlers.AddMeasurementRequest true "Measurement"
// @Success 201 {object} handlers.AddMeasurementResponse "Measurement saved successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /entries/measurement [post]
func NewAddMeasurementHandler(svc MeasurementAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddMeasurementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode measurement request", "request_id", middlewares.RequestIDFromContext(r.Context()), "error", err)
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		date, ok := resolveDate(req.Date)
		side := models.Side(req.Side)
		switch {
		case strings.TrimSpace(req.User) == "":
			writeError(w, http.StatusBadRequest, "user is required")
			return
		case !ok:
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		case req.MuscleGroup == "":
			writeError(w, http.StatusBadRequest, "muscle_group is required")
			return
		case req.Measurement < 0:
			writeError(w, http.StatusBadRequest, "measurement must not be negative")
			return
		case !side.Valid():
			writeError(w, http.StatusBadRequest, "side must be left or right")
			return
		}

		entry, err := svc.AddMeasurement(r.Context(), models.MeasurementEntry{
			Username:    req.User,
			Date:        date,
			MuscleGroup: req.MuscleGroup,
			Measurement: req.Measurement,
			Side:        side,
		})
		if err != nil {
			logger.Log.Errorw("failed to add measurement", "request_id", middlewares.RequestIDFromContext(r.Context()), "user", req.User, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, AddMeasurementResponse{
			Message: "Measurement saved successfully",
			Entry:   *entry,
		})
	}
}
