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

// ExerciseAdder saves an exercise entry and returns the stored row.
type ExerciseAdder interface {
	AddExercise(ctx context.Context, entry models.ExerciseEntry) (*models.ExerciseEntry, error)
}

// AddExerciseRequest represents the JSON body for logging a set
// swagger:model AddExerciseRequest
type AddExerciseRequest struct {
	// User the set belongs to
	// required: true
	// default: alice
	User string `json:"user"`

	// Date of the set (YYYY-MM-DD), today when omitted
	// default: 2024-01-01
	Date string `json:"date"`

	// Exercise name
	// required: true
	// default: Supino
	Exercise string `json:"exercise"`

	// Muscle group
	// required: true
	// default: Peito
	MuscleGroup string `json:"muscle_group"`

	// Load in kg
	// default: 50
	Load float64 `json:"load"`

	// Repetitions
	// default: 10
	Reps int `json:"reps"`
}

// AddExerciseResponse represents a successfully logged set
// swagger:model AddExerciseResponse
type AddExerciseResponse struct {
	// Success message
	// default: Exercise saved successfully
	Message string `json:"message"`

	// Most recent exercise entry of the user
	Entry models.ExerciseEntry `json:"entry"`
}

// NewAddExerciseHandler returns an HTTP handler that logs one exercise set.
// @Summary Log exercise
// @Description Append one exercise set (load × reps) for a user and return the latest stored set.
// @Tags entries
// @Accept json
// @Produce json
// @Param request body handlers.AddExerciseRequest true "Exercise"
// @Success 201 {object} handlers.AddExerciseResponse "Exercise saved successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /entries/exercise [post]
func NewAddExerciseHandler(svc ExerciseAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddExerciseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode exercise request", "request_id", middlewares.RequestIDFromContext(r.Context()), "error", err)
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		date, ok := resolveDate(req.Date)
		switch {
		case strings.TrimSpace(req.User) == "":
			writeError(w, http.StatusBadRequest, "user is required")
			return
		case !ok:
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		case req.Exercise == "" || req.MuscleGroup == "":
			writeError(w, http.StatusBadRequest, "exercise and muscle_group are required")
			return
		case req.Load < 0 || req.Reps < 0:
			writeError(w, http.StatusBadRequest, "load and reps must not be negative")
			return
		}

		entry, err := svc.AddExercise(r.Context(), models.ExerciseEntry{
			Username:    req.User,
			Date:        date,
			Exercise:    req.Exercise,
			MuscleGroup: req.MuscleGroup,
			Load:        req.Load,
			Reps:        req.Reps,
		})
		if err != nil {
			logger.Log.Errorw("failed to add exercise", "request_id", middlewares.RequestIDFromContext(r.Context()), "user", req.User, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, AddExerciseResponse{
			Message: "Exercise saved successfully",
			Entry:   *entry,
		})
	}
}
