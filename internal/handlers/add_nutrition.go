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

// NutritionAdder saves a nutrition entry and returns the stored row.
type NutritionAdder interface {
	AddNutrition(ctx context.Context, entry models.NutritionEntry) (*models.NutritionEntry, error)
}

// AddNutritionRequest represents the JSON body for logging daily intake
// swagger:model AddNutritionRequest
type AddNutritionRequest struct {
	// User the entry belongs to
	// required: true
	// default: alice
	User string `json:"user"`

	// Date of the intake (YYYY-MM-DD), today when omitted
	// default: 2024-01-01
	Date string `json:"date"`

	// Vitamins taken, stored comma-joined as given
	Vitamins []string `json:"vitamins"`

	// Whether creatine was taken
	// default: true
	Creatine bool `json:"creatine"`

	// Protein in grams
	// default: 120
	Protein float64 `json:"protein"`

	// Protein source
	// default: Frango
	ProteinSource string `json:"protein_source"`
}

// AddNutritionResponse represents a successfully logged intake
// swagger:model AddNutritionResponse
type AddNutritionResponse struct {
	// Success message
	// default: Nutrition saved successfully
	Message string `json:"message"`

	// Most recent nutrition entry of the user
	Entry models.NutritionEntry `json:"entry"`
}

// NewAddNutritionHandler returns an HTTP handler that logs one nutrition entry.
// @Summary Log nutrition
// @Description Append one nutrition entry for a user and return the latest stored entry.
// @Tags entries
// @Accept json
// @Produce json
// @Param request body handlers.AddNutritionRequest true "Nutrition"
// @Success 201 {object} handlers.AddNutritionResponse "Nutrition saved successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /entries/nutrition [post]
func NewAddNutritionHandler(svc NutritionAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddNutritionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode nutrition request", "request_id", middlewares.RequestIDFromContext(r.Context()), "error", err)
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
		case req.Protein < 0:
			writeError(w, http.StatusBadRequest, "protein must not be negative")
			return
		}

		entry, err := svc.AddNutrition(r.Context(), models.NutritionEntry{
			Username:      req.User,
			Date:          date,
			Vitamins:      models.JoinVitamins(req.Vitamins),
			Creatine:      req.Creatine,
			Protein:       req.Protein,
			ProteinSource: req.ProteinSource,
		})
		if err != nil {
			logger.Log.Errorw("failed to add nutrition", "request_id", middlewares.RequestIDFromContext(r.Context()), "user", req.User, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, AddNutritionResponse{
			Message: "Nutrition saved successfully",
			Entry:   *entry,
		})
	}
}
