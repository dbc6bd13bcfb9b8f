package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-training-log/internal/logger"
	"github.com/sbilibin2017/gw-training-log/internal/middlewares"
	"github.com/sbilibin2017/gw-training-log/internal/models"
	"github.com/sbilibin2017/gw-training-log/internal/services"
)

// LatestReader returns the most recent entry of one kind for a user.
type LatestReader interface {
	Latest(ctx context.Context, kind models.EntryKind, username string) (models.Entry, error)
}

// NewLatestEntryHandler returns an HTTP handler previewing the user's last entry of a kind.
// @Summary Latest entry
// @Description Return the most recently saved entry of the given kind for a user.
// @Tags entries
// @Produce json
// @Param kind path string true "Entry kind" Enums(exercise, measurement, nutrition)
// @Param user query string true "User"
// @Success 200 {object} object "Latest entry"
// @Failure 400 {object} handlers.ErrorResponse "Unknown kind or missing user"
// @Failure 404 {object} handlers.ErrorResponse "No entries found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /entries/{kind}/latest [get]
func NewLatestEntryHandler(svc LatestReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := models.ParseEntryKind(chi.URLParam(r, "kind"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		user := r.URL.Query().Get("user")
		if strings.TrimSpace(user) == "" {
			writeError(w, http.StatusBadRequest, "user is required")
			return
		}

		entry, err := svc.Latest(r.Context(), kind, user)
		switch {
		case errors.Is(err, services.ErrNoEntries):
			writeError(w, http.StatusNotFound, services.ErrNoEntries.Error())
			return
		case errors.Is(err, services.ErrUnknownEntryKind):
			writeError(w, http.StatusBadRequest, err.Error())
			return
		case err != nil:
			logger.Log.Errorw("failed to get latest entry", "request_id", middlewares.RequestIDFromContext(r.Context()), "kind", kind, "user", user, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, entry)
	}
}
