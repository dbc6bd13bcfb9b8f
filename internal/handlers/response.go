package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-training-log/internal/models"
)

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: invalid request body
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// today returns the current UTC calendar date.
var today = func() string {
	return time.Now().UTC().Format(models.DateLayout)
}

// resolveDate returns the submitted date, or today when none was given.
func resolveDate(date string) (string, bool) {
	if date == "" {
		return today(), true
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return "", false
	}
	return date, true
}
