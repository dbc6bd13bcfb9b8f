package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-training-log/internal/models"
)

// NewCatalogHandler returns an HTTP handler listing the entry form options.
// @Summary Option catalog
// @Description List muscle groups, exercises per group, vitamins, protein sources and sides.
// @Tags entries
// @Produce json
// @Success 200 {object} models.Catalog "Catalog"
// @Router /catalog [get]
func NewCatalogHandler(catalog models.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalog)
	}
}
