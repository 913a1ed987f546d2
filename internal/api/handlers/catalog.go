package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/wynet321/fund-insight-backend/internal/api/response"
	"github.com/wynet321/fund-insight-backend/internal/service"
)

// CatalogHandler serves the locally cached fund catalog.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler with the provided service dependency.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List returns a page of catalog entries sorted by the requested year-rate
// column, highest first. Types is an optional comma-separated filter.
//
// Endpoint: GET /api/rate/list?year=&types=&page=&size=
// Response: 200 OK with a CatalogPage
// Error: 400 on an unknown year field or out-of-range paging
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	yearField := query.Get("year")
	if yearField == "" {
		yearField = "oneYearRate"
	}

	var types []string
	if raw := query.Get("types"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}
	}

	page := 0
	if raw := query.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "validation failed",
				map[string]string{"page": "page must be an integer"})
			return
		}
		page = parsed
	}

	size := 20
	if raw := query.Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "validation failed",
				map[string]string{"size": "size must be an integer"})
			return
		}
		size = parsed
	}

	result, err := h.catalogService.List(r.Context(), yearField, types, page, size)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}
