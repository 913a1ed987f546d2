package handlers

import (
	"net/http"

	"github.com/wynet321/fund-insight-backend/internal/api/response"
	"github.com/wynet321/fund-insight-backend/internal/service"
)

// FundHandler handles HTTP requests for fund lookup endpoints.
// It parses requests and delegates resolution to the fund service.
type FundHandler struct {
	fundService *service.FundService
}

// NewFundHandler creates a new FundHandler with the provided service dependency.
func NewFundHandler(fundService *service.FundService) *FundHandler {
	return &FundHandler{fundService: fundService}
}

// Search resolves a fund by ID or name. Numeric terms are treated as fund
// IDs first, with a name lookup as fallback.
//
// Endpoint: GET /api/fund/search?term=
// Response: 200 OK with the resolved fund
// Error: 400 on blank term, 404 when nothing matches
func (h *FundHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")

	fund, err := h.fundService.Search(r.Context(), term)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, fund)
}
