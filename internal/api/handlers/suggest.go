package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/wynet321/fund-insight-backend/internal/api/response"
	"github.com/wynet321/fund-insight-backend/internal/fundapi"
	"github.com/wynet321/fund-insight-backend/internal/model"
)

// SuggestHandler handles search-as-you-type suggestion requests.
type SuggestHandler struct {
	client       fundapi.Client
	defaultLimit int
}

// NewSuggestHandler creates a new SuggestHandler.
func NewSuggestHandler(client fundapi.Client, defaultLimit int) *SuggestHandler {
	return &SuggestHandler{client: client, defaultLimit: defaultLimit}
}

// Suggest returns fund suggestions matching a keyword. A blank keyword
// returns an empty list rather than an error so callers can clear their
// input without special-casing.
//
// Endpoint: GET /api/fund/suggest?keyword=&limit=
// Response: 200 OK with a suggestion array, never null
func (h *SuggestHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	keyword := strings.TrimSpace(query.Get("keyword"))
	if keyword == "" {
		response.RespondJSON(w, http.StatusOK, []model.Suggestion{})
		return
	}

	limit := h.defaultLimit
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.RespondError(w, http.StatusBadRequest, "validation failed",
				map[string]string{"limit": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	suggestions, err := h.client.Search(r.Context(), keyword, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if suggestions == nil {
		suggestions = []model.Suggestion{}
	}

	response.RespondJSON(w, http.StatusOK, suggestions)
}
