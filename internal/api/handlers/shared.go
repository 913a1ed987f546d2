package handlers

import (
	"errors"
	"net/http"

	"github.com/wynet321/fund-insight-backend/internal/api/response"
	"github.com/wynet321/fund-insight-backend/internal/apperrors"
	"github.com/wynet321/fund-insight-backend/internal/validation"
)

// respondServiceError maps service-layer failures onto HTTP status codes.
// Validation failures carry their per-field messages in the details map;
// upstream provider failures are reported as 502 with a generic message so
// clients know a retry may succeed.
func respondServiceError(w http.ResponseWriter, err error) {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		response.RespondError(w, http.StatusBadRequest, "validation failed", vErr.Fields)
	case errors.Is(err, apperrors.ErrFundNotFound):
		response.RespondError(w, http.StatusNotFound, "fund not found", nil)
	case errors.Is(err, apperrors.ErrUpstreamUnavailable),
		errors.Is(err, apperrors.ErrUpstreamPayload):
		response.RespondError(w, http.StatusBadGateway, "fund data provider is unavailable, try again later", nil)
	default:
		response.RespondError(w, http.StatusInternalServerError, "internal server error", nil)
	}
}
