// Package apperrors defines the sentinel errors shared across the service
// and API layers.
package apperrors

import "errors"

// Domain entity errors represent missing entities. These map to 404s at the
// API layer.
var (
	// ErrFundNotFound indicates that no fund matched the given ID or name.
	ErrFundNotFound = errors.New("fund not found")

	// ErrCompanyNotFound indicates that a company lookup returned no result.
	ErrCompanyNotFound = errors.New("company not found")
)

// Upstream errors represent failures of the fund-data provider. They are
// retryable by user re-submission only; the service never retries on its own.
var (
	// ErrUpstreamUnavailable indicates that the provider could not be
	// reached or answered with a non-success status.
	ErrUpstreamUnavailable = errors.New("fund data provider unavailable")

	// ErrUpstreamPayload indicates that the provider answered with a body
	// that could not be decoded at all.
	ErrUpstreamPayload = errors.New("undecodable provider response")
)

// Business logic errors represent constraint violations.
var (
	// ErrInvalidDateRange indicates that the provided date range is
	// inverted or malformed.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrMissingRequiredField indicates that a required field is missing or
	// empty.
	ErrMissingRequiredField = errors.New("missing required field")
)
