/*
handlers.go - HTTP API handlers for the lease mileage projection service

PURPOSE:
  Exposes the projection engine via a small JSON API. Handles HTTP
  request/response, JSON serialization, and delegates every calculation
  to the lease package.

ENDPOINTS:
  POST   /api/projection   Run one projection, return metrics + chart series
  GET    /api/options      Input form enumerations and defaults
  GET    /api/health       Liveness probe

REQUEST FLOW:
  1. Decode and parse the request (dates, numbers)
  2. lease.Project computes the result or fails validation
  3. lease.BuildSeries derives the chart series
  4. Serialize both, or the error, never a partial body

ERROR HANDLING:
  Errors are returned as JSON with a machine-readable code:
  - 400 future_lease:       start date after the as-of date
  - 400 not_started:        zero elapsed days
  - 400 invalid_parameter:  input outside its domain, bad JSON, bad dates
  - 500:                    anything else (should not happen; the engine
                            is total once validation passes)

STATE:
  None. The handler holds no per-calculation state; every request is an
  independent, stateless computation, so concurrent requests need no
  locking.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lucasw9999/carleasetracker/lease"
)

// Error codes returned in ErrorResponse.Code.
const (
	codeFutureLease      = "future_lease"
	codeNotStarted       = "not_started"
	codeInvalidParameter = "invalid_parameter"
)

// Input form enumerations, matching the contract shapes leasing companies
// actually write.
var (
	durationOptions  = []int{2, 3, 4, 5}
	allowanceOptions = []float64{10000, 12000, 15000, 18000}
)

const defaultExtraMilePrice = 0.25

// Handler holds the HTTP handlers. The engine is pure, so there are no
// dependencies to inject.
type Handler struct{}

// NewHandler creates a new handler.
func NewHandler() *Handler {
	return &Handler{}
}

// CreateProjection runs one lease mileage projection.
// POST /api/projection
func (h *Handler) CreateProjection(w http.ResponseWriter, r *http.Request) {
	var req ProjectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", codeInvalidParameter, err)
		return
	}

	terms, reading, err := req.toDomain()
	if err != nil {
		writeLeaseError(w, err)
		return
	}

	p, err := lease.Project(terms, reading)
	if err != nil {
		writeLeaseError(w, err)
		return
	}

	series := lease.BuildSeries(terms, reading, p)
	writeJSON(w, http.StatusOK, ProjectionResponse{
		Projection: toProjectionDTO(terms, reading, p),
		Series:     toSeriesDTOs(series),
	})
}

// GetOptions returns the form enumerations and defaults.
// GET /api/options
func (h *Handler) GetOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, OptionsDTO{
		DurationYears:         durationOptions,
		AnnualAllowances:      allowanceOptions,
		DefaultExtraMilePrice: defaultExtraMilePrice,
	})
}

// GetHealth is a liveness probe.
// GET /api/health
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

// writeLeaseError maps the engine's error taxonomy to HTTP responses.
func writeLeaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, lease.ErrFutureLease):
		writeError(w, http.StatusBadRequest, "Lease start date cannot be in the future", codeFutureLease, err)
	case errors.Is(err, lease.ErrNotStarted):
		writeError(w, http.StatusBadRequest, "Lease hasn't started yet", codeNotStarted, err)
	case errors.Is(err, lease.ErrInvalidParameter):
		writeError(w, http.StatusBadRequest, "Invalid lease parameters", codeInvalidParameter, err)
	default:
		writeError(w, http.StatusInternalServerError, "Projection failed", "", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message, code string, err error) {
	resp := ErrorResponse{Error: message, Code: code}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
