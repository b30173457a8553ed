package handlers

import (
	"errors"
	"net/http"

	"dash-backend/internal/repositories"
	"dash-backend/internal/services"
)

// writeError maps service errors onto HTTP status codes. Validation
// problems are the caller's fault, missing records are 404, a
// fulfillment conflict is 409, everything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		http.Error(w, ve.Error(), http.StatusBadRequest)
	case errors.Is(err, repositories.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, services.ErrOrderNotPending),
		errors.Is(err, services.ErrFulfillmentInFlight):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
