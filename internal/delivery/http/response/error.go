package response

import (
	"errors"
	"log/slog"
	"net/http"

	"driver-buddy/internal/domain"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		NotFound(w, "Record not found")

	// Validation errors carry the offending value in their message
	case errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidTime),
		errors.Is(err, domain.ErrInvalidSettings),
		errors.Is(err, domain.ErrNoEntries):
		BadRequest(w, err.Error())

	case errors.Is(err, domain.ErrCloudUnavailable):
		ServiceUnavailable(w, "Cloud storage is not configured")

	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
