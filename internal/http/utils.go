package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Notifuse/sitebuilder/internal/domain"
	"github.com/Notifuse/sitebuilder/pkg/logger"
)

// WriteJSONError writes a JSON error response with the given message and status code.
// It sets the Content-Type header to application/json and automatically formats
// the response as {"error": "message"}.
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// writeJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// StatusForError maps service errors to HTTP status codes
func StatusForError(err error) int {
	var notFound *domain.ErrNotFound
	var validationErr domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSlugTaken),
		errors.Is(err, domain.ErrSlugExhausted),
		errors.Is(err, domain.ErrStyleConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError writes err with its mapped status. Internal errors are
// logged and hidden from the client.
func writeServiceError(w http.ResponseWriter, log logger.Logger, err error, msg string) {
	status := StatusForError(err)
	if status == http.StatusInternalServerError {
		log.WithField("error", err.Error()).Error(msg)
		WriteJSONError(w, msg, status)
		return
	}
	WriteJSONError(w, err.Error(), status)
}

// requireMethod rejects requests with any other method
func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// storeID reads the store_id query parameter every route requires
func storeID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.URL.Query().Get("store_id")
	if id == "" {
		WriteJSONError(w, "store_id is required", http.StatusBadRequest)
		return "", false
	}
	return id, true
}

// decodeBody decodes a JSON request body into v
func decodeBody(w http.ResponseWriter, r *http.Request, log logger.Logger, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}
