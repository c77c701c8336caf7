package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/HammerMeetNail/syncin/internal/logging"
	"github.com/HammerMeetNail/syncin/internal/schemas"
)

const maxBodyBytes = 1 << 20

type ErrorResponse struct {
	Error   string               `json:"error"`
	Details []schemas.FieldError `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// decodeBody reads a JSON body, checks it against the named schema and
// decodes it into dst. On failure it has already written the response and
// returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, schema string, dst interface{}) bool {
	log := logging.FromContext(r.Context())

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if !json.Valid(body) {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	if err := schemas.Validate(schema, body); err != nil {
		var verr *schemas.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "Request body does not match the expected shape",
				Details: verr.Errors,
			})
			return false
		}
		log.Error("Schema validation failed", map[string]interface{}{
			"schema": schema,
			"error":  err.Error(),
		})
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error: "Request body does not match the expected shape",
			Details: []schemas.FieldError{{
				Field:   "(root)",
				Message: err.Error(),
			}},
		})
		return false
	}
	return true
}
