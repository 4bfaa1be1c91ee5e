package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"taskboard/internal/apperr"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// WriteJSON writes a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteError maps an application error to its HTTP status and writes the
// JSON error body. Store failures are reported without internal detail.
func WriteError(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)

	message := err.Error()
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	if kind == apperr.KindStore {
		message = "internal server error"
	}

	WriteJSON(w, ErrorResponse{Error: message, Code: errorCode(kind)}, statusFor(kind))
}

// BadRequest writes a 400 for malformed input that never reached the core.
func BadRequest(w http.ResponseWriter, message string) {
	WriteError(w, apperr.Validation("%s", message))
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindDuplicate:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func errorCode(kind apperr.Kind) string {
	switch kind {
	case apperr.KindValidation:
		return "VALIDATION_FAILED"
	case apperr.KindNotFound:
		return "NOT_FOUND"
	case apperr.KindDuplicate:
		return "DUPLICATE"
	default:
		return "STORE_ERROR"
	}
}
