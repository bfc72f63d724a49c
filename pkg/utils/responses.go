package utils

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body every endpoint shares on plain outcomes.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse adds field-level validation errors when present.
type ErrorResponse struct {
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

// ResponseJSON writes any payload with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Success responses -------------

// returns 200 OK with a bare message
func ResponseMessage(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	ResponseJSON(w, http.StatusBadRequest, ErrorResponse{Message: message, Errors: errors})
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusUnauthorized, MessageResponse{Message: message})
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusForbidden, MessageResponse{Message: message})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotFound, MessageResponse{Message: message})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, MessageResponse{Message: message})
}
