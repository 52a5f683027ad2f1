package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// WriteJSON encodes data as the response body under status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is already out; a failed body write has no recovery.
	_ = json.NewEncoder(w).Encode(data)
}

// errorResponse is the body of every non-2xx response: a snake_case code
// clients can branch on and a message for people.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteError responds with an errorResponse.
func WriteError(w http.ResponseWriter, status int, errorCode, message string) {
	WriteJSON(w, status, errorResponse{
		Error:   errorCode,
		Message: message,
	})
}

var errInvalidBody = errors.New("Request body must be a single valid JSON value with Content-Type: application/json")

// ParseJSON decodes the request body as a single JSON value into v.
// Unknown fields, trailing data and a missing or non-JSON Content-Type are
// rejected.
func ParseJSON(r *http.Request, v any) error {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(ct, "application/json") {
		return errInvalidBody
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errInvalidBody
	}
	if dec.More() {
		return errInvalidBody
	}

	return nil
}
