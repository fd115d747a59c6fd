package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lexabu/woman-owned.com/model"
	"github.com/rs/zerolog/log"
)

var (
	ErrNotFound      = errors.New("not_found")
	ErrInvalidBody   = errors.New("invalid_body")
	ErrCacheDisabled = errors.New("cache is disabled")
	ErrInvalidParam  = errors.New("invalid_parameter")
	ErrInternal      = errors.New("internal_error")
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SendJSONError sends a JSON error response
func SendJSONError(w http.ResponseWriter, statusCode int, err error, message string) {
	SendJSONSuccess(w, statusCode, ErrorResponse{
		Error:   err.Error(),
		Message: message,
	})
}

// SendJSONSuccess sends a JSON response with the given status
func SendJSONSuccess(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// SendFormResponse sends the envelope used by the form endpoints
func SendFormResponse(w http.ResponseWriter, statusCode int, resp model.FormResponse) {
	SendJSONSuccess(w, statusCode, resp)
}
