package web

// errors.go provides unified error response handling for the web layer.
//
// Every handler error goes through respondError, which:
//  1. Picks an HTTP status from the error's kind (errors.Is / errors.As)
//  2. Maps the technical error to a user message via core.MapError
//  3. Logs the technical error with the request ID for correlation
//  4. Writes the user message as a JSON ErrorResponse

import (
	"context"
	"errors"
	"net/http"

	"csvq/internal/core"
	"csvq/internal/csv"
	"csvq/internal/logging"
)

// ErrorResponse represents the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action)
// fields.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// errInvalidIndex reports a line/column path parameter that is not an
// unsigned decimal integer.
var errInvalidIndex = errors.New("invalid index parameter")

// respondError logs the technical error server-side and writes the mapped
// user-friendly message with an appropriate status code.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	userMsg := core.MapError(err)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"code", userMsg.Code,
	)

	writeJSON(w, status, ErrorResponse{
		Error:   userMsg.Message,
		Message: userMsg.Message,
		Action:  userMsg.Action,
		Code:    userMsg.Code,
	})
}

// statusFor maps an error to its HTTP status code.
func statusFor(err error) int {
	var (
		idxErr *csv.IndexError
		numErr *csv.NumericError
	)

	switch {
	case errors.Is(err, core.ErrDocumentNotFound):
		return http.StatusNotFound
	case errors.As(err, &idxErr):
		return http.StatusNotFound
	case errors.As(err, &numErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, csv.ErrParse):
		return http.StatusBadRequest
	case errors.Is(err, errInvalidIndex):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrDocumentTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, core.ErrStoreFull):
		return http.StatusTooManyRequests
	case errors.Is(err, core.ErrAuditDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
