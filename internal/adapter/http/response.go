package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"adops/internal/core/domain"
)

// envelope is the body of a successful API response.
type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// errorEnvelope is the body of a failed API response.
type errorEnvelope struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// writeJSON writes v with the given status code.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already sent
		h.logger.Error("encode response",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err))
	}
}

func (h *Handler) writeData(w http.ResponseWriter, r *http.Request, status int, data any) {
	h.writeJSON(w, r, status, envelope{Success: true, Data: data})
}

func (h *Handler) ok(w http.ResponseWriter, r *http.Request, data any) {
	h.writeData(w, r, http.StatusOK, data)
}

func (h *Handler) created(w http.ResponseWriter, r *http.Request, data any) {
	h.writeData(w, r, http.StatusCreated, data)
}

// writeError maps err onto a status code. Errors without a kind are logged
// and answered with a generic 500 so driver messages never leak.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(domain.KindOf(err))
	body := errorBody{Code: codeOf(status)}

	var de *domain.Error
	if status == http.StatusInternalServerError || !errors.As(err, &de) {
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err))
		body.Message = "internal server error"
	} else {
		body.Message = de.Message
		body.Details = de.Details
	}
	h.writeJSON(w, r, status, errorEnvelope{Error: body})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, status int, message string, details map[string]any) {
	h.writeJSON(w, r, status, errorEnvelope{Error: errorBody{Code: codeOf(status), Message: message, Details: details}})
}

func statusOf(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindPrecondition:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}

func codeOf(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusMethodNotAllowed:
		return "method_not_allowed"
	case http.StatusConflict:
		return "conflict"
	case http.StatusPreconditionFailed:
		return "precondition_failed"
	case http.StatusRequestEntityTooLarge:
		return "payload_too_large"
	case http.StatusTooManyRequests:
		return "rate_limit_exceeded"
	case http.StatusServiceUnavailable:
		return "unavailable"
	default:
		return "internal_error"
	}
}

// decodeJSON reads a JSON body into dst and validates it. Unknown fields
// are rejected.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Validation("request body is required")
		}
		return domain.NewError(domain.KindValidation, "invalid JSON body", err)
	}
	return validateStruct(dst)
}

const maxJSONBody = 1 << 20
