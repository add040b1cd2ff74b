package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/inspection-registry/internal/domain"
	"github.com/heartmarshall/inspection-registry/pkg/ctxutil"
)

// Error codes carried in the "error" field of error responses.
const (
	codeValidation   = "VALIDATION"
	codeInvalidRange = "INVALID_RANGE"
	codeMalformed    = "MALFORMED_PAYLOAD"
	codeNotFound     = "NOT_FOUND"
	codeDuplicate    = "DUPLICATE_NAME"
	codeExists       = "ALREADY_EXISTS"
	codeConflict     = "CONFLICT"
	codeUnauthorized = "UNAUTHORIZED"
	codeUnavailable  = "UNAVAILABLE"
	codeInternal     = "INTERNAL"
)

type errorResponse struct {
	Error   string               `json:"error"`
	Message string               `json:"message"`
	Fields  []fieldErrorResponse `json:"fields,omitempty"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

// respondError maps a domain error onto a status code and error body.
// Unexpected errors are logged and reported without detail.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		ve  *domain.ValidationError
		dup *domain.DuplicateNameError
	)
	switch {
	case errors.As(err, &ve):
		resp := errorResponse{Error: codeValidation, Message: ve.Error()}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidation, "invalid field value")
	case errors.Is(err, domain.ErrInvalidRange):
		writeError(w, http.StatusBadRequest, codeInvalidRange, err.Error())
	case errors.Is(err, domain.ErrMalformedPayload):
		writeError(w, http.StatusBadRequest, codeMalformed, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, err.Error())
	case errors.As(err, &dup):
		writeError(w, http.StatusConflict, codeDuplicate, dup.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, codeExists, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, codeConflict, "entity is still referenced")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			slog.String("path", r.URL.Path),
		)
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}

type countResponse struct {
	Count int `json:"count"`
}

type deletedResponse struct {
	Deleted int64 `json:"deleted"`
}

type enumResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
