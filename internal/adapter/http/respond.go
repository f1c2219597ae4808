package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"leadlaunch/internal/core/domain"
)

// errorBody is the machine-readable error envelope. Code is stable for
// programmatic callers; MetaError carries the raw upstream payload when one
// exists and Step localizes launch failures to one pipeline stage.
type errorBody struct {
	Code      domain.ErrorCode `json:"code"`
	Message   string           `json:"message"`
	Step      string           `json:"step,omitempty"`
	MetaError any              `json:"meta_error,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func statusFor(code domain.ErrorCode) int {
	switch code {
	case domain.CodeValidation, domain.CodeMissingToken:
		return http.StatusBadRequest
	case domain.CodeTokenExpired:
		return http.StatusUnauthorized
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeLaunchInProgress:
		return http.StatusConflict
	case domain.CodeMetaAPI, domain.CodeUpstream, domain.CodeParse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps a usecase failure onto the HTTP error envelope. Anything
// that is not an APIError is an unanticipated internal failure.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		h.logger.Error("unhandled error", slog.Any("error", err))
		apiErr = &domain.APIError{Code: domain.CodeInternal, Message: "internal error"}
	}
	h.writeJSON(w, statusFor(apiErr.Code), errorEnvelope{Error: errorBody{
		Code:      apiErr.Code,
		Message:   apiErr.Message,
		Step:      apiErr.Step,
		MetaError: apiErr.MetaError,
	}})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
