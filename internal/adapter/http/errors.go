package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"fundscope/internal/core/domain"
	"fundscope/internal/core/port"
)

// errBadRequest marks malformed input detected by the handlers.
var errBadRequest = errors.New("bad request")

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps use case, engine and chain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, port.ErrInvalidTier):
		return http.StatusBadRequest
	case errors.Is(err, port.ErrForbidden), errors.Is(err, port.ErrUnknownAccount):
		return http.StatusForbidden
	case errors.Is(err, port.ErrCampaignNotFound):
		return http.StatusNotFound
	case errors.Is(err, port.ErrCampaignClosed):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidGoal), errors.Is(err, domain.ErrInvalidSnapshot):
		return http.StatusUnprocessableEntity
	case errors.Is(err, port.ErrChainUnavailable), errors.Is(err, port.ErrTxReverted):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs server side failures and writes err as a JSON body.
// Internal errors are not exposed to the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Any("error", err),
		)
		if status == http.StatusInternalServerError {
			msg = "internal error"
		}
	}
	h.writeJSON(w, status, errorResponse{Error: msg})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
