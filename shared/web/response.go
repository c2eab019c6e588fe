package web

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hqvuong/microshop/shared/logs"
)

const ReqCancelledMsg = "request cancelled"

// ErrorResponse is the failure body every service returns. The message is
// client-facing; operational detail stays in the logs.
type ErrorResponse struct {
	Message string `json:"message"`
}

func RespondWithJSON(w http.ResponseWriter, logger logs.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload != nil {
		if err := newEncoder(w).Encode(payload); err != nil {
			if logger != nil {
				logger.Error("failed to encode response", "error", err)
			}
			http.Error(w, "failed to encode response", http.StatusInternalServerError)
		}
	}
}

func RespondWithError(w http.ResponseWriter, logger logs.Logger, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := newEncoder(w).Encode(ErrorResponse{Message: message}); err != nil {
		if logger != nil {
			logger.Error("failed to encode error response", "error", err)
		}
		http.Error(w, "failed to encode error response", http.StatusInternalServerError)
	}
}

// newEncoder returns an encoder that writes characters like ">" as-is. The
// bodies are API payloads, never embedded in HTML, and clients match message
// strings literally.
func newEncoder(w http.ResponseWriter) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}

// CheckContext reports whether the request context is still live. Handlers
// bail out early instead of doing work for a caller that already went away.
func CheckContext(ctx context.Context, logger logs.Logger) bool {
	if ctx.Err() != nil {
		if logger != nil {
			logger.Error(ReqCancelledMsg, "error", ctx.Err())
		}
		return false
	}
	return true
}
