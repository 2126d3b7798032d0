package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"slotserve/internal/core/port"
)

// decodeJSON decodes the request body into v. A malformed body is reported
// as a ValidationError so it maps to HTTP 400 like any other bad input.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return port.Invalid("body", "malformed JSON")
	}
	return nil
}

// writeJSON writes v with the given status. Encoding failures are logged;
// at that point the status line is already on the wire.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps the engine's error taxonomy to status codes. Validation
// problems are the caller's to fix (400), absence is 404, a store outage
// is retryable (503), anything else is an internal error we log but do not
// leak.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var ve *port.ValidationError
	switch {
	case errors.As(err, &ve):
		http.Error(w, ve.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, port.ErrStoreUnavailable):
		h.logger.Error("store unavailable", slog.Any("error", err))
		http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// clientIP returns the peer address of the request, preferring the first
// X-Forwarded-For hop when a proxy added one.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
