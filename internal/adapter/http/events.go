package httpadapter

import (
	"net/http"

	"slotserve/internal/core/domain"
)

// handleRecordEvent records one impression or click. Client metadata the
// payload does not carry is taken from the request itself; a
// caller-supplied occurred-at survives untouched so replayed events keep
// their original time.
func (h *Handler) handleRecordEvent(w http.ResponseWriter, r *http.Request) {
	var ev domain.AdEvent
	if err := decodeJSON(r, &ev); err != nil {
		h.writeError(w, err)
		return
	}
	if ev.IP == "" {
		ev.IP = clientIP(r)
	}
	if ev.UserAgent == "" {
		ev.UserAgent = r.UserAgent()
	}
	stored, err := h.events.RecordEvent(r.Context(), ev)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, stored)
}
