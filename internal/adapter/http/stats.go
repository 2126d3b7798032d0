package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"slotserve/internal/core/port"
)

const dateLayout = "2006-01-02"

// handleStats returns daily rollups filtered by the optional `slot_id`,
// `campaign_id`, `from` and `to` (YYYY-MM-DD, inclusive) query parameters.
// Rollups come back most recent day first.
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := port.RollupFilter{
		SlotID:     strParam(q, "slot_id"),
		CampaignID: strParam(q, "campaign_id"),
	}
	if s := q.Get("from"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			h.writeError(w, port.Invalid("from", "expected YYYY-MM-DD"))
			return
		}
		f.From = &t
	}
	if s := q.Get("to"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			h.writeError(w, port.Invalid("to", "expected YYYY-MM-DD"))
			return
		}
		f.To = &t
	}

	rollups, err := h.analytics.QueryRollups(r.Context(), f)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rollups)
}

// handleDailyStats returns the rollups of one day, given as a YYYY-MM-DD
// path segment.
func (h *Handler) handleDailyStats(w http.ResponseWriter, r *http.Request) {
	day, err := time.Parse(dateLayout, chi.URLParam(r, "date"))
	if err != nil {
		h.writeError(w, port.Invalid("date", "expected YYYY-MM-DD"))
		return
	}
	rollups, err := h.analytics.DailyStats(r.Context(), day)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rollups)
}
