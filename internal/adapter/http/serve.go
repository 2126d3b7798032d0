package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"slotserve/internal/core/domain"
)

// pageSlotResponse is the wire form of one page plan entry. A per-slot
// resolution failure becomes an error marker string; the sibling entries
// of the plan are unaffected.
type pageSlotResponse struct {
	Slot     domain.Slot      `json:"slot"`
	Campaign *domain.Campaign `json:"campaign,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// handleResolveSlot resolves a single slot by id. A slot with no winning
// campaign returns the slot with a null campaign; an unknown slot id is 404.
func (h *Handler) handleResolveSlot(w http.ResponseWriter, r *http.Request) {
	res, err := h.serving.ResolveSlot(r.Context(), chi.URLParam(r, "slotID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// handleServePage returns the ad plan for a whole page. Every active slot
// on the page appears exactly once, in creation order, whether or not a
// campaign won it.
func (h *Handler) handleServePage(w http.ResponseWriter, r *http.Request) {
	plan, err := h.serving.ServePage(r.Context(), chi.URLParam(r, "page"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]pageSlotResponse, len(plan))
	for i, entry := range plan {
		out[i] = pageSlotResponse{Slot: entry.Slot, Campaign: entry.Campaign}
		if entry.Err != nil {
			out[i].Error = "resolution failed"
		}
	}
	h.writeJSON(w, http.StatusOK, out)
}
