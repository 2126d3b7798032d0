package httpadapter

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"slotserve/internal/core/domain"
	"slotserve/internal/core/port"
)

func strParam(q url.Values, key string) *string {
	s := q.Get(key)
	if s == "" {
		return nil
	}
	return &s
}

func boolParam(q url.Values, key string) (*bool, error) {
	s := q.Get(key)
	if s == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, port.Invalid(key, "must be true or false")
	}
	return &b, nil
}

func (h *Handler) handleProviderCreate(w http.ResponseWriter, r *http.Request) {
	var p domain.Provider
	if err := decodeJSON(r, &p); err != nil {
		h.writeError(w, err)
		return
	}
	created, err := h.catalog.CreateProvider(r.Context(), p)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleProviderList(w http.ResponseWriter, r *http.Request) {
	providers, err := h.catalog.ListProviders(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, providers)
}

func (h *Handler) handleProviderGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.GetProvider(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleProviderUpdate(w http.ResponseWriter, r *http.Request) {
	var patch domain.ProviderPatch
	if err := decodeJSON(r, &patch); err != nil {
		h.writeError(w, err)
		return
	}
	updated, err := h.catalog.UpdateProvider(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleProviderDelete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.catalog.DeleteProvider(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

func (h *Handler) handleCampaignCreate(w http.ResponseWriter, r *http.Request) {
	var c domain.Campaign
	if err := decodeJSON(r, &c); err != nil {
		h.writeError(w, err)
		return
	}
	created, err := h.catalog.CreateCampaign(r.Context(), c)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleCampaignList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	active, err := boolParam(q, "active")
	if err != nil {
		h.writeError(w, err)
		return
	}
	campaigns, err := h.catalog.ListCampaigns(r.Context(), port.CampaignFilter{
		ProviderID: strParam(q, "provider_id"),
		IsActive:   active,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

func (h *Handler) handleCampaignGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.catalog.GetCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleCampaignUpdate(w http.ResponseWriter, r *http.Request) {
	var patch domain.CampaignPatch
	if err := decodeJSON(r, &patch); err != nil {
		h.writeError(w, err)
		return
	}
	updated, err := h.catalog.UpdateCampaign(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleCampaignDelete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.catalog.DeleteCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

func (h *Handler) handleSlotCreate(w http.ResponseWriter, r *http.Request) {
	var s domain.Slot
	if err := decodeJSON(r, &s); err != nil {
		h.writeError(w, err)
		return
	}
	created, err := h.catalog.CreateSlot(r.Context(), s)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleSlotList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	active, err := boolParam(q, "active")
	if err != nil {
		h.writeError(w, err)
		return
	}
	slots, err := h.catalog.ListSlots(r.Context(), port.SlotFilter{
		Page:     strParam(q, "page"),
		IsActive: active,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, slots)
}

func (h *Handler) handleSlotGet(w http.ResponseWriter, r *http.Request) {
	s, err := h.catalog.GetSlot(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, s)
}

func (h *Handler) handleSlotUpdate(w http.ResponseWriter, r *http.Request) {
	var patch domain.SlotPatch
	if err := decodeJSON(r, &patch); err != nil {
		h.writeError(w, err)
		return
	}
	updated, err := h.catalog.UpdateSlot(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleSlotDelete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.catalog.DeleteSlot(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

func (h *Handler) handleAssignmentCreate(w http.ResponseWriter, r *http.Request) {
	var a domain.Assignment
	if err := decodeJSON(r, &a); err != nil {
		h.writeError(w, err)
		return
	}
	created, err := h.catalog.CreateAssignment(r.Context(), a)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleAssignmentList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	active, err := boolParam(q, "active")
	if err != nil {
		h.writeError(w, err)
		return
	}
	assignments, err := h.catalog.ListAssignments(r.Context(), port.AssignmentFilter{
		SlotID:   strParam(q, "slot_id"),
		IsActive: active,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, assignments)
}

func (h *Handler) handleAssignmentGet(w http.ResponseWriter, r *http.Request) {
	a, err := h.catalog.GetAssignment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, a)
}

func (h *Handler) handleAssignmentUpdate(w http.ResponseWriter, r *http.Request) {
	var patch domain.AssignmentPatch
	if err := decodeJSON(r, &patch); err != nil {
		h.writeError(w, err)
		return
	}
	updated, err := h.catalog.UpdateAssignment(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleAssignmentDelete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.catalog.DeleteAssignment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}
