package usecase

import (
	"context"
	"errors"

	"slotserve/internal/core/domain"
	"slotserve/internal/core/port"
)

// Catalog is the operator-facing CRUD surface. It validates required
// fields and cross-entity references at creation time, then delegates to
// the store. Referential validity is not enforced transactionally: a
// provider or campaign deleted after the check simply becomes a dangling
// reference handled at read time. Authorization belongs to the API
// boundary, not here.
type Catalog struct {
	store port.Store
}

// NewCatalog creates a catalog usecase over the given store.
func NewCatalog(store port.Store) *Catalog {
	return &Catalog{store: store}
}

func (u *Catalog) CreateProvider(ctx context.Context, p domain.Provider) (domain.Provider, error) {
	if p.Name == "" {
		return domain.Provider{}, port.Invalid("name", "required")
	}
	if !p.Type.Valid() {
		return domain.Provider{}, port.Invalid("type", "unknown provider type")
	}
	return u.store.CreateProvider(ctx, p)
}

func (u *Catalog) GetProvider(ctx context.Context, id string) (domain.Provider, error) {
	return u.store.GetProvider(ctx, id)
}

func (u *Catalog) UpdateProvider(ctx context.Context, id string, patch domain.ProviderPatch) (domain.Provider, error) {
	if patch.Name != nil && *patch.Name == "" {
		return domain.Provider{}, port.Invalid("name", "must not be empty")
	}
	if patch.Type != nil && !patch.Type.Valid() {
		return domain.Provider{}, port.Invalid("type", "unknown provider type")
	}
	return u.store.UpdateProvider(ctx, id, patch)
}

func (u *Catalog) DeleteProvider(ctx context.Context, id string) (bool, error) {
	return u.store.DeleteProvider(ctx, id)
}

func (u *Catalog) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	return u.store.ListProviders(ctx)
}

func (u *Catalog) CreateCampaign(ctx context.Context, c domain.Campaign) (domain.Campaign, error) {
	if c.Name == "" {
		return domain.Campaign{}, port.Invalid("name", "required")
	}
	if !c.AdType.Valid() {
		return domain.Campaign{}, port.Invalid("ad_type", "unknown ad type")
	}
	if c.ProviderID == "" {
		return domain.Campaign{}, port.Invalid("provider_id", "required")
	}
	if _, err := u.store.GetProvider(ctx, c.ProviderID); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return domain.Campaign{}, port.Invalid("provider_id", "unknown provider")
		}
		return domain.Campaign{}, err
	}
	return u.store.CreateCampaign(ctx, c)
}

func (u *Catalog) GetCampaign(ctx context.Context, id string) (domain.Campaign, error) {
	return u.store.GetCampaign(ctx, id)
}

func (u *Catalog) UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (domain.Campaign, error) {
	if patch.Name != nil && *patch.Name == "" {
		return domain.Campaign{}, port.Invalid("name", "must not be empty")
	}
	if patch.AdType != nil && !patch.AdType.Valid() {
		return domain.Campaign{}, port.Invalid("ad_type", "unknown ad type")
	}
	return u.store.UpdateCampaign(ctx, id, patch)
}

func (u *Catalog) DeleteCampaign(ctx context.Context, id string) (bool, error) {
	return u.store.DeleteCampaign(ctx, id)
}

func (u *Catalog) ListCampaigns(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	return u.store.ListCampaigns(ctx, f)
}

func (u *Catalog) CreateSlot(ctx context.Context, s domain.Slot) (domain.Slot, error) {
	if s.Name == "" {
		return domain.Slot{}, port.Invalid("name", "required")
	}
	if s.Position == "" {
		return domain.Slot{}, port.Invalid("position", "required")
	}
	if s.Page == "" {
		return domain.Slot{}, port.Invalid("page", "required")
	}
	return u.store.CreateSlot(ctx, s)
}

func (u *Catalog) GetSlot(ctx context.Context, id string) (domain.Slot, error) {
	return u.store.GetSlot(ctx, id)
}

func (u *Catalog) UpdateSlot(ctx context.Context, id string, patch domain.SlotPatch) (domain.Slot, error) {
	return u.store.UpdateSlot(ctx, id, patch)
}

func (u *Catalog) DeleteSlot(ctx context.Context, id string) (bool, error) {
	return u.store.DeleteSlot(ctx, id)
}

func (u *Catalog) ListSlots(ctx context.Context, f port.SlotFilter) ([]domain.Slot, error) {
	return u.store.ListSlots(ctx, f)
}

func (u *Catalog) CreateAssignment(ctx context.Context, a domain.Assignment) (domain.Assignment, error) {
	if a.SlotID == "" {
		return domain.Assignment{}, port.Invalid("slot_id", "required")
	}
	if a.CampaignID == "" {
		return domain.Assignment{}, port.Invalid("campaign_id", "required")
	}
	if _, err := u.store.GetSlot(ctx, a.SlotID); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return domain.Assignment{}, port.Invalid("slot_id", "unknown slot")
		}
		return domain.Assignment{}, err
	}
	if _, err := u.store.GetCampaign(ctx, a.CampaignID); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return domain.Assignment{}, port.Invalid("campaign_id", "unknown campaign")
		}
		return domain.Assignment{}, err
	}
	return u.store.CreateAssignment(ctx, a)
}

func (u *Catalog) GetAssignment(ctx context.Context, id string) (domain.Assignment, error) {
	return u.store.GetAssignment(ctx, id)
}

func (u *Catalog) UpdateAssignment(ctx context.Context, id string, patch domain.AssignmentPatch) (domain.Assignment, error) {
	return u.store.UpdateAssignment(ctx, id, patch)
}

func (u *Catalog) DeleteAssignment(ctx context.Context, id string) (bool, error) {
	return u.store.DeleteAssignment(ctx, id)
}

func (u *Catalog) ListAssignments(ctx context.Context, f port.AssignmentFilter) ([]domain.Assignment, error) {
	return u.store.ListAssignments(ctx, f)
}
