package port

import (
	"context"
	"time"

	"slotserve/internal/core/domain"
)

// Resolution is the outcome of resolving a single slot. Campaign is nil
// when no active assignment wins or the winning campaign record is gone.
type Resolution struct {
	Slot     domain.Slot      `json:"slot"`
	Campaign *domain.Campaign `json:"campaign,omitempty"`
}

// PageSlot is one entry of a page-level ad plan. Err carries an isolated
// per-slot resolution failure; the other entries of the plan are still
// valid when it is set.
type PageSlot struct {
	Slot     domain.Slot      `json:"slot"`
	Campaign *domain.Campaign `json:"campaign,omitempty"`
	Err      error            `json:"-"`
}

// ServingUseCase decides which campaign, if any, renders in a placement.
type ServingUseCase interface {
	// ResolveSlot picks the winning campaign for one slot: the active
	// assignment with the highest priority, ties broken by earliest
	// assigned-at. A slot with no active assignments or a dangling winning
	// campaign resolves to a nil Campaign, never an error. Inactive slots
	// still resolve; filtering on activity is a page-listing concern.
	ResolveSlot(ctx context.Context, slotID string) (Resolution, error)

	// ServePage resolves every active slot on a page, in slot creation
	// order. Each slot appears exactly once in the result even when it has
	// no winning campaign; a failing slot is reported in its entry's Err
	// and does not abort its siblings.
	ServePage(ctx context.Context, page string) ([]PageSlot, error)
}

// EventUseCase captures impressions and clicks as immutable facts.
type EventUseCase interface {
	// RecordEvent validates and persists one interaction. The slot must
	// exist (active or not); the campaign reference is deliberately not
	// validated so a racing campaign deletion never drops an event. A
	// missing occurred-at is filled with the server clock; a caller-supplied
	// one is never overwritten.
	RecordEvent(ctx context.Context, ev domain.AdEvent) (domain.AdEvent, error)
}

// AnalyticsUseCase answers performance queries over the event log.
type AnalyticsUseCase interface {
	// QueryRollups returns per-day, per-slot, per-campaign counts for the
	// given filter, most recent day first. CTR is clicks/impressions, or 0
	// when there are no impressions.
	QueryRollups(ctx context.Context, f RollupFilter) ([]domain.Rollup, error)

	// DailyStats returns the rollups of a single day.
	DailyStats(ctx context.Context, day time.Time) ([]domain.Rollup, error)
}

// CatalogUseCase is the operator-facing CRUD surface for providers,
// campaigns, slots and assignments. Authorization is enforced by the
// calling layer, not here.
type CatalogUseCase interface {
	CreateProvider(ctx context.Context, p domain.Provider) (domain.Provider, error)
	GetProvider(ctx context.Context, id string) (domain.Provider, error)
	UpdateProvider(ctx context.Context, id string, patch domain.ProviderPatch) (domain.Provider, error)
	DeleteProvider(ctx context.Context, id string) (bool, error)
	ListProviders(ctx context.Context) ([]domain.Provider, error)

	CreateCampaign(ctx context.Context, c domain.Campaign) (domain.Campaign, error)
	GetCampaign(ctx context.Context, id string) (domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) (bool, error)
	ListCampaigns(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)

	CreateSlot(ctx context.Context, s domain.Slot) (domain.Slot, error)
	GetSlot(ctx context.Context, id string) (domain.Slot, error)
	UpdateSlot(ctx context.Context, id string, patch domain.SlotPatch) (domain.Slot, error)
	DeleteSlot(ctx context.Context, id string) (bool, error)
	ListSlots(ctx context.Context, f SlotFilter) ([]domain.Slot, error)

	CreateAssignment(ctx context.Context, a domain.Assignment) (domain.Assignment, error)
	GetAssignment(ctx context.Context, id string) (domain.Assignment, error)
	UpdateAssignment(ctx context.Context, id string, patch domain.AssignmentPatch) (domain.Assignment, error)
	DeleteAssignment(ctx context.Context, id string) (bool, error)
	ListAssignments(ctx context.Context, f AssignmentFilter) ([]domain.Assignment, error)
}
