package port

import (
	"context"
	"time"

	"slotserve/internal/core/domain"
)

// SlotFilter narrows a slot listing. Nil fields match everything.
type SlotFilter struct {
	Page     *string
	IsActive *bool
}

// CampaignFilter narrows a campaign listing.
type CampaignFilter struct {
	ProviderID *string
	IsActive   *bool
}

// AssignmentFilter narrows an assignment listing.
type AssignmentFilter struct {
	SlotID   *string
	IsActive *bool
}

// RollupFilter narrows an analytics aggregation. From and To bound the
// event day inclusively.
type RollupFilter struct {
	SlotID     *string
	CampaignID *string
	From       *time.Time
	To         *time.Time
}

// ProviderStore persists ad network providers.
type ProviderStore interface {
	CreateProvider(ctx context.Context, p domain.Provider) (domain.Provider, error)
	GetProvider(ctx context.Context, id string) (domain.Provider, error)
	UpdateProvider(ctx context.Context, id string, patch domain.ProviderPatch) (domain.Provider, error)
	DeleteProvider(ctx context.Context, id string) (bool, error)
	ListProviders(ctx context.Context) ([]domain.Provider, error)
}

// CampaignStore persists campaigns.
type CampaignStore interface {
	CreateCampaign(ctx context.Context, c domain.Campaign) (domain.Campaign, error)
	GetCampaign(ctx context.Context, id string) (domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) (bool, error)
	ListCampaigns(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)
}

// SlotStore persists placement slots.
type SlotStore interface {
	CreateSlot(ctx context.Context, s domain.Slot) (domain.Slot, error)
	GetSlot(ctx context.Context, id string) (domain.Slot, error)
	UpdateSlot(ctx context.Context, id string, patch domain.SlotPatch) (domain.Slot, error)
	DeleteSlot(ctx context.Context, id string) (bool, error)
	ListSlots(ctx context.Context, f SlotFilter) ([]domain.Slot, error)
}

// AssignmentStore persists campaign-to-slot assignments.
type AssignmentStore interface {
	CreateAssignment(ctx context.Context, a domain.Assignment) (domain.Assignment, error)
	GetAssignment(ctx context.Context, id string) (domain.Assignment, error)
	UpdateAssignment(ctx context.Context, id string, patch domain.AssignmentPatch) (domain.Assignment, error)
	DeleteAssignment(ctx context.Context, id string) (bool, error)
	ListAssignments(ctx context.Context, f AssignmentFilter) ([]domain.Assignment, error)
}

// EventStore appends immutable view/click facts.
type EventStore interface {
	CreateEvent(ctx context.Context, ev domain.AdEvent) (domain.AdEvent, error)
}

// AnalyticsStore aggregates the event log into daily rollups grouped by
// (day, slot, campaign). Rollups come back most-recent-day first; CTR is
// left zero for the usecase to fill in.
type AnalyticsStore interface {
	QueryRollups(ctx context.Context, f RollupFilter) ([]domain.Rollup, error)
}

// ResolutionStore is the narrow read surface the serving path needs. Any
// Store satisfies it.
type ResolutionStore interface {
	GetSlot(ctx context.Context, id string) (domain.Slot, error)
	ListSlots(ctx context.Context, f SlotFilter) ([]domain.Slot, error)
	ListAssignments(ctx context.Context, f AssignmentFilter) ([]domain.Assignment, error)
	GetCampaign(ctx context.Context, id string) (domain.Campaign, error)
}

// RecorderStore is the narrow surface the event recorder needs.
type RecorderStore interface {
	GetSlot(ctx context.Context, id string) (domain.Slot, error)
	CreateEvent(ctx context.Context, ev domain.AdEvent) (domain.AdEvent, error)
}

// Store is the full outbound persistence port. Implementations must be
// concurrency-safe; list results are ordered by creation time ascending
// and fully materialized. All cross-entity references are plain
// identifiers resolved lazily at each read site.
type Store interface {
	ProviderStore
	CampaignStore
	SlotStore
	AssignmentStore
	EventStore
	AnalyticsStore
}
