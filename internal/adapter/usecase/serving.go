package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"

	"slotserve/internal/core/domain"
	"slotserve/internal/core/port"
	"slotserve/internal/metrics"
)

// Serving implements the slot resolution and page planning logic. The
// winner is recomputed from the assignment table on every call; it is a
// pure function of stored state with no cached derived winner to
// invalidate.
type Serving struct {
	store port.ResolutionStore
}

// NewServing creates a serving usecase over the given store.
func NewServing(store port.ResolutionStore) *Serving {
	return &Serving{store: store}
}

// ResolveSlot picks the winning campaign for one slot. An unknown slot id
// returns ErrNotFound. A slot with no active assignments, or whose winning
// assignment points at a deleted campaign, resolves with a nil Campaign.
// Inactive slots resolve like active ones: activity is filtered when
// listing a page, not here.
func (u *Serving) ResolveSlot(ctx context.Context, slotID string) (port.Resolution, error) {
	sl, err := u.store.GetSlot(ctx, slotID)
	if err != nil {
		return port.Resolution{}, err
	}
	camp, err := u.winner(ctx, slotID)
	if err != nil {
		return port.Resolution{}, err
	}
	metrics.SlotsServed.WithLabelValues(outcome(camp, nil)).Inc()
	return port.Resolution{Slot: sl, Campaign: camp}, nil
}

// winner orders the slot's active assignments by priority descending with
// ties broken by earliest assigned-at, then fetches the top candidate's
// campaign. The sort is stable so repeated calls over unchanged data pick
// the same winner. A dangling campaign reference on the top candidate
// yields no ad; it does not fall through to the next candidate.
func (u *Serving) winner(ctx context.Context, slotID string) (*domain.Campaign, error) {
	active := true
	cands, err := u.store.ListAssignments(ctx, port.AssignmentFilter{SlotID: &slotID, IsActive: &active})
	if err != nil {
		return nil, err
	}
	if len(cands) == 0 {
		return nil, nil
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Priority != cands[j].Priority {
			return cands[i].Priority > cands[j].Priority
		}
		return cands[i].AssignedAt.Before(cands[j].AssignedAt)
	})
	camp, err := u.store.GetCampaign(ctx, cands[0].CampaignID)
	if errors.Is(err, port.ErrNotFound) {
		// dangling assignment must never break page rendering
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &camp, nil
}

// ServePage produces the ad plan for a whole page: every active slot on
// the page, in creation order, each resolved independently. Resolutions
// are independent reads and run concurrently. A failing slot is reported
// in its own entry and does not abort its siblings; slots without a
// winning campaign stay in the plan with a nil Campaign.
func (u *Serving) ServePage(ctx context.Context, page string) ([]port.PageSlot, error) {
	active := true
	slots, err := u.store.ListSlots(ctx, port.SlotFilter{Page: &page, IsActive: &active})
	if err != nil {
		return nil, err
	}
	plan := make([]port.PageSlot, len(slots))
	var wg sync.WaitGroup
	for i, sl := range slots {
		wg.Add(1)
		go func(i int, sl domain.Slot) {
			defer wg.Done()
			camp, err := u.winner(ctx, sl.ID)
			plan[i] = port.PageSlot{Slot: sl, Campaign: camp, Err: err}
		}(i, sl)
	}
	wg.Wait()
	for i := range plan {
		metrics.SlotsServed.WithLabelValues(outcome(plan[i].Campaign, plan[i].Err)).Inc()
	}
	return plan, nil
}

func outcome(camp *domain.Campaign, err error) string {
	switch {
	case err != nil:
		return "error"
	case camp != nil:
		return "filled"
	default:
		return "empty"
	}
}
