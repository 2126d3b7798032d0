package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"slotserve/internal/core/domain"
	"slotserve/internal/core/port"
	"slotserve/internal/core/port/mocks"
)

func ptr[T any](v T) *T { return &v }

func activeAssignments(slotID string) port.AssignmentFilter {
	return port.AssignmentFilter{SlotID: ptr(slotID), IsActive: ptr(true)}
}

// TestResolveHighestPriorityWins covers the core decision rule: among the
// active assignments of a slot the one with the numerically highest
// priority supplies the campaign, and deactivating it promotes the runner-up.
func TestResolveHighestPriorityWins(t *testing.T) {
	store := mocks.NewMockResolutionStore(t)

	t1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	slot := domain.Slot{ID: "S1", Name: "home top", Position: "top", Page: "home", IsActive: true}
	a := domain.Assignment{ID: "A", SlotID: "S1", CampaignID: "C1", Priority: 5, IsActive: true, AssignedAt: t1}
	b := domain.Assignment{ID: "B", SlotID: "S1", CampaignID: "C2", Priority: 8, IsActive: true, AssignedAt: t2}

	store.EXPECT().GetSlot(mock.Anything, "S1").Return(slot, nil)
	store.EXPECT().
		ListAssignments(mock.Anything, activeAssignments("S1")).
		Return([]domain.Assignment{a, b}, nil).
		Once()
	store.EXPECT().GetCampaign(mock.Anything, "C2").Return(domain.Campaign{ID: "C2"}, nil).Once()

	svc := NewServing(store)

	res, err := svc.ResolveSlot(context.Background(), "S1")
	if err != nil {
		t.Fatalf("ResolveSlot error: %v", err)
	}
	if res.Campaign == nil || res.Campaign.ID != "C2" {
		t.Fatalf("expected campaign C2, got %+v", res.Campaign)
	}

	// B deactivated: only A remains active, C1 must win now.
	store.EXPECT().
		ListAssignments(mock.Anything, activeAssignments("S1")).
		Return([]domain.Assignment{a}, nil).
		Once()
	store.EXPECT().GetCampaign(mock.Anything, "C1").Return(domain.Campaign{ID: "C1"}, nil).Once()

	res, err = svc.ResolveSlot(context.Background(), "S1")
	if err != nil {
		t.Fatalf("ResolveSlot error: %v", err)
	}
	if res.Campaign == nil || res.Campaign.ID != "C1" {
		t.Fatalf("expected campaign C1 after deactivation, got %+v", res.Campaign)
	}
}

// TestResolveTieBreak ensures equal priorities are broken by earliest
// assigned-at and that the choice is stable across repeated calls.
func TestResolveTieBreak(t *testing.T) {
	store := mocks.NewMockResolutionStore(t)

	t1 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	slot := domain.Slot{ID: "S1", Page: "home", IsActive: true}
	early := domain.Assignment{ID: "A", SlotID: "S1", CampaignID: "C-early", Priority: 3, IsActive: true, AssignedAt: t1}
	late := domain.Assignment{ID: "B", SlotID: "S1", CampaignID: "C-late", Priority: 3, IsActive: true, AssignedAt: t1.Add(time.Minute)}

	store.EXPECT().GetSlot(mock.Anything, "S1").Return(slot, nil).Times(3)
	// storage order deliberately puts the later assignment first
	store.EXPECT().
		ListAssignments(mock.Anything, activeAssignments("S1")).
		Return([]domain.Assignment{late, early}, nil).
		Times(3)
	store.EXPECT().GetCampaign(mock.Anything, "C-early").Return(domain.Campaign{ID: "C-early"}, nil).Times(3)

	svc := NewServing(store)
	for i := 0; i < 3; i++ {
		res, err := svc.ResolveSlot(context.Background(), "S1")
		if err != nil {
			t.Fatalf("ResolveSlot error: %v", err)
		}
		if res.Campaign == nil || res.Campaign.ID != "C-early" {
			t.Fatalf("call %d: expected earliest-assigned winner, got %+v", i, res.Campaign)
		}
	}
}

// TestResolveNoActiveAssignments ensures an empty candidate set is "no ad",
// not an error.
func TestResolveNoActiveAssignments(t *testing.T) {
	store := mocks.NewMockResolutionStore(t)

	store.EXPECT().GetSlot(mock.Anything, "S1").Return(domain.Slot{ID: "S1"}, nil)
	store.EXPECT().
		ListAssignments(mock.Anything, activeAssignments("S1")).
		Return([]domain.Assignment{}, nil)

	svc := NewServing(store)
	res, err := svc.ResolveSlot(context.Background(), "S1")
	if err != nil {
		t.Fatalf("ResolveSlot error: %v", err)
	}
	if res.Campaign != nil {
		t.Fatalf("expected no campaign, got %+v", res.Campaign)
	}
	if res.Slot.ID != "S1" {
		t.Fatalf("expected slot in result, got %+v", res.Slot)
	}
}

// TestResolveDanglingCampaign ensures a winning assignment whose campaign
// was deleted resolves to "no ad" instead of an error.
func TestResolveDanglingCampaign(t *testing.T) {
	store := mocks.NewMockResolutionStore(t)

	a := domain.Assignment{ID: "A", SlotID: "S1", CampaignID: "gone", Priority: 1, IsActive: true}
	store.EXPECT().GetSlot(mock.Anything, "S1").Return(domain.Slot{ID: "S1"}, nil)
	store.EXPECT().
		ListAssignments(mock.Anything, activeAssignments("S1")).
		Return([]domain.Assignment{a}, nil)
	store.EXPECT().GetCampaign(mock.Anything, "gone").Return(domain.Campaign{}, port.ErrNotFound)

	svc := NewServing(store)
	res, err := svc.ResolveSlot(context.Background(), "S1")
	if err != nil {
		t.Fatalf("ResolveSlot error: %v", err)
	}
	if res.Campaign != nil {
		t.Fatalf("expected no campaign for dangling assignment, got %+v", res.Campaign)
	}
}

// TestResolveUnknownSlot ensures an absent slot surfaces ErrNotFound.
func TestResolveUnknownSlot(t *testing.T) {
	store := mocks.NewMockResolutionStore(t)

	store.EXPECT().GetSlot(mock.Anything, "missing").Return(domain.Slot{}, port.ErrNotFound)

	svc := NewServing(store)
	_, err := svc.ResolveSlot(context.Background(), "missing")
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestServePage ensures the page plan has one entry per active slot in
// listing order, keeps empty slots, and isolates per-slot failures.
func TestServePage(t *testing.T) {
	store := mocks.NewMockResolutionStore(t)

	page := "home"
	slots := []domain.Slot{
		{ID: "S1", Page: page, IsActive: true},
		{ID: "S2", Page: page, IsActive: true},
		{ID: "S3", Page: page, IsActive: true},
	}
	store.EXPECT().
		ListSlots(mock.Anything, port.SlotFilter{Page: ptr(page), IsActive: ptr(true)}).
		Return(slots, nil)

	filled := domain.Assignment{ID: "A1", SlotID: "S1", CampaignID: "C1", Priority: 1, IsActive: true}
	store.EXPECT().
		ListAssignments(mock.Anything, activeAssignments("S1")).
		Return([]domain.Assignment{filled}, nil)
	store.EXPECT().GetCampaign(mock.Anything, "C1").Return(domain.Campaign{ID: "C1"}, nil)

	storeDown := errors.New("connection refused")
	store.EXPECT().
		ListAssignments(mock.Anything, activeAssignments("S2")).
		Return(nil, storeDown)

	store.EXPECT().
		ListAssignments(mock.Anything, activeAssignments("S3")).
		Return([]domain.Assignment{}, nil)

	svc := NewServing(store)
	plan, err := svc.ServePage(context.Background(), page)
	if err != nil {
		t.Fatalf("ServePage error: %v", err)
	}
	if len(plan) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(plan))
	}
	for i, want := range []string{"S1", "S2", "S3"} {
		if plan[i].Slot.ID != want {
			t.Fatalf("entry %d: expected slot %s, got %s", i, want, plan[i].Slot.ID)
		}
	}
	if plan[0].Campaign == nil || plan[0].Campaign.ID != "C1" {
		t.Fatalf("entry 0: expected campaign C1, got %+v", plan[0].Campaign)
	}
	if !errors.Is(plan[1].Err, storeDown) {
		t.Fatalf("entry 1: expected isolated store error, got %v", plan[1].Err)
	}
	if plan[2].Campaign != nil || plan[2].Err != nil {
		t.Fatalf("entry 2: expected empty slot, got %+v", plan[2])
	}
}
