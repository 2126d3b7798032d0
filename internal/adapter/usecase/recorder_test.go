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

// TestRecordEventValidation covers required-field checks: no store write
// happens for a missing slot id or unknown kind.
func TestRecordEventValidation(t *testing.T) {
	store := mocks.NewMockRecorderStore(t)
	svc := NewRecorder(store)

	var ve *port.ValidationError
	_, err := svc.RecordEvent(context.Background(), domain.AdEvent{Kind: domain.EventClick})
	if !errors.As(err, &ve) || ve.Field != "slot_id" {
		t.Fatalf("expected slot_id validation error, got %v", err)
	}

	_, err = svc.RecordEvent(context.Background(), domain.AdEvent{SlotID: "S1", Kind: "hover"})
	if !errors.As(err, &ve) || ve.Field != "kind" {
		t.Fatalf("expected kind validation error, got %v", err)
	}
}

// TestRecordEventUnknownSlot ensures a nonexistent slot is rejected.
func TestRecordEventUnknownSlot(t *testing.T) {
	store := mocks.NewMockRecorderStore(t)
	store.EXPECT().GetSlot(mock.Anything, "nope").Return(domain.Slot{}, port.ErrNotFound)

	svc := NewRecorder(store)
	_, err := svc.RecordEvent(context.Background(), domain.AdEvent{SlotID: "nope", Kind: domain.EventImpression})
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestRecordEventFillsTimestamp ensures a zero occurred-at is stamped with
// the server clock before the insert. An unknown campaign id is accepted
// as-is: campaign existence is deliberately not checked.
func TestRecordEventFillsTimestamp(t *testing.T) {
	store := mocks.NewMockRecorderStore(t)
	store.EXPECT().GetSlot(mock.Anything, "S1").Return(domain.Slot{ID: "S1", IsActive: false}, nil)

	var inserted domain.AdEvent
	store.EXPECT().
		CreateEvent(mock.Anything, mock.AnythingOfType("domain.AdEvent")).
		Run(func(ctx context.Context, ev domain.AdEvent) {
			inserted = ev
		}).
		Return(domain.AdEvent{ID: "E1"}, nil)

	svc := NewRecorder(store)
	before := time.Now().UTC()
	_, err := svc.RecordEvent(context.Background(), domain.AdEvent{
		SlotID:     "S1",
		CampaignID: "deleted-campaign",
		Kind:       domain.EventImpression,
	})
	if err != nil {
		t.Fatalf("RecordEvent error: %v", err)
	}
	if inserted.OccurredAt.Before(before) {
		t.Fatalf("expected server-observed timestamp, got %v", inserted.OccurredAt)
	}
	if inserted.CampaignID != "deleted-campaign" {
		t.Fatalf("campaign id must pass through unvalidated, got %q", inserted.CampaignID)
	}
}

// TestRecordEventKeepsSuppliedTimestamp ensures replays preserve the
// original event time.
func TestRecordEventKeepsSuppliedTimestamp(t *testing.T) {
	store := mocks.NewMockRecorderStore(t)
	store.EXPECT().GetSlot(mock.Anything, "S1").Return(domain.Slot{ID: "S1"}, nil)

	supplied := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var inserted domain.AdEvent
	store.EXPECT().
		CreateEvent(mock.Anything, mock.AnythingOfType("domain.AdEvent")).
		Run(func(ctx context.Context, ev domain.AdEvent) {
			inserted = ev
		}).
		Return(domain.AdEvent{ID: "E1"}, nil)

	svc := NewRecorder(store)
	_, err := svc.RecordEvent(context.Background(), domain.AdEvent{
		SlotID:     "S1",
		Kind:       domain.EventClick,
		OccurredAt: supplied,
	})
	if err != nil {
		t.Fatalf("RecordEvent error: %v", err)
	}
	if !inserted.OccurredAt.Equal(supplied) {
		t.Fatalf("caller-supplied timestamp was overwritten: %v", inserted.OccurredAt)
	}
}
