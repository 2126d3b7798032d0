package usecase

import (
	"context"
	"time"

	"slotserve/internal/core/domain"
	"slotserve/internal/core/port"
	"slotserve/internal/metrics"
)

// Recorder captures impressions and clicks as immutable facts.
type Recorder struct {
	store port.RecorderStore
}

// NewRecorder creates a recorder usecase over the given store.
func NewRecorder(store port.RecorderStore) *Recorder {
	return &Recorder{store: store}
}

// RecordEvent validates and persists one interaction. The slot must exist,
// active or not; an unknown slot returns ErrNotFound. The campaign
// reference is deliberately not checked so an event racing a campaign
// deletion is still recorded. A zero occurred-at is filled with the server
// clock; a caller-supplied timestamp is never overwritten, so replays keep
// their original time.
func (u *Recorder) RecordEvent(ctx context.Context, ev domain.AdEvent) (domain.AdEvent, error) {
	if ev.SlotID == "" {
		return domain.AdEvent{}, port.Invalid("slot_id", "required")
	}
	if !ev.Kind.Valid() {
		return domain.AdEvent{}, port.Invalid("kind", `must be "impression" or "click"`)
	}
	if _, err := u.store.GetSlot(ctx, ev.SlotID); err != nil {
		return domain.AdEvent{}, err
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	stored, err := u.store.CreateEvent(ctx, ev)
	if err != nil {
		return domain.AdEvent{}, err
	}
	metrics.EventsRecorded.WithLabelValues(string(ev.Kind)).Inc()
	return stored, nil
}
