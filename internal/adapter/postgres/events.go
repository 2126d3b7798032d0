package postgres

import (
	"context"

	"github.com/google/uuid"

	"slotserve/internal/core/domain"
)

// CreateEvent appends one immutable view/click fact. The caller-supplied
// occurred-at is preserved as-is; an empty campaign id is stored as NULL.
// Events are append-only and never coordinate with each other, so plain
// inserts are safe to run concurrently.
func (s *Store) CreateEvent(ctx context.Context, ev domain.AdEvent) (domain.AdEvent, error) {
	ev.ID = uuid.NewString()
	_, err := s.pool.Exec(ctx, `INSERT INTO ad_events (id, slot_id, campaign_id, kind, occurred_at, ip, user_agent)
VALUES ($1,$2,NULLIF($3,''),$4,$5,$6,$7)`,
		ev.ID, ev.SlotID, ev.CampaignID, ev.Kind, ev.OccurredAt, ev.IP, ev.UserAgent)
	return ev, wrap("create event", err)
}
