package domain

import "time"

// EventKind enumerates the recordable interaction kinds.
type EventKind string

const (
	EventImpression EventKind = "impression"
	EventClick      EventKind = "click"
)

// Valid reports whether k is one of the known event kinds.
func (k EventKind) Valid() bool {
	return k == EventImpression || k == EventClick
}

// AdEvent is an immutable record of an ad being shown or clicked.
// CampaignID may be empty: events are never dropped because the campaign
// was deleted between serve and report. Once stored an event is never
// mutated; retention is an external concern.
type AdEvent struct {
	ID         string    `json:"id"`
	SlotID     string    `json:"slot_id"`
	CampaignID string    `json:"campaign_id,omitempty"`
	Kind       EventKind `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
	IP         string    `json:"ip,omitempty"`
	UserAgent  string    `json:"user_agent,omitempty"`
}
