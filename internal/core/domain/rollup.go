package domain

import "time"

// Rollup is a derived per-day aggregate of recorded events for one
// (slot, campaign) pair. It is computed on read from the event log,
// never stored or authored directly.
type Rollup struct {
	Day         time.Time `json:"day"`
	SlotID      string    `json:"slot_id"`
	CampaignID  string    `json:"campaign_id,omitempty"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	CTR         float64   `json:"ctr"`
}
