package domain

import "time"

// Assignment binds one Campaign to one Slot with a priority. Many
// assignments may exist for the same slot; the resolver picks the single
// winner at serve time. Superseded assignments are usually deactivated
// rather than deleted so history is preserved.
type Assignment struct {
	ID         string    `json:"id"`
	SlotID     string    `json:"slot_id"`
	CampaignID string    `json:"campaign_id"`
	AssignedBy string    `json:"assigned_by,omitempty"`
	Priority   int       `json:"priority"`
	IsActive   bool      `json:"is_active"`
	AssignedAt time.Time `json:"assigned_at"`
}

// AssignmentPatch carries a partial update. Nil fields are left unchanged.
type AssignmentPatch struct {
	Priority *int  `json:"priority"`
	IsActive *bool `json:"is_active"`
}
