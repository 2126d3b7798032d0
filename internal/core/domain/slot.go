package domain

import "time"

// Slot is a named ad placement position on a specific page. Several slots
// may share the same (position, page) pair; identity is by ID only.
type Slot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Page      string    `json:"page"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// SlotPatch carries a partial update. Nil fields are left unchanged.
type SlotPatch struct {
	Name     *string `json:"name"`
	Position *string `json:"position"`
	Page     *string `json:"page"`
	IsActive *bool   `json:"is_active"`
}
