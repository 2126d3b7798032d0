package domain

import "time"

// AdType enumerates the creative formats a campaign can carry.
type AdType string

const (
	AdBanner AdType = "banner"
	AdVideo  AdType = "video"
	AdNative AdType = "native"
	AdPopup  AdType = "popup"
)

// Valid reports whether t is one of the known ad types.
func (t AdType) Valid() bool {
	switch t {
	case AdBanner, AdVideo, AdNative, AdPopup:
		return true
	}
	return false
}

// Campaign is one piece of creative content belonging to a Provider.
// CPMRate is stored in integer units (e.g. cents per thousand impressions)
// and is nil when no rate was agreed.
type Campaign struct {
	ID         string    `json:"id"`
	ProviderID string    `json:"provider_id"`
	Name       string    `json:"name"`
	AdType     AdType    `json:"ad_type"`
	Markup     string    `json:"markup"`
	Dimensions string    `json:"dimensions,omitempty"`
	IsActive   bool      `json:"is_active"`
	ClickURL   string    `json:"click_url,omitempty"`
	CPMRate    *int64    `json:"cpm_rate,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CampaignPatch carries a partial update. Nil fields are left unchanged.
type CampaignPatch struct {
	Name       *string `json:"name"`
	AdType     *AdType `json:"ad_type"`
	Markup     *string `json:"markup"`
	Dimensions *string `json:"dimensions"`
	IsActive   *bool   `json:"is_active"`
	ClickURL   *string `json:"click_url"`
	CPMRate    *int64  `json:"cpm_rate"`
}
