package domain

import (
	"encoding/json"
	"time"
)

// ProviderType enumerates the supported ad network kinds.
type ProviderType string

const (
	ProviderAdsense      ProviderType = "adsense"
	ProviderMedianet     ProviderType = "medianet"
	ProviderPropellerAds ProviderType = "propellerads"
	ProviderDirect       ProviderType = "direct"
)

// Valid reports whether t is one of the known provider types.
func (t ProviderType) Valid() bool {
	switch t {
	case ProviderAdsense, ProviderMedianet, ProviderPropellerAds, ProviderDirect:
		return true
	}
	return false
}

// Provider represents an ad network integration. Credentials are an opaque
// blob owned by the operator; the engine never interprets them.
type Provider struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        ProviderType    `json:"type"`
	IsActive    bool            `json:"is_active"`
	Credentials string          `json:"credentials,omitempty"`
	Settings    json.RawMessage `json:"settings,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ProviderPatch carries a partial update. Nil fields are left unchanged.
type ProviderPatch struct {
	Name        *string          `json:"name"`
	Type        *ProviderType    `json:"type"`
	IsActive    *bool            `json:"is_active"`
	Credentials *string          `json:"credentials"`
	Settings    *json.RawMessage `json:"settings"`
}
