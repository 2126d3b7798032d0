package usecase

import (
	"context"
	"errors"
	"testing"

	"slotserve/internal/core/domain"
	"slotserve/internal/core/port"
)

// TestCatalogCreateValidation covers the required-field checks that reject
// a request before any store access.
func TestCatalogCreateValidation(t *testing.T) {
	svc := NewCatalog(nil) // store is never reached on these paths

	cases := []struct {
		name  string
		field string
		call  func() error
	}{
		{"provider without name", "name", func() error {
			_, err := svc.CreateProvider(context.Background(), domain.Provider{Type: domain.ProviderAdsense})
			return err
		}},
		{"provider with unknown type", "type", func() error {
			_, err := svc.CreateProvider(context.Background(), domain.Provider{Name: "acme", Type: "dfp"})
			return err
		}},
		{"campaign without name", "name", func() error {
			_, err := svc.CreateCampaign(context.Background(), domain.Campaign{AdType: domain.AdBanner, ProviderID: "p"})
			return err
		}},
		{"campaign with unknown ad type", "ad_type", func() error {
			_, err := svc.CreateCampaign(context.Background(), domain.Campaign{Name: "c", AdType: "interstitial"})
			return err
		}},
		{"campaign without provider", "provider_id", func() error {
			_, err := svc.CreateCampaign(context.Background(), domain.Campaign{Name: "c", AdType: domain.AdBanner})
			return err
		}},
		{"slot without page", "page", func() error {
			_, err := svc.CreateSlot(context.Background(), domain.Slot{Name: "s", Position: "top"})
			return err
		}},
		{"assignment without campaign", "campaign_id", func() error {
			_, err := svc.CreateAssignment(context.Background(), domain.Assignment{SlotID: "s"})
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			var ve *port.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, ve.Field)
			}
		})
	}
}
