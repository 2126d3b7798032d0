package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts a small demo catalog: a couple of providers, campaigns for
// each, slots on a few tool pages, competing assignments per slot, and a
// week of impression/click history. Intended for local development only.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	providerTypes := []string{"adsense", "medianet", "direct"}
	providerIDs := make([]string, 0, len(providerTypes))
	for i, pt := range providerTypes {
		id := uuid.NewString()
		providerIDs = append(providerIDs, id)
		_, err := db.Exec(ctx, `INSERT INTO providers (id, name, type, is_active, credentials, settings, created_at)
VALUES ($1,$2,$3,TRUE,'','{}',now()) ON CONFLICT DO NOTHING`,
			id, fmt.Sprintf("Demo network %d", i+1), pt)
		if err != nil {
			return err
		}
	}

	adTypes := []string{"banner", "native", "popup"}
	campaignIDs := make([]string, 0, len(providerIDs)*3)
	for _, pid := range providerIDs {
		for j := 0; j < 3; j++ {
			id := uuid.NewString()
			campaignIDs = append(campaignIDs, id)
			cpm := int64(100 + r.Intn(400))
			_, err := db.Exec(ctx, `INSERT INTO campaigns (id, provider_id, name, ad_type, markup, dimensions, is_active, click_url, cpm_rate, created_at)
VALUES ($1,$2,$3,$4,$5,$6,TRUE,$7,$8,now()) ON CONFLICT DO NOTHING`,
				id, pid, fmt.Sprintf("Campaign %d", len(campaignIDs)),
				adTypes[r.Intn(len(adTypes))],
				fmt.Sprintf(`<div class="ad">demo creative %d</div>`, len(campaignIDs)),
				"300x250",
				fmt.Sprintf("https://example.com/landing/%d", len(campaignIDs)),
				cpm)
			if err != nil {
				return err
			}
		}
	}

	pages := []string{"home", "pdf-merge", "image-convert", "audio-trim"}
	positions := []string{"top", "sidebar", "footer"}
	slotIDs := make([]string, 0, len(pages)*2)
	for _, page := range pages {
		for j := 0; j < 2; j++ {
			id := uuid.NewString()
			slotIDs = append(slotIDs, id)
			pos := positions[r.Intn(len(positions))]
			_, err := db.Exec(ctx, `INSERT INTO slots (id, name, position, page, is_active, created_at)
VALUES ($1,$2,$3,$4,TRUE,now()) ON CONFLICT DO NOTHING`,
				id, fmt.Sprintf("%s %s", page, pos), pos, page)
			if err != nil {
				return err
			}
		}
	}

	// two competing assignments per slot with distinct priorities
	for _, sid := range slotIDs {
		for j := 0; j < 2; j++ {
			_, err := db.Exec(ctx, `INSERT INTO assignments (id, slot_id, campaign_id, assigned_by, priority, is_active, assigned_at)
VALUES ($1,$2,$3,'seed',$4,TRUE,now()) ON CONFLICT DO NOTHING`,
				uuid.NewString(), sid, campaignIDs[r.Intn(len(campaignIDs))], 10*(j+1))
			if err != nil {
				return err
			}
		}
	}

	// a week of event history, roughly one click per ten impressions
	for day := 0; day < 7; day++ {
		for i := 0; i < 200; i++ {
			sid := slotIDs[r.Intn(len(slotIDs))]
			cid := campaignIDs[r.Intn(len(campaignIDs))]
			occurred := time.Now().UTC().AddDate(0, 0, -day).Add(-time.Duration(r.Intn(86400)) * time.Second)
			kind := "impression"
			if r.Intn(10) == 0 {
				kind = "click"
			}
			_, err := db.Exec(ctx, `INSERT INTO ad_events (id, slot_id, campaign_id, kind, occurred_at, ip, user_agent)
VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT DO NOTHING`,
				uuid.NewString(), sid, cid, kind, occurred,
				fmt.Sprintf("10.0.0.%d", r.Intn(255)), "seed/1.0")
			if err != nil {
				return err
			}
		}
	}
	return nil
}
