package usecase

import (
	"context"
	"time"

	"slotserve/internal/core/domain"
	"slotserve/internal/core/port"
)

// Analytics answers performance queries as read-time aggregations over the
// event log, so results are always consistent with the stored facts.
type Analytics struct {
	store port.AnalyticsStore
}

// NewAnalytics creates an analytics usecase over the given store.
func NewAnalytics(store port.AnalyticsStore) *Analytics {
	return &Analytics{store: store}
}

// QueryRollups returns daily (slot, campaign) rollups matching the filter,
// most recent day first, with CTR derived from the counts.
func (u *Analytics) QueryRollups(ctx context.Context, f port.RollupFilter) ([]domain.Rollup, error) {
	rollups, err := u.store.QueryRollups(ctx, f)
	if err != nil {
		return nil, err
	}
	for i := range rollups {
		rollups[i].CTR = ctr(rollups[i].Clicks, rollups[i].Impressions)
	}
	return rollups, nil
}

// DailyStats returns the rollups of a single UTC day.
func (u *Analytics) DailyStats(ctx context.Context, day time.Time) ([]domain.Rollup, error) {
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return u.QueryRollups(ctx, port.RollupFilter{From: &d, To: &d})
}

// ctr is clicks over impressions, or 0 when there are no impressions.
func ctr(clicks, impressions int64) float64 {
	if impressions <= 0 {
		return 0
	}
	return float64(clicks) / float64(impressions)
}
