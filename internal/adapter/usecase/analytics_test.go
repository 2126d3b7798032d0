package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"slotserve/internal/core/domain"
	"slotserve/internal/core/port"
	"slotserve/internal/core/port/mocks"
)

// TestQueryRollupsCTR ensures CTR is clicks/impressions and never divides
// by zero.
func TestQueryRollupsCTR(t *testing.T) {
	store := mocks.NewMockAnalyticsStore(t)

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.EXPECT().
		QueryRollups(mock.Anything, mock.AnythingOfType("port.RollupFilter")).
		Return([]domain.Rollup{
			{Day: day, SlotID: "S1", CampaignID: "C1", Impressions: 1, Clicks: 1},
			{Day: day, SlotID: "S2", CampaignID: "C1", Impressions: 200, Clicks: 5},
			{Day: day, SlotID: "S3", CampaignID: "C2", Impressions: 0, Clicks: 3},
		}, nil)

	svc := NewAnalytics(store)
	rollups, err := svc.QueryRollups(context.Background(), port.RollupFilter{})
	if err != nil {
		t.Fatalf("QueryRollups error: %v", err)
	}
	if rollups[0].CTR != 1.0 {
		t.Fatalf("expected ctr 1.0, got %v", rollups[0].CTR)
	}
	if rollups[1].CTR != 0.025 {
		t.Fatalf("expected ctr 0.025, got %v", rollups[1].CTR)
	}
	if rollups[2].CTR != 0 {
		t.Fatalf("expected ctr 0 with zero impressions, got %v", rollups[2].CTR)
	}
}

// TestDailyStatsSingleDay ensures the convenience query bounds the filter
// to exactly one UTC day.
func TestDailyStatsSingleDay(t *testing.T) {
	store := mocks.NewMockAnalyticsStore(t)

	var got port.RollupFilter
	store.EXPECT().
		QueryRollups(mock.Anything, mock.AnythingOfType("port.RollupFilter")).
		Run(func(ctx context.Context, f port.RollupFilter) {
			got = f
		}).
		Return([]domain.Rollup{
			{Day: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), SlotID: "S1", CampaignID: "C1", Impressions: 1, Clicks: 1},
		}, nil)

	svc := NewAnalytics(store)
	// an offset timestamp inside the day still queries that whole day
	rollups, err := svc.DailyStats(context.Background(), time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("DailyStats error: %v", err)
	}

	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if got.From == nil || !got.From.Equal(want) || got.To == nil || !got.To.Equal(want) {
		t.Fatalf("expected single-day bounds %v, got from=%v to=%v", want, got.From, got.To)
	}
	if len(rollups) != 1 || rollups[0].Impressions != 1 || rollups[0].Clicks != 1 || rollups[0].CTR != 1.0 {
		t.Fatalf("unexpected rollup: %+v", rollups)
	}
}
