package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"slotserve/internal/core/domain"
	"slotserve/internal/core/port"
)

// QueryRollups aggregates the event log into per-day, per-slot,
// per-campaign counts at read time. Grouping is always by (day, slot,
// campaign); the filter narrows rows, it never changes the grouping key.
// Days are computed in UTC and returned most recent first. CTR is left at
// zero; the aggregator usecase derives it.
func (s *Store) QueryRollups(ctx context.Context, f port.RollupFilter) ([]domain.Rollup, error) {
	query := `SELECT (occurred_at AT TIME ZONE 'UTC')::date AS day,
       slot_id,
       COALESCE(campaign_id, '') AS campaign_id,
       COUNT(*) FILTER (WHERE kind = 'impression') AS impressions,
       COUNT(*) FILTER (WHERE kind = 'click') AS clicks
FROM ad_events
WHERE true`
	args := []any{}
	if f.SlotID != nil {
		args = append(args, *f.SlotID)
		query += ` AND slot_id = $` + itoa(len(args))
	}
	if f.CampaignID != nil {
		args = append(args, *f.CampaignID)
		query += ` AND campaign_id = $` + itoa(len(args))
	}
	if f.From != nil {
		args = append(args, f.From.UTC().Format("2006-01-02"))
		query += ` AND (occurred_at AT TIME ZONE 'UTC')::date >= $` + itoa(len(args)) + `::date`
	}
	if f.To != nil {
		args = append(args, f.To.UTC().Format("2006-01-02"))
		query += ` AND (occurred_at AT TIME ZONE 'UTC')::date <= $` + itoa(len(args)) + `::date`
	}
	query += `
GROUP BY 1, 2, 3
ORDER BY 1 DESC, 2, 3`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap("query rollups", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Rollup, error) {
		var r domain.Rollup
		err := row.Scan(&r.Day, &r.SlotID, &r.CampaignID, &r.Impressions, &r.Clicks)
		return r, err
	})
	return out, wrap("query rollups", err)
}
