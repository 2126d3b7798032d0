package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"slotserve/internal/core/domain"
	"slotserve/internal/core/port"
)

const campaignCols = `id, provider_id, name, ad_type, markup, dimensions, is_active, click_url, cpm_rate, created_at`

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.ProviderID, &c.Name, &c.AdType, &c.Markup, &c.Dimensions,
		&c.IsActive, &c.ClickURL, &c.CPMRate, &c.CreatedAt)
	return c, err
}

// CreateCampaign inserts a campaign with a generated identifier and
// creation timestamp.
func (s *Store) CreateCampaign(ctx context.Context, c domain.Campaign) (domain.Campaign, error) {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	_, err := s.pool.Exec(ctx, `INSERT INTO campaigns (id, provider_id, name, ad_type, markup, dimensions, is_active, click_url, cpm_rate, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		c.ID, c.ProviderID, c.Name, c.AdType, c.Markup, c.Dimensions, c.IsActive, c.ClickURL, c.CPMRate, c.CreatedAt)
	return c, wrap("create campaign", err)
}

// GetCampaign returns a campaign by id.
func (s *Store) GetCampaign(ctx context.Context, id string) (domain.Campaign, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+campaignCols+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return domain.Campaign{}, wrap("get campaign", err)
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	return c, wrap("get campaign", err)
}

// UpdateCampaign merges the patch into the stored row under a row lock.
func (s *Store) UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (domain.Campaign, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return domain.Campaign{}, wrap("update campaign", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var c domain.Campaign
	err = tx.QueryRow(ctx, `SELECT `+campaignCols+` FROM campaigns WHERE id = $1 FOR UPDATE`, id).
		Scan(&c.ID, &c.ProviderID, &c.Name, &c.AdType, &c.Markup, &c.Dimensions,
			&c.IsActive, &c.ClickURL, &c.CPMRate, &c.CreatedAt)
	if err != nil {
		return domain.Campaign{}, wrap("update campaign", err)
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.AdType != nil {
		c.AdType = *patch.AdType
	}
	if patch.Markup != nil {
		c.Markup = *patch.Markup
	}
	if patch.Dimensions != nil {
		c.Dimensions = *patch.Dimensions
	}
	if patch.IsActive != nil {
		c.IsActive = *patch.IsActive
	}
	if patch.ClickURL != nil {
		c.ClickURL = *patch.ClickURL
	}
	if patch.CPMRate != nil {
		c.CPMRate = patch.CPMRate
	}
	_, err = tx.Exec(ctx, `UPDATE campaigns SET name = $2, ad_type = $3, markup = $4, dimensions = $5, is_active = $6, click_url = $7, cpm_rate = $8 WHERE id = $1`,
		c.ID, c.Name, c.AdType, c.Markup, c.Dimensions, c.IsActive, c.ClickURL, c.CPMRate)
	if err != nil {
		return domain.Campaign{}, wrap("update campaign", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return domain.Campaign{}, wrap("update campaign", err)
	}
	return c, nil
}

// DeleteCampaign removes the row. Assignments referencing the campaign are
// left dangling; the resolver reports "no ad" for them at serve time.
func (s *Store) DeleteCampaign(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return false, wrap("delete campaign", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListCampaigns returns campaigns matching the filter in creation order.
func (s *Store) ListCampaigns(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignCols + ` FROM campaigns WHERE true`
	args := []any{}
	if f.ProviderID != nil {
		args = append(args, *f.ProviderID)
		query += ` AND provider_id = $` + itoa(len(args))
	}
	if f.IsActive != nil {
		args = append(args, *f.IsActive)
		query += ` AND is_active = $` + itoa(len(args))
	}
	query += ` ORDER BY created_at, id`
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap("list campaigns", err)
	}
	out, err := pgx.CollectRows(rows, scanCampaign)
	return out, wrap("list campaigns", err)
}
