package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"slotserve/internal/core/domain"
)

const providerCols = `id, name, type, is_active, credentials, settings, created_at`

func scanProvider(row pgx.CollectableRow) (domain.Provider, error) {
	var p domain.Provider
	err := row.Scan(&p.ID, &p.Name, &p.Type, &p.IsActive, &p.Credentials, &p.Settings, &p.CreatedAt)
	return p, err
}

// CreateProvider inserts a provider with a generated identifier and
// creation timestamp.
func (s *Store) CreateProvider(ctx context.Context, p domain.Provider) (domain.Provider, error) {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	if p.Settings == nil {
		p.Settings = json.RawMessage(`{}`)
	}
	_, err := s.pool.Exec(ctx, `INSERT INTO providers (id, name, type, is_active, credentials, settings, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.Name, p.Type, p.IsActive, p.Credentials, p.Settings, p.CreatedAt)
	return p, wrap("create provider", err)
}

// GetProvider returns a provider by id.
func (s *Store) GetProvider(ctx context.Context, id string) (domain.Provider, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+providerCols+` FROM providers WHERE id = $1`, id)
	if err != nil {
		return domain.Provider{}, wrap("get provider", err)
	}
	p, err := pgx.CollectOneRow(rows, scanProvider)
	return p, wrap("get provider", err)
}

// UpdateProvider merges the patch into the stored row. The row is locked
// for the duration of the merge so concurrent patches never interleave.
func (s *Store) UpdateProvider(ctx context.Context, id string, patch domain.ProviderPatch) (domain.Provider, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return domain.Provider{}, wrap("update provider", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var p domain.Provider
	err = tx.QueryRow(ctx, `SELECT `+providerCols+` FROM providers WHERE id = $1 FOR UPDATE`, id).
		Scan(&p.ID, &p.Name, &p.Type, &p.IsActive, &p.Credentials, &p.Settings, &p.CreatedAt)
	if err != nil {
		return domain.Provider{}, wrap("update provider", err)
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	if patch.Credentials != nil {
		p.Credentials = *patch.Credentials
	}
	if patch.Settings != nil {
		p.Settings = *patch.Settings
	}
	_, err = tx.Exec(ctx, `UPDATE providers SET name = $2, type = $3, is_active = $4, credentials = $5, settings = $6 WHERE id = $1`,
		p.ID, p.Name, p.Type, p.IsActive, p.Credentials, p.Settings)
	if err != nil {
		return domain.Provider{}, wrap("update provider", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return domain.Provider{}, wrap("update provider", err)
	}
	return p, nil
}

// DeleteProvider removes the row. Deleting an absent provider returns
// false, not an error. Campaigns referencing the provider are left in
// place; the resolver treats the dangling reference as absent at read time.
func (s *Store) DeleteProvider(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM providers WHERE id = $1`, id)
	if err != nil {
		return false, wrap("delete provider", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListProviders returns all providers in creation order.
func (s *Store) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+providerCols+` FROM providers ORDER BY created_at, id`)
	if err != nil {
		return nil, wrap("list providers", err)
	}
	out, err := pgx.CollectRows(rows, scanProvider)
	return out, wrap("list providers", err)
}
