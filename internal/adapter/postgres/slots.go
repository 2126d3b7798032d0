package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"slotserve/internal/core/domain"
	"slotserve/internal/core/port"
)

const slotCols = `id, name, position, page, is_active, created_at`

func scanSlot(row pgx.CollectableRow) (domain.Slot, error) {
	var sl domain.Slot
	err := row.Scan(&sl.ID, &sl.Name, &sl.Position, &sl.Page, &sl.IsActive, &sl.CreatedAt)
	return sl, err
}

// CreateSlot inserts a slot with a generated identifier and creation
// timestamp. (position, page) is not unique; identity is by id only.
func (s *Store) CreateSlot(ctx context.Context, sl domain.Slot) (domain.Slot, error) {
	sl.ID = uuid.NewString()
	sl.CreatedAt = time.Now().UTC()
	_, err := s.pool.Exec(ctx, `INSERT INTO slots (id, name, position, page, is_active, created_at)
VALUES ($1,$2,$3,$4,$5,$6)`,
		sl.ID, sl.Name, sl.Position, sl.Page, sl.IsActive, sl.CreatedAt)
	return sl, wrap("create slot", err)
}

// GetSlot returns a slot by id.
func (s *Store) GetSlot(ctx context.Context, id string) (domain.Slot, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+slotCols+` FROM slots WHERE id = $1`, id)
	if err != nil {
		return domain.Slot{}, wrap("get slot", err)
	}
	sl, err := pgx.CollectOneRow(rows, scanSlot)
	return sl, wrap("get slot", err)
}

// UpdateSlot merges the patch into the stored row under a row lock.
func (s *Store) UpdateSlot(ctx context.Context, id string, patch domain.SlotPatch) (domain.Slot, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return domain.Slot{}, wrap("update slot", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var sl domain.Slot
	err = tx.QueryRow(ctx, `SELECT `+slotCols+` FROM slots WHERE id = $1 FOR UPDATE`, id).
		Scan(&sl.ID, &sl.Name, &sl.Position, &sl.Page, &sl.IsActive, &sl.CreatedAt)
	if err != nil {
		return domain.Slot{}, wrap("update slot", err)
	}
	if patch.Name != nil {
		sl.Name = *patch.Name
	}
	if patch.Position != nil {
		sl.Position = *patch.Position
	}
	if patch.Page != nil {
		sl.Page = *patch.Page
	}
	if patch.IsActive != nil {
		sl.IsActive = *patch.IsActive
	}
	_, err = tx.Exec(ctx, `UPDATE slots SET name = $2, position = $3, page = $4, is_active = $5 WHERE id = $1`,
		sl.ID, sl.Name, sl.Position, sl.Page, sl.IsActive)
	if err != nil {
		return domain.Slot{}, wrap("update slot", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return domain.Slot{}, wrap("update slot", err)
	}
	return sl, nil
}

// DeleteSlot removes the row; assignments for the slot are untouched.
func (s *Store) DeleteSlot(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM slots WHERE id = $1`, id)
	if err != nil {
		return false, wrap("delete slot", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListSlots returns slots matching the filter in creation order. The
// ordering is stable so page plans are reproducible.
func (s *Store) ListSlots(ctx context.Context, f port.SlotFilter) ([]domain.Slot, error) {
	query := `SELECT ` + slotCols + ` FROM slots WHERE true`
	args := []any{}
	if f.Page != nil {
		args = append(args, *f.Page)
		query += ` AND page = $` + itoa(len(args))
	}
	if f.IsActive != nil {
		args = append(args, *f.IsActive)
		query += ` AND is_active = $` + itoa(len(args))
	}
	query += ` ORDER BY created_at, id`
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap("list slots", err)
	}
	out, err := pgx.CollectRows(rows, scanSlot)
	return out, wrap("list slots", err)
}
