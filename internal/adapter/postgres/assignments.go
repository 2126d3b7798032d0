package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"slotserve/internal/core/domain"
	"slotserve/internal/core/port"
)

const assignmentCols = `id, slot_id, campaign_id, assigned_by, priority, is_active, assigned_at`

func scanAssignment(row pgx.CollectableRow) (domain.Assignment, error) {
	var a domain.Assignment
	err := row.Scan(&a.ID, &a.SlotID, &a.CampaignID, &a.AssignedBy, &a.Priority, &a.IsActive, &a.AssignedAt)
	return a, err
}

// CreateAssignment inserts an assignment with a generated identifier. The
// assigned-at timestamp doubles as the creation timestamp and is the
// resolver's tie-break key, so it is always set here, never by the caller.
func (s *Store) CreateAssignment(ctx context.Context, a domain.Assignment) (domain.Assignment, error) {
	a.ID = uuid.NewString()
	a.AssignedAt = time.Now().UTC()
	_, err := s.pool.Exec(ctx, `INSERT INTO assignments (id, slot_id, campaign_id, assigned_by, priority, is_active, assigned_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, a.SlotID, a.CampaignID, a.AssignedBy, a.Priority, a.IsActive, a.AssignedAt)
	return a, wrap("create assignment", err)
}

// GetAssignment returns an assignment by id.
func (s *Store) GetAssignment(ctx context.Context, id string) (domain.Assignment, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+assignmentCols+` FROM assignments WHERE id = $1`, id)
	if err != nil {
		return domain.Assignment{}, wrap("get assignment", err)
	}
	a, err := pgx.CollectOneRow(rows, scanAssignment)
	return a, wrap("get assignment", err)
}

// UpdateAssignment merges the patch into the stored row under a row lock.
// Only priority and the active flag are patchable; the slot and campaign
// references of an assignment never change after creation.
func (s *Store) UpdateAssignment(ctx context.Context, id string, patch domain.AssignmentPatch) (domain.Assignment, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return domain.Assignment{}, wrap("update assignment", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var a domain.Assignment
	err = tx.QueryRow(ctx, `SELECT `+assignmentCols+` FROM assignments WHERE id = $1 FOR UPDATE`, id).
		Scan(&a.ID, &a.SlotID, &a.CampaignID, &a.AssignedBy, &a.Priority, &a.IsActive, &a.AssignedAt)
	if err != nil {
		return domain.Assignment{}, wrap("update assignment", err)
	}
	if patch.Priority != nil {
		a.Priority = *patch.Priority
	}
	if patch.IsActive != nil {
		a.IsActive = *patch.IsActive
	}
	_, err = tx.Exec(ctx, `UPDATE assignments SET priority = $2, is_active = $3 WHERE id = $1`,
		a.ID, a.Priority, a.IsActive)
	if err != nil {
		return domain.Assignment{}, wrap("update assignment", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return domain.Assignment{}, wrap("update assignment", err)
	}
	return a, nil
}

// DeleteAssignment removes the row.
func (s *Store) DeleteAssignment(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return false, wrap("delete assignment", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListAssignments returns assignments matching the filter in creation
// order.
func (s *Store) ListAssignments(ctx context.Context, f port.AssignmentFilter) ([]domain.Assignment, error) {
	query := `SELECT ` + assignmentCols + ` FROM assignments WHERE true`
	args := []any{}
	if f.SlotID != nil {
		args = append(args, *f.SlotID)
		query += ` AND slot_id = $` + itoa(len(args))
	}
	if f.IsActive != nil {
		args = append(args, *f.IsActive)
		query += ` AND is_active = $` + itoa(len(args))
	}
	query += ` ORDER BY assigned_at, id`
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap("list assignments", err)
	}
	out, err := pgx.CollectRows(rows, scanAssignment)
	return out, wrap("list assignments", err)
}
