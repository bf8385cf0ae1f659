package group

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/lromero/guestdesk/internal/host"
)

// Repository handles group data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new group repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const groupColumns = `
	id, wedding_id, name, notes, invitation_sent, invitation_sent_at,
	message, rsvp_submitted_at, open_count, first_opened_at,
	tags, invited_by, created_at
`

func scanGroup(row interface{ Scan(...interface{}) error }) (*Group, error) {
	g := &Group{}
	var tags pq.StringArray
	var invitedBy pq.StringArray

	err := row.Scan(
		&g.ID,
		&g.WeddingID,
		&g.Name,
		&g.Notes,
		&g.InvitationSent,
		&g.InvitationSentAt,
		&g.Message,
		&g.RSVPSubmittedAt,
		&g.OpenCount,
		&g.FirstOpenedAt,
		&tags,
		&invitedBy,
		&g.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	g.Tags = []string(tags)
	g.InvitedBy = make([]host.Ref, len(invitedBy))
	for i, v := range invitedBy {
		g.InvitedBy[i] = host.Ref(v)
	}
	return g, nil
}

func refStrings(refs []host.Ref) pq.StringArray {
	out := make(pq.StringArray, len(refs))
	for i, r := range refs {
		out[i] = string(r)
	}
	return out
}

// Create inserts a new group. invitedBy must already be canonical refs.
func (r *Repository) Create(ctx context.Context, weddingID int64, req *CreateGroupRequest, invitedBy []host.Ref) (*Group, error) {
	query := `
		INSERT INTO guest_groups (wedding_id, name, notes, tags, invited_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + groupColumns

	g, err := scanGroup(r.db.QueryRowContext(ctx, query,
		weddingID, req.Name, req.Notes,
		pq.StringArray(req.Tags), refStrings(invitedBy),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return g, nil
}

// GetByID retrieves a group by its ID within a wedding scope
func (r *Repository) GetByID(ctx context.Context, weddingID, id int64) (*Group, error) {
	query := `SELECT ` + groupColumns + ` FROM guest_groups WHERE wedding_id = $1 AND id = $2`

	g, err := scanGroup(r.db.QueryRowContext(ctx, query, weddingID, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return g, nil
}

// ListByWedding retrieves all groups for a wedding
func (r *Repository) ListByWedding(ctx context.Context, weddingID int64) ([]*Group, error) {
	query := `SELECT ` + groupColumns + ` FROM guest_groups WHERE wedding_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}

	return groups, rows.Err()
}

// Update modifies an existing group. A nil invitedBy leaves the stored
// attribution untouched; a non-nil slice must be canonical refs.
func (r *Repository) Update(ctx context.Context, weddingID, id int64, req *UpdateGroupRequest, invitedBy []host.Ref) (*Group, error) {
	query := `
		UPDATE guest_groups
		SET name = COALESCE($3, name),
		    notes = COALESCE($4, notes),
		    tags = COALESCE($5, tags),
		    invited_by = COALESCE($6, invited_by)
		WHERE wedding_id = $1 AND id = $2
		RETURNING ` + groupColumns

	var tags interface{}
	if req.Tags != nil {
		tags = pq.StringArray(req.Tags)
	}
	var refs interface{}
	if invitedBy != nil {
		refs = refStrings(invitedBy)
	}

	g, err := scanGroup(r.db.QueryRowContext(ctx, query, weddingID, id, req.Name, req.Notes, tags, refs))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	return g, nil
}

// SetInvitationSent flags a group's invitation as sent or unsent
func (r *Repository) SetInvitationSent(ctx context.Context, weddingID, id int64, sent bool) (*Group, error) {
	query := `
		UPDATE guest_groups
		SET invitation_sent = $3,
		    invitation_sent_at = CASE WHEN $3 THEN NOW() ELSE NULL END
		WHERE wedding_id = $1 AND id = $2
		RETURNING ` + groupColumns

	g, err := scanGroup(r.db.QueryRowContext(ctx, query, weddingID, id, sent))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to set invitation sent: %w", err)
	}

	return g, nil
}

// RecordOpen increments the invitation page view counter and sets the
// first-open timestamp exactly once
func (r *Repository) RecordOpen(ctx context.Context, weddingID, id int64) (*Group, error) {
	query := `
		UPDATE guest_groups
		SET open_count = open_count + 1,
		    first_opened_at = COALESCE(first_opened_at, NOW())
		WHERE wedding_id = $1 AND id = $2
		RETURNING ` + groupColumns

	g, err := scanGroup(r.db.QueryRowContext(ctx, query, weddingID, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to record open: %w", err)
	}

	return g, nil
}

// Delete removes a group, applying the member policy in the same
// transaction so guests are never silently orphaned
func (r *Repository) Delete(ctx context.Context, weddingID, id int64, policy DeletePolicy) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	switch policy {
	case DeletePolicyGuests:
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM guests WHERE wedding_id = $1 AND guest_group_id = $2`, weddingID, id); err != nil {
			return fmt.Errorf("failed to delete member guests: %w", err)
		}
	case DeletePolicyUngroup:
		if _, err := tx.ExecContext(ctx,
			`UPDATE guests SET guest_group_id = NULL WHERE wedding_id = $1 AND guest_group_id = $2`, weddingID, id); err != nil {
			return fmt.Errorf("failed to ungroup member guests: %w", err)
		}
	default:
		return fmt.Errorf("unknown delete policy: %s", policy)
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM guest_groups WHERE wedding_id = $1 AND id = $2`, weddingID, id)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}
