package guest

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/lromero/guestdesk/internal/host"
)

// Repository handles guest data persistence. Bulk mutations run inside a
// transaction and roll back unless every selected guest was touched, so a
// partially-applied bulk update is never observable.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new guest repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const guestColumns = `
	id, wedding_id, guest_group_id, name, phone, tags, confirmation_status,
	invited_by, invitation_sent, invitation_sent_at,
	is_traveling, traveling_from, travel_arrangement,
	ticket_attachment_url, no_ticket_reason, admin_set_travel,
	responded_at, created_at
`

func scanGuest(row interface{ Scan(...interface{}) error }) (*Guest, error) {
	g := &Guest{}
	var tags pq.StringArray
	var invitedBy pq.StringArray

	// travel_arrangement is NULL until the travel sub-record is first set
	var arrangement sql.NullString

	err := row.Scan(
		&g.ID,
		&g.WeddingID,
		&g.GroupID,
		&g.Name,
		&g.Phone,
		&tags,
		&g.Status,
		&invitedBy,
		&g.InvitationSent,
		&g.InvitationSentAt,
		&g.Travel.IsTraveling,
		&g.Travel.TravelingFrom,
		&arrangement,
		&g.Travel.TicketAttachmentURL,
		&g.Travel.NoTicketReason,
		&g.Travel.AdminSet,
		&g.RespondedAt,
		&g.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	g.Tags = []string(tags)
	g.Travel.Arrangement = TravelArrangement(arrangement.String)
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

// Create inserts a new guest. InvitedBy must already be canonical.
func (r *Repository) Create(ctx context.Context, weddingID int64, req *CreateGuestRequest, invitedBy []host.Ref) (*Guest, error) {
	query := `
		INSERT INTO guests (wedding_id, guest_group_id, name, phone, tags, invited_by, confirmation_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + guestColumns

	g, err := scanGuest(r.db.QueryRowContext(ctx, query,
		weddingID, req.GroupID, req.Name, req.Phone,
		pq.StringArray(req.Tags), refStrings(invitedBy), StatusPending,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}

	return g, nil
}

// GetByID retrieves a guest by its ID within a wedding scope
func (r *Repository) GetByID(ctx context.Context, weddingID, id int64) (*Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE wedding_id = $1 AND id = $2`

	g, err := scanGuest(r.db.QueryRowContext(ctx, query, weddingID, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get guest: %w", err)
	}

	return g, nil
}

// ListByWedding retrieves all guests for a wedding in insertion order.
// Insertion order matters: the view layer's stable sort relies on it for
// secondary ordering.
func (r *Repository) ListByWedding(ctx context.Context, weddingID int64) ([]*Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE wedding_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	defer rows.Close()

	var guests []*Guest
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		guests = append(guests, g)
	}

	return guests, rows.Err()
}

// ListByGroup retrieves all guests in one group
func (r *Repository) ListByGroup(ctx context.Context, weddingID, groupID int64) ([]*Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE wedding_id = $1 AND guest_group_id = $2 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, weddingID, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group guests: %w", err)
	}
	defer rows.Close()

	var guests []*Guest
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		guests = append(guests, g)
	}

	return guests, rows.Err()
}

// Update modifies an existing guest. invitedBy is nil when the request did
// not touch host attribution.
func (r *Repository) Update(ctx context.Context, weddingID, id int64, req *UpdateGuestRequest, invitedBy []host.Ref) (*Guest, error) {
	query := `
		UPDATE guests
		SET name = COALESCE($3, name),
		    phone = COALESCE($4, phone),
		    guest_group_id = COALESCE($5, guest_group_id),
		    tags = COALESCE($6, tags),
		    invited_by = COALESCE($7, invited_by),
		    confirmation_status = COALESCE($8, confirmation_status),
		    responded_at = CASE
		        WHEN $8 IS NOT NULL AND $8 IN ('confirmed', 'declined') THEN NOW()
		        ELSE responded_at
		    END,
		    is_traveling = COALESCE($9, is_traveling),
		    traveling_from = COALESCE($10, traveling_from),
		    travel_arrangement = COALESCE($11, travel_arrangement),
		    ticket_attachment_url = COALESCE($12, ticket_attachment_url),
		    no_ticket_reason = COALESCE($13, no_ticket_reason),
		    admin_set_travel = COALESCE($14, admin_set_travel)
		WHERE wedding_id = $1 AND id = $2
		RETURNING ` + guestColumns

	var tags interface{}
	if req.Tags != nil {
		tags = pq.StringArray(req.Tags)
	}
	var refs interface{}
	if invitedBy != nil {
		refs = refStrings(invitedBy)
	}

	var status interface{}
	if req.Status != nil {
		status = string(*req.Status)
	}

	var isTraveling, travelingFrom, arrangement, ticketURL, noTicketReason, adminSet interface{}
	if req.Travel != nil {
		isTraveling = req.Travel.IsTraveling
		travelingFrom = req.Travel.TravelingFrom
		arrangement = string(req.Travel.Arrangement)
		ticketURL = req.Travel.TicketAttachmentURL
		noTicketReason = req.Travel.NoTicketReason
		adminSet = true
	}

	g, err := scanGuest(r.db.QueryRowContext(ctx, query,
		weddingID, id, req.Name, req.Phone, req.GroupID, tags, refs, status,
		isTraveling, travelingFrom, arrangement, ticketURL, noTicketReason, adminSet,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update guest: %w", err)
	}

	return g, nil
}

// Delete removes a guest
func (r *Repository) Delete(ctx context.Context, weddingID, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM guests WHERE wedding_id = $1 AND id = $2`, weddingID, id)
	if err != nil {
		return fmt.Errorf("failed to delete guest: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// bulkExec runs one statement over a guest id set inside a transaction and
// rolls back unless it touched every id.
func (r *Repository) bulkExec(ctx context.Context, ids []int64, query string, args ...interface{}) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to execute bulk update: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected != int64(len(ids)) {
		return sql.ErrNoRows
	}

	return tx.Commit()
}

// BulkSetStatus sets the confirmation status of every selected guest
func (r *Repository) BulkSetStatus(ctx context.Context, weddingID int64, ids []int64, status ConfirmationStatus) error {
	query := `
		UPDATE guests
		SET confirmation_status = $3,
		    responded_at = CASE WHEN $3 IN ('confirmed', 'declined') THEN NOW() ELSE responded_at END
		WHERE wedding_id = $1 AND id = ANY($2)
	`
	return r.bulkExec(ctx, ids, query, weddingID, pq.Int64Array(ids), string(status))
}

// BulkAssignGroup moves every selected guest into an existing group
func (r *Repository) BulkAssignGroup(ctx context.Context, weddingID int64, ids []int64, groupID int64) error {
	query := `UPDATE guests SET guest_group_id = $3 WHERE wedding_id = $1 AND id = ANY($2)`
	return r.bulkExec(ctx, ids, query, weddingID, pq.Int64Array(ids), groupID)
}

// BulkAssignNewGroup creates one group and moves every selected guest into
// it, in a single transaction. Exactly one group is created per call no
// matter how many guests are selected.
func (r *Repository) BulkAssignNewGroup(ctx context.Context, weddingID int64, ids []int64, name string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var groupID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO guest_groups (wedding_id, name) VALUES ($1, $2) RETURNING id`,
		weddingID, name,
	).Scan(&groupID)
	if err != nil {
		return 0, fmt.Errorf("failed to create group: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE guests SET guest_group_id = $3 WHERE wedding_id = $1 AND id = ANY($2)`,
		weddingID, pq.Int64Array(ids), groupID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to assign guests: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected != int64(len(ids)) {
		return 0, sql.ErrNoRows
	}

	return groupID, tx.Commit()
}

// BulkSetInvitedBy replaces the host attribution of every selected guest
func (r *Repository) BulkSetInvitedBy(ctx context.Context, weddingID int64, ids []int64, refs []host.Ref) error {
	query := `UPDATE guests SET invited_by = $3 WHERE wedding_id = $1 AND id = ANY($2)`
	return r.bulkExec(ctx, ids, query, weddingID, pq.Int64Array(ids), refStrings(refs))
}

// BulkSetTags replaces the tags of every selected guest
func (r *Repository) BulkSetTags(ctx context.Context, weddingID int64, ids []int64, tags []string) error {
	query := `UPDATE guests SET tags = $3 WHERE wedding_id = $1 AND id = ANY($2)`
	return r.bulkExec(ctx, ids, query, weddingID, pq.Int64Array(ids), pq.StringArray(tags))
}

// BulkSetTravel replaces the travel sub-record of every selected guest,
// flagged as admin-entered
func (r *Repository) BulkSetTravel(ctx context.Context, weddingID int64, ids []int64, travel TravelInfo) error {
	query := `
		UPDATE guests
		SET is_traveling = $3,
		    traveling_from = $4,
		    travel_arrangement = $5,
		    ticket_attachment_url = $6,
		    no_ticket_reason = $7,
		    admin_set_travel = TRUE
		WHERE wedding_id = $1 AND id = ANY($2)
	`
	return r.bulkExec(ctx, ids, query, weddingID, pq.Int64Array(ids),
		travel.IsTraveling, travel.TravelingFrom, string(travel.Arrangement),
		travel.TicketAttachmentURL, travel.NoTicketReason,
	)
}

// BulkDelete removes every selected guest
func (r *Repository) BulkDelete(ctx context.Context, weddingID int64, ids []int64) error {
	query := `DELETE FROM guests WHERE wedding_id = $1 AND id = ANY($2)`
	return r.bulkExec(ctx, ids, query, weddingID, pq.Int64Array(ids))
}
