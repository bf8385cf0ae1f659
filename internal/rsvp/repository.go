package rsvp

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository applies an accepted RSVP submission. The guest updates and
// the group stamp happen in one transaction: a failure anywhere leaves
// every row untouched.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new rsvp repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Apply writes the answers and stamps the group's rsvp_submitted_at.
// Answers must already have passed the validation gate.
func (r *Repository) Apply(ctx context.Context, weddingID, groupID int64, answers []GuestAnswer, message *string) (time.Time, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	guestQuery := `
		UPDATE guests
		SET confirmation_status = $4,
		    responded_at = NOW(),
		    is_traveling = $5,
		    traveling_from = $6,
		    travel_arrangement = $7,
		    ticket_attachment_url = $8,
		    no_ticket_reason = $9,
		    admin_set_travel = FALSE
		WHERE wedding_id = $1 AND guest_group_id = $2 AND id = $3
	`

	for _, a := range answers {
		result, err := tx.ExecContext(ctx, guestQuery,
			weddingID, groupID, a.GuestID, string(answerStatus(a)),
			a.IsTraveling, a.TravelingFrom, string(a.TravelArrangement),
			a.TicketAttachmentURL, a.NoTicketReason,
		)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to apply answer for guest %d: %w", a.GuestID, err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return time.Time{}, sql.ErrNoRows
		}
	}

	var submittedAt time.Time
	err = tx.QueryRowContext(ctx, `
		UPDATE guest_groups
		SET message = COALESCE($3, message),
		    rsvp_submitted_at = NOW()
		WHERE wedding_id = $1 AND id = $2
		RETURNING rsvp_submitted_at
	`, weddingID, groupID, message).Scan(&submittedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return time.Time{}, sql.ErrNoRows
		}
		return time.Time{}, fmt.Errorf("failed to stamp group submission: %w", err)
	}

	return submittedAt, tx.Commit()
}
