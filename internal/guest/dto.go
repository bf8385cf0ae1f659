package guest

import (
	"time"

	"github.com/lromero/guestdesk/internal/host"
)

// CreateGuestRequest represents the request to create a new guest.
// InvitedBy accepts free text; it is normalized to canonical host
// references on the way in, and unresolvable entries are dropped.
type CreateGuestRequest struct {
	Name      string   `json:"name" validate:"required,min=1,max=150"`
	Phone     *string  `json:"phone,omitempty"`
	GroupID   *int64   `json:"guest_group_id,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	InvitedBy []string `json:"invited_by,omitempty"`
}

// UpdateGuestRequest represents an admin edit of a guest
type UpdateGuestRequest struct {
	Name      *string             `json:"name,omitempty" validate:"omitempty,min=1,max=150"`
	Phone     *string             `json:"phone,omitempty"`
	GroupID   *int64              `json:"guest_group_id,omitempty"`
	Tags      []string            `json:"tags,omitempty"`
	InvitedBy []string            `json:"invited_by,omitempty"`
	Status    *ConfirmationStatus `json:"confirmation_status,omitempty"`
	Travel    *TravelInfo         `json:"travel,omitempty"`
}

// BulkSelection identifies the guests a bulk operation applies to: either
// an explicit id list, or the server-side selection of an admin session
// (which is cleared when the operation succeeds).
type BulkSelection struct {
	GuestIDs  []int64 `json:"guest_ids,omitempty"`
	SessionID string  `json:"session_id,omitempty"`
}

// BulkStatusRequest updates the status of all selected guests
type BulkStatusRequest struct {
	BulkSelection
	Status ConfirmationStatus `json:"status" validate:"required"`
}

// BulkGroupRequest moves all selected guests into a group. Exactly one of
// GroupID and NewGroupName must be set; a new group is created at most once
// per call, never once per guest.
type BulkGroupRequest struct {
	BulkSelection
	GroupID      *int64  `json:"group_id,omitempty"`
	NewGroupName *string `json:"new_group_name,omitempty"`
}

// BulkHostRequest sets the host attribution of all selected guests.
// InvitedBy is free text and goes through the resolver.
type BulkHostRequest struct {
	BulkSelection
	InvitedBy []string `json:"invited_by"`
}

// BulkTagsRequest replaces the tags of all selected guests
type BulkTagsRequest struct {
	BulkSelection
	Tags []string `json:"tags"`
}

// BulkTravelRequest sets the travel sub-record of all selected guests.
// The result is flagged admin-entered.
type BulkTravelRequest struct {
	BulkSelection
	Travel TravelInfo `json:"travel"`
}

// BulkDeleteRequest removes all selected guests
type BulkDeleteRequest struct {
	BulkSelection
}

// GuestResponse represents the response for a guest
type GuestResponse struct {
	ID               int64              `json:"id"`
	GroupID          *int64             `json:"guest_group_id"`
	Name             string             `json:"name"`
	Phone            *string            `json:"phone,omitempty"`
	Tags             []string           `json:"tags"`
	Status           ConfirmationStatus `json:"confirmation_status"`
	InvitedBy        []host.Ref         `json:"invited_by"`
	InvitationSent   bool               `json:"invitation_sent"`
	InvitationSentAt *string            `json:"invitation_sent_at,omitempty"`
	Travel           TravelInfo         `json:"travel"`
	ShowsAsTraveling bool               `json:"shows_as_traveling"`
	RespondedAt      *string            `json:"responded_at,omitempty"`
	CreatedAt        string             `json:"created_at"`
}

// ToResponse converts a Guest model to a GuestResponse DTO
func (g *Guest) ToResponse() *GuestResponse {
	return &GuestResponse{
		ID:               g.ID,
		GroupID:          g.GroupID,
		Name:             g.Name,
		Phone:            g.Phone,
		Tags:             g.Tags,
		Status:           g.Status,
		InvitedBy:        g.InvitedBy,
		InvitationSent:   g.InvitationSent,
		InvitationSentAt: formatTime(g.InvitationSentAt),
		Travel:           g.Travel,
		ShowsAsTraveling: g.ShowsAsTraveling(),
		RespondedAt:      formatTime(g.RespondedAt),
		CreatedAt:        g.CreatedAt.Format(time.RFC3339),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
