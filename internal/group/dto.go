package group

import (
	"time"

	"github.com/lromero/guestdesk/internal/host"
)

// CreateGroupRequest represents the request to create a new group.
// InvitedBy is free text and gets normalized against the wedding's host
// names before it is stored.
type CreateGroupRequest struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,max=150"`
	Notes     *string  `json:"notes,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	InvitedBy []string `json:"invited_by,omitempty"`
}

// UpdateGroupRequest represents the request to update a group
type UpdateGroupRequest struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,max=150"`
	Notes     *string  `json:"notes,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	InvitedBy []string `json:"invited_by,omitempty"`
}

// MarkInvitationSentRequest marks invitations for a group as sent
type MarkInvitationSentRequest struct {
	Sent bool `json:"sent"`
}

// DeleteGroupRequest carries the member policy for a group deletion
type DeleteGroupRequest struct {
	Policy DeletePolicy `json:"policy" validate:"required"`
}

// GroupResponse represents the response for a group
type GroupResponse struct {
	ID               int64      `json:"id"`
	Name             *string    `json:"name"`
	Notes            *string    `json:"notes,omitempty"`
	InvitationSent   bool       `json:"invitation_sent"`
	InvitationSentAt *string    `json:"invitation_sent_at,omitempty"`
	Message          *string    `json:"message,omitempty"`
	RSVPSubmittedAt  *string    `json:"rsvp_submitted_at,omitempty"`
	OpenCount        int        `json:"open_count"`
	FirstOpenedAt    *string    `json:"first_opened_at,omitempty"`
	Tags             []string   `json:"tags"`
	InvitedBy        []host.Ref `json:"invited_by"`
	CreatedAt        string     `json:"created_at"`
}

// ToResponse converts a Group model to a GroupResponse DTO
func (g *Group) ToResponse() *GroupResponse {
	return &GroupResponse{
		ID:               g.ID,
		Name:             g.Name,
		Notes:            g.Notes,
		InvitationSent:   g.InvitationSent,
		InvitationSentAt: formatTime(g.InvitationSentAt),
		Message:          g.Message,
		RSVPSubmittedAt:  formatTime(g.RSVPSubmittedAt),
		OpenCount:        g.OpenCount,
		FirstOpenedAt:    formatTime(g.FirstOpenedAt),
		Tags:             g.Tags,
		InvitedBy:        g.InvitedBy,
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
