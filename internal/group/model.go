package group

import (
	"time"

	"github.com/lromero/guestdesk/internal/host"
)

// DeletePolicy decides what happens to member guests when a group is
// deleted. A group is never removed without the caller choosing one.
type DeletePolicy string

const (
	// DeletePolicyGuests removes the member guests together with the group
	DeletePolicyGuests DeletePolicy = "delete_guests"
	// DeletePolicyUngroup keeps the guests and clears their group id,
	// leaving them in the flagged "ungrouped" state
	DeletePolicyUngroup DeletePolicy = "ungroup_guests"
)

// IsValid reports whether p is a known delete policy
func (p DeletePolicy) IsValid() bool {
	return p == DeletePolicyGuests || p == DeletePolicyUngroup
}

// Group represents a cluster of guests sharing an invitation and a single
// RSVP submission. Name is nullable: an unnamed group is a valid, flagged
// state distinct from a guest having no group at all.
type Group struct {
	ID               int64      `json:"id"`
	WeddingID        int64      `json:"wedding_id"`
	Name             *string    `json:"name"`
	Notes            *string    `json:"notes,omitempty"`
	InvitationSent   bool       `json:"invitation_sent"`
	InvitationSentAt *time.Time `json:"invitation_sent_at,omitempty"`

	// Guest-submitted RSVP note and when the group's RSVP came in
	Message         *string    `json:"message,omitempty"`
	RSVPSubmittedAt *time.Time `json:"rsvp_submitted_at,omitempty"`

	// Invitation page view telemetry
	OpenCount     int        `json:"open_count"`
	FirstOpenedAt *time.Time `json:"first_opened_at,omitempty"`

	// Group-level overrides, unioned with member values in aggregate views
	Tags      []string   `json:"tags"`
	InvitedBy []host.Ref `json:"invited_by"`

	CreatedAt time.Time `json:"created_at"`
}

// DisplayName returns the group name or a placeholder for unnamed groups
func (g *Group) DisplayName() string {
	if g.Name == nil || *g.Name == "" {
		return "(unnamed group)"
	}
	return *g.Name
}

// Opened reports whether the invitation page was viewed at least once
func (g *Group) Opened() bool {
	return g.OpenCount > 0
}
