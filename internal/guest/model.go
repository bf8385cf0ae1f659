package guest

import (
	"time"

	"github.com/lromero/guestdesk/internal/host"
)

// ConfirmationStatus represents a guest's RSVP state
type ConfirmationStatus string

const (
	StatusPending   ConfirmationStatus = "pending"
	StatusConfirmed ConfirmationStatus = "confirmed"
	StatusDeclined  ConfirmationStatus = "declined"
)

// IsValid reports whether s is a known confirmation status
func (s ConfirmationStatus) IsValid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusDeclined
}

// TravelArrangement is how a traveling guest gets to the venue. The empty
// value means the guest has not chosen yet, which is allowed.
type TravelArrangement string

const (
	ArrangementNone     TravelArrangement = ""
	ArrangementWillBuy  TravelArrangement = "will_buy_ticket"
	ArrangementNoTicket TravelArrangement = "no_ticket_needed"
)

// IsValid reports whether a is a known arrangement (including unset)
func (a TravelArrangement) IsValid() bool {
	return a == ArrangementNone || a == ArrangementWillBuy || a == ArrangementNoTicket
}

// TravelInfo is the travel sub-record of a guest. AdminSet distinguishes
// data entered by an admin from data the guest submitted themselves.
type TravelInfo struct {
	IsTraveling         bool              `json:"is_traveling"`
	TravelingFrom       *string           `json:"traveling_from,omitempty"`
	Arrangement         TravelArrangement `json:"travel_arrangement,omitempty"`
	TicketAttachmentURL *string           `json:"ticket_attachment_url,omitempty"`
	NoTicketReason      *string           `json:"no_ticket_reason,omitempty"`
	AdminSet            bool              `json:"admin_set_travel"`
}

// Complete reports whether the chosen arrangement satisfies its required
// supporting field. will_buy_ticket needs an attachment, no_ticket_needed
// needs a reason, no arrangement needs nothing.
func (t TravelInfo) Complete() bool {
	switch t.Arrangement {
	case ArrangementWillBuy:
		return t.TicketAttachmentURL != nil && *t.TicketAttachmentURL != ""
	case ArrangementNoTicket:
		return t.NoTicketReason != nil && *t.NoTicketReason != ""
	default:
		return true
	}
}

// MissingField names the field the arrangement still requires, or "" when
// the sub-record is complete. Used to build guest-specific rejections.
func (t TravelInfo) MissingField() string {
	switch {
	case t.Arrangement == ArrangementWillBuy && (t.TicketAttachmentURL == nil || *t.TicketAttachmentURL == ""):
		return "ticket_attachment_url"
	case t.Arrangement == ArrangementNoTicket && (t.NoTicketReason == nil || *t.NoTicketReason == ""):
		return "no_ticket_reason"
	default:
		return ""
	}
}

// Guest represents a wedding guest. GroupID is nullable only for legacy or
// just-imported records; ungrouped guests are surfaced in a synthetic
// bucket rather than hidden.
type Guest struct {
	ID        int64   `json:"id"`
	WeddingID int64   `json:"wedding_id"`
	GroupID   *int64  `json:"guest_group_id"`
	Name      string  `json:"name"`
	Phone     *string `json:"phone,omitempty"`

	Tags      []string           `json:"tags"`
	Status    ConfirmationStatus `json:"confirmation_status"`
	InvitedBy []host.Ref         `json:"invited_by"`

	InvitationSent   bool       `json:"invitation_sent"`
	InvitationSentAt *time.Time `json:"invitation_sent_at,omitempty"`

	Travel TravelInfo `json:"travel"`

	// RespondedAt is when the guest last confirmed or declined; it feeds
	// the per-day confirmation series.
	RespondedAt *time.Time `json:"responded_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ShowsAsTraveling gates travel iconography: a traveling guest who has not
// confirmed yet is not presented as a travel case.
func (g *Guest) ShowsAsTraveling() bool {
	return g.Travel.IsTraveling && g.Status == StatusConfirmed
}

// HasTag reports whether the guest carries the given tag
func (g *Guest) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// InvitedByHost reports whether the guest is attributed to the given host
func (g *Guest) InvitedByHost(ref host.Ref) bool {
	for _, r := range g.InvitedBy {
		if r == ref {
			return true
		}
	}
	return false
}
