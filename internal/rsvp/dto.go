package rsvp

import "github.com/lromero/guestdesk/internal/guest"

// GuestAnswer is one guest's portion of an RSVP submission. Attending maps
// to the confirmed/declined status; travel fields are only meaningful when
// attending and traveling.
type GuestAnswer struct {
	GuestID             int64                   `json:"guest_id" validate:"required"`
	Attending           bool                    `json:"attending"`
	IsTraveling         bool                    `json:"is_traveling"`
	TravelingFrom       *string                 `json:"traveling_from,omitempty"`
	TravelArrangement   guest.TravelArrangement `json:"travel_arrangement,omitempty"`
	TicketAttachmentURL *string                 `json:"ticket_attachment_url,omitempty"`
	NoTicketReason      *string                 `json:"no_ticket_reason,omitempty"`
}

// travelInfo builds the travel sub-record a submission would store for
// this answer. Guest-submitted travel data is never flagged admin-set.
func (a GuestAnswer) travelInfo() guest.TravelInfo {
	return guest.TravelInfo{
		IsTraveling:         a.IsTraveling,
		TravelingFrom:       a.TravelingFrom,
		Arrangement:         a.TravelArrangement,
		TicketAttachmentURL: a.TicketAttachmentURL,
		NoTicketReason:      a.NoTicketReason,
		AdminSet:            false,
	}
}

// RequestVerificationRequest starts the out-of-band verification flow for
// a group's phone numbers
type RequestVerificationRequest struct {
	GroupID      int64    `json:"group_id" validate:"required"`
	PhoneNumbers []string `json:"phone_numbers" validate:"required,min=1"`
}

// VerificationResponse returns the single-use token the submission must
// carry
type VerificationResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// SubmitRequest is the RSVP submission boundary payload
type SubmitRequest struct {
	GroupID           int64         `json:"group_id" validate:"required"`
	VerificationToken string        `json:"verification_token" validate:"required"`
	Guests            []GuestAnswer `json:"guests" validate:"required,min=1"`
	Message           *string       `json:"message,omitempty"`
}

// SubmitResponse reports a successful submission
type SubmitResponse struct {
	GroupID         int64  `json:"group_id"`
	GuestsUpdated   int    `json:"guests_updated"`
	RSVPSubmittedAt string `json:"rsvp_submitted_at"`
}
