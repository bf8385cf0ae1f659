package rsvp

import (
	"fmt"

	"github.com/lromero/guestdesk/internal/guest"
)

// ValidationError names the specific guest and field an RSVP submission is
// missing, so the client can surface it next to that guest's form. It is a
// user-correctable rejection, not a server failure.
type ValidationError struct {
	GuestID   int64  `json:"guest_id"`
	GuestName string `json:"guest_name"`
	Field     string `json:"field"`
	Message   string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("guest %q: %s", e.GuestName, e.Message)
}

// validateAnswers runs the travel-completeness gate over every answer.
// The gate applies to guests attending and traveling: will_buy_ticket
// requires a ticket attachment, no_ticket_needed requires a reason, no
// arrangement requires nothing. It runs on every submission attempt,
// including edits to an already-submitted RSVP.
func validateAnswers(members map[int64]*guest.Guest, answers []GuestAnswer) *ValidationError {
	for _, a := range answers {
		g, ok := members[a.GuestID]
		if !ok {
			return &ValidationError{
				GuestID: a.GuestID,
				Field:   "guest_id",
				Message: "guest is not part of this group",
			}
		}

		if !a.TravelArrangement.IsValid() {
			return &ValidationError{
				GuestID:   a.GuestID,
				GuestName: g.Name,
				Field:     "travel_arrangement",
				Message:   fmt.Sprintf("unknown travel arrangement %q", a.TravelArrangement),
			}
		}

		if !a.Attending || !a.IsTraveling {
			continue
		}

		if field := a.travelInfo().MissingField(); field != "" {
			msg := "a ticket attachment is required when buying a ticket"
			if field == "no_ticket_reason" {
				msg = "a reason is required when no ticket is needed"
			}
			return &ValidationError{
				GuestID:   a.GuestID,
				GuestName: g.Name,
				Field:     field,
				Message:   msg,
			}
		}
	}

	return nil
}

// answerStatus maps an answer's attending flag to the status the guest
// self-service path may set. Pending is not reachable from here.
func answerStatus(a GuestAnswer) guest.ConfirmationStatus {
	if a.Attending {
		return guest.StatusConfirmed
	}
	return guest.StatusDeclined
}
