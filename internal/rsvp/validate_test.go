package rsvp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lromero/guestdesk/internal/guest"
)

func strPtr(s string) *string { return &s }

func members(gs ...*guest.Guest) map[int64]*guest.Guest {
	m := make(map[int64]*guest.Guest, len(gs))
	for _, g := range gs {
		m[g.ID] = g
	}
	return m
}

func TestValidateAnswers(t *testing.T) {
	bob := &guest.Guest{ID: 2, Name: "Bob"}

	t.Run("will buy ticket without attachment is rejected naming the guest", func(t *testing.T) {
		verr := validateAnswers(members(bob), []GuestAnswer{{
			GuestID:           2,
			Attending:         true,
			IsTraveling:       true,
			TravelArrangement: guest.ArrangementWillBuy,
		}})

		require.NotNil(t, verr)
		assert.Equal(t, int64(2), verr.GuestID)
		assert.Equal(t, "Bob", verr.GuestName)
		assert.Equal(t, "ticket_attachment_url", verr.Field)
	})

	t.Run("adding the attachment makes the same answer pass", func(t *testing.T) {
		verr := validateAnswers(members(bob), []GuestAnswer{{
			GuestID:             2,
			Attending:           true,
			IsTraveling:         true,
			TravelArrangement:   guest.ArrangementWillBuy,
			TicketAttachmentURL: strPtr("https://files/ticket.pdf"),
		}})

		assert.Nil(t, verr)
	})

	t.Run("no ticket needed with empty reason is rejected", func(t *testing.T) {
		verr := validateAnswers(members(bob), []GuestAnswer{{
			GuestID:           2,
			Attending:         true,
			IsTraveling:       true,
			TravelArrangement: guest.ArrangementNoTicket,
			NoTicketReason:    strPtr(""),
		}})

		require.NotNil(t, verr)
		assert.Equal(t, "Bob", verr.GuestName)
		assert.Equal(t, "no_ticket_reason", verr.Field)
	})

	t.Run("no ticket needed with reason passes", func(t *testing.T) {
		verr := validateAnswers(members(bob), []GuestAnswer{{
			GuestID:           2,
			Attending:         true,
			IsTraveling:       true,
			TravelArrangement: guest.ArrangementNoTicket,
			NoTicketReason:    strPtr("driving"),
		}})

		assert.Nil(t, verr)
	})

	t.Run("traveling without an arrangement has no requirement", func(t *testing.T) {
		verr := validateAnswers(members(bob), []GuestAnswer{{
			GuestID:     2,
			Attending:   true,
			IsTraveling: true,
		}})

		assert.Nil(t, verr)
	})

	t.Run("not attending skips the travel gate", func(t *testing.T) {
		verr := validateAnswers(members(bob), []GuestAnswer{{
			GuestID:           2,
			Attending:         false,
			IsTraveling:       true,
			TravelArrangement: guest.ArrangementWillBuy,
		}})

		assert.Nil(t, verr)
	})

	t.Run("not traveling skips the travel gate", func(t *testing.T) {
		verr := validateAnswers(members(bob), []GuestAnswer{{
			GuestID:           2,
			Attending:         true,
			IsTraveling:       false,
			TravelArrangement: guest.ArrangementWillBuy,
		}})

		assert.Nil(t, verr)
	})

	t.Run("answer for a guest outside the group is rejected", func(t *testing.T) {
		verr := validateAnswers(members(bob), []GuestAnswer{{GuestID: 99, Attending: true}})

		require.NotNil(t, verr)
		assert.Equal(t, int64(99), verr.GuestID)
		assert.Equal(t, "guest_id", verr.Field)
	})

	t.Run("unknown arrangement is rejected", func(t *testing.T) {
		verr := validateAnswers(members(bob), []GuestAnswer{{
			GuestID:           2,
			Attending:         true,
			IsTraveling:       true,
			TravelArrangement: guest.TravelArrangement("teleport"),
		}})

		require.NotNil(t, verr)
		assert.Equal(t, "travel_arrangement", verr.Field)
	})

	t.Run("first offending guest is named", func(t *testing.T) {
		anna := &guest.Guest{ID: 1, Name: "Anna"}
		verr := validateAnswers(members(anna, bob), []GuestAnswer{
			{GuestID: 1, Attending: true},
			{
				GuestID:           2,
				Attending:         true,
				IsTraveling:       true,
				TravelArrangement: guest.ArrangementNoTicket,
			},
		})

		require.NotNil(t, verr)
		assert.Equal(t, "Bob", verr.GuestName)
	})
}

func TestAnswerStatus(t *testing.T) {
	assert.Equal(t, guest.StatusConfirmed, answerStatus(GuestAnswer{Attending: true}))
	assert.Equal(t, guest.StatusDeclined, answerStatus(GuestAnswer{Attending: false}))
}
