package guest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestTravelInfoComplete(t *testing.T) {
	tests := []struct {
		name   string
		travel TravelInfo
		want   bool
		field  string
	}{
		{
			name:   "will buy ticket without attachment",
			travel: TravelInfo{IsTraveling: true, Arrangement: ArrangementWillBuy},
			want:   false,
			field:  "ticket_attachment_url",
		},
		{
			name:   "will buy ticket with empty attachment",
			travel: TravelInfo{IsTraveling: true, Arrangement: ArrangementWillBuy, TicketAttachmentURL: strPtr("")},
			want:   false,
			field:  "ticket_attachment_url",
		},
		{
			name:   "will buy ticket with attachment",
			travel: TravelInfo{IsTraveling: true, Arrangement: ArrangementWillBuy, TicketAttachmentURL: strPtr("https://files/ticket.pdf")},
			want:   true,
		},
		{
			name:   "no ticket needed without reason",
			travel: TravelInfo{IsTraveling: true, Arrangement: ArrangementNoTicket},
			want:   false,
			field:  "no_ticket_reason",
		},
		{
			name:   "no ticket needed with reason",
			travel: TravelInfo{IsTraveling: true, Arrangement: ArrangementNoTicket, NoTicketReason: strPtr("driving")},
			want:   true,
		},
		{
			name:   "no arrangement chosen yet",
			travel: TravelInfo{IsTraveling: true},
			want:   true,
		},
		{
			name:   "not traveling at all",
			travel: TravelInfo{},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.travel.Complete())
			assert.Equal(t, tt.field, tt.travel.MissingField())
		})
	}
}

func TestShowsAsTraveling(t *testing.T) {
	t.Run("traveling and confirmed", func(t *testing.T) {
		g := &Guest{Status: StatusConfirmed, Travel: TravelInfo{IsTraveling: true}}
		assert.True(t, g.ShowsAsTraveling())
	})

	t.Run("traveling but still pending", func(t *testing.T) {
		g := &Guest{Status: StatusPending, Travel: TravelInfo{IsTraveling: true}}
		assert.False(t, g.ShowsAsTraveling())
	})

	t.Run("confirmed but not traveling", func(t *testing.T) {
		g := &Guest{Status: StatusConfirmed}
		assert.False(t, g.ShowsAsTraveling())
	})
}
