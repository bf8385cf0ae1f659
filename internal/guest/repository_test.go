package guest

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lromero/guestdesk/internal/host"
)

// fakeRow feeds scanGuest column values the way database/sql does,
// including its refusal to put NULL into a plain string destination.
type fakeRow struct {
	vals []interface{}
}

func (r *fakeRow) Scan(dest ...interface{}) error {
	if len(dest) != len(r.vals) {
		return fmt.Errorf("expected %d destinations, got %d", len(r.vals), len(dest))
	}
	for i, d := range dest {
		v := r.vals[i]
		if v == nil {
			switch d := d.(type) {
			case **int64:
				*d = nil
			case **string:
				*d = nil
			case **time.Time:
				*d = nil
			case *sql.NullString:
				*d = sql.NullString{}
			default:
				return fmt.Errorf("sql: Scan error on column index %d: converting NULL to %T is unsupported", i, d)
			}
			continue
		}
		switch d := d.(type) {
		case *int64:
			*d = v.(int64)
		case **int64:
			x := v.(int64)
			*d = &x
		case *string:
			*d = v.(string)
		case **string:
			x := v.(string)
			*d = &x
		case *bool:
			*d = v.(bool)
		case *time.Time:
			*d = v.(time.Time)
		case **time.Time:
			x := v.(time.Time)
			*d = &x
		case *pq.StringArray:
			*d = pq.StringArray(v.([]string))
		case *ConfirmationStatus:
			*d = ConfirmationStatus(v.(string))
		case *sql.NullString:
			*d = sql.NullString{String: v.(string), Valid: true}
		default:
			return fmt.Errorf("unsupported destination %T at column index %d", d, i)
		}
	}
	return nil
}

func TestScanGuest(t *testing.T) {
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	t.Run("freshly created guest with no travel record", func(t *testing.T) {
		row := &fakeRow{vals: []interface{}{
			int64(1),           // id
			int64(1),           // wedding_id
			nil,                // guest_group_id
			"Anna",             // name
			nil,                // phone
			[]string{},         // tags
			"pending",          // confirmation_status
			[]string{"host_a"}, // invited_by
			false,              // invitation_sent
			nil,                // invitation_sent_at
			false,              // is_traveling
			nil,                // traveling_from
			nil,                // travel_arrangement
			nil,                // ticket_attachment_url
			nil,                // no_ticket_reason
			false,              // admin_set_travel
			nil,                // responded_at
			created,            // created_at
		}}

		g, err := scanGuest(row)
		require.NoError(t, err)
		assert.Equal(t, int64(1), g.ID)
		assert.Equal(t, "Anna", g.Name)
		assert.Nil(t, g.GroupID)
		assert.Equal(t, StatusPending, g.Status)
		assert.Equal(t, []host.Ref{host.RefA}, g.InvitedBy)
		assert.Equal(t, ArrangementNone, g.Travel.Arrangement)
		assert.False(t, g.Travel.IsTraveling)
	})

	t.Run("guest with a full travel record", func(t *testing.T) {
		responded := created.Add(48 * time.Hour)
		row := &fakeRow{vals: []interface{}{
			int64(2),
			int64(1),
			int64(5),
			"Bruno",
			"+5491155550000",
			[]string{"familia"},
			"confirmed",
			[]string{"host_a", "host_b"},
			true,
			created,
			true,
			"Cordoba",
			"will_buy_ticket",
			"https://files.example.com/ticket.pdf",
			nil,
			false,
			responded,
			created,
		}}

		g, err := scanGuest(row)
		require.NoError(t, err)
		require.NotNil(t, g.GroupID)
		assert.Equal(t, int64(5), *g.GroupID)
		assert.Equal(t, StatusConfirmed, g.Status)
		assert.True(t, g.Travel.IsTraveling)
		assert.Equal(t, ArrangementWillBuy, g.Travel.Arrangement)
		require.NotNil(t, g.Travel.TicketAttachmentURL)
		assert.Equal(t, "https://files.example.com/ticket.pdf", *g.Travel.TicketAttachmentURL)
		require.NotNil(t, g.RespondedAt)
		assert.Equal(t, responded, *g.RespondedAt)
	})
}
