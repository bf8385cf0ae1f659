package wedding

import (
	"time"

	"github.com/lromero/guestdesk/internal/host"
)

// Wedding represents one wedding tenant: the pair of hosts whose guest list
// is managed, plus presentation basics the invitation page needs.
type Wedding struct {
	ID        int64      `json:"id"`
	Slug      string     `json:"slug"`
	HostAName string     `json:"host_a_name"`
	HostBName string     `json:"host_b_name"`
	Date      *time.Time `json:"date,omitempty"`
	Venue     *string    `json:"venue,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// HostNames returns the resolver match targets for this wedding
func (w *Wedding) HostNames() host.Names {
	return host.Names{A: w.HostAName, B: w.HostBName}
}
