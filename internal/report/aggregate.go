package report

import (
	"sort"
	"time"

	"github.com/lromero/guestdesk/internal/group"
	"github.com/lromero/guestdesk/internal/guest"
	"github.com/lromero/guestdesk/internal/host"
)

// Window is the lookback window a time series is restricted to
type Window string

const (
	Window7d  Window = "7d"
	Window14d Window = "14d"
	Window30d Window = "30d"
	Window90d Window = "90d"
	WindowAll Window = "all"
)

// IsValid reports whether w is a known window
func (w Window) IsValid() bool {
	switch w {
	case Window7d, Window14d, Window30d, Window90d, WindowAll:
		return true
	}
	return false
}

// days returns the window length, or 0 for the unbounded window
func (w Window) days() int {
	switch w {
	case Window7d:
		return 7
	case Window14d:
		return 14
	case Window30d:
		return 30
	case Window90d:
		return 90
	default:
		return 0
	}
}

// StatusCounts tallies guests per confirmation status
type StatusCounts struct {
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Declined  int `json:"declined"`
}

func (c *StatusCounts) add(s guest.ConfirmationStatus) {
	switch s {
	case guest.StatusConfirmed:
		c.Confirmed++
	case guest.StatusPending:
		c.Pending++
	case guest.StatusDeclined:
		c.Declined++
	}
}

// Summary is the headline totals for the dashboard
type Summary struct {
	TotalGuests  int          `json:"total_guests"`
	TotalGroups  int          `json:"total_groups"`
	Status       StatusCounts `json:"status"`
	Traveling    int          `json:"traveling"`
	Ungrouped    int          `json:"ungrouped"`
	OpenedGroups int          `json:"opened_groups"`
}

// Summarize folds the collections into headline totals. Traveling counts
// only confirmed travelers, matching the display gate.
func Summarize(guests []*guest.Guest, groups []*group.Group) Summary {
	s := Summary{TotalGuests: len(guests), TotalGroups: len(groups)}
	for _, g := range guests {
		s.Status.add(g.Status)
		if g.ShowsAsTraveling() {
			s.Traveling++
		}
		if g.GroupID == nil {
			s.Ungrouped++
		}
	}
	for _, grp := range groups {
		if grp.Opened() {
			s.OpenedGroups++
		}
	}
	return s
}

// StatusByHost tallies statuses per canonical host reference, counting a
// guest under every host it is attributed to (guest-level attribution
// unioned with the owning group's override). Chart consumers key on the
// ref.
func StatusByHost(guests []*guest.Guest, groups map[int64]*group.Group) map[host.Ref]StatusCounts {
	out := map[host.Ref]StatusCounts{
		host.RefA: {},
		host.RefB: {},
	}

	for _, g := range guests {
		for _, ref := range effectiveHosts(g, groups) {
			c := out[ref]
			c.add(g.Status)
			out[ref] = c
		}
	}

	return out
}

// TagDistribution counts guests per effective tag
func TagDistribution(guests []*guest.Guest, groups map[int64]*group.Group) map[string]int {
	out := make(map[string]int)
	for _, g := range guests {
		for _, t := range effectiveTags(g, groups) {
			out[t]++
		}
	}
	return out
}

// effectiveHosts is the union of guest-level and group-level attribution,
// deduplicated, guest values first
func effectiveHosts(g *guest.Guest, groups map[int64]*group.Group) []host.Ref {
	seen := make(map[host.Ref]bool, 2)
	var refs []host.Ref

	for _, r := range g.InvitedBy {
		if !seen[r] {
			seen[r] = true
			refs = append(refs, r)
		}
	}
	if g.GroupID != nil {
		if grp, ok := groups[*g.GroupID]; ok {
			for _, r := range grp.InvitedBy {
				if !seen[r] {
					seen[r] = true
					refs = append(refs, r)
				}
			}
		}
	}
	return refs
}

// effectiveTags is the union of guest-level and group-level tags
func effectiveTags(g *guest.Guest, groups map[int64]*group.Group) []string {
	seen := make(map[string]bool)
	var tags []string

	for _, t := range g.Tags {
		if !seen[t] {
			seen[t] = true
			tags = append(tags, t)
		}
	}
	if g.GroupID != nil {
		if grp, ok := groups[*g.GroupID]; ok {
			for _, t := range grp.Tags {
				if !seen[t] {
					seen[t] = true
					tags = append(tags, t)
				}
			}
		}
	}
	return tags
}

// GroupUnion is the derived aggregate view of one group: member guests
// plus the group's own overrides. Computed on demand, never stored.
type GroupUnion struct {
	Group     *group.Group `json:"group"`
	GuestIDs  []int64      `json:"guest_ids"`
	Tags      []string     `json:"tags"`
	InvitedBy []host.Ref   `json:"invited_by"`
	Status    StatusCounts `json:"status"`
}

// UnionForGroup derives the aggregate tag/host sets and status tallies for
// one group from its members
func UnionForGroup(grp *group.Group, members []*guest.Guest) GroupUnion {
	u := GroupUnion{Group: grp}

	tagSeen := make(map[string]bool)
	refSeen := make(map[host.Ref]bool)

	for _, t := range grp.Tags {
		if !tagSeen[t] {
			tagSeen[t] = true
			u.Tags = append(u.Tags, t)
		}
	}
	for _, r := range grp.InvitedBy {
		if !refSeen[r] {
			refSeen[r] = true
			u.InvitedBy = append(u.InvitedBy, r)
		}
	}

	for _, m := range members {
		u.GuestIDs = append(u.GuestIDs, m.ID)
		u.Status.add(m.Status)
		for _, t := range m.Tags {
			if !tagSeen[t] {
				tagSeen[t] = true
				u.Tags = append(u.Tags, t)
			}
		}
		for _, r := range m.InvitedBy {
			if !refSeen[r] {
				refSeen[r] = true
				u.InvitedBy = append(u.InvitedBy, r)
			}
		}
	}

	sort.Strings(u.Tags)
	return u
}

// DayBucket is one day of the cumulative event series. Cumulative values
// carry the previous day's value plus that day's delta, so the series is
// monotone by construction and zero-event days still appear.
type DayBucket struct {
	Date                string `json:"date"`
	Confirmed           int    `json:"confirmed"`
	Declined            int    `json:"declined"`
	Opened              int    `json:"opened"`
	CumulativeConfirmed int    `json:"cumulative_confirmed"`
	CumulativeDeclined  int    `json:"cumulative_declined"`
	CumulativeOpened    int    `json:"cumulative_opened"`
}

const dayFormat = "2006-01-02"

// Timeline builds the per-day cumulative confirmed/declined/opened series
// over the lookback window ending at now. groupID restricts the series to
// one group; 0 means the whole wedding. Events before the window are not
// carried into the cumulative totals: the series answers "what happened
// within the window". Buckets are UTC days.
func Timeline(guests []*guest.Guest, groups []*group.Group, window Window, groupID int64, now time.Time) []DayBucket {
	today := now.UTC().Truncate(24 * time.Hour)

	type delta struct{ confirmed, declined, opened int }
	deltas := make(map[string]*delta)
	at := func(day time.Time) *delta {
		key := day.Format(dayFormat)
		d, ok := deltas[key]
		if !ok {
			d = &delta{}
			deltas[key] = d
		}
		return d
	}

	var earliest time.Time
	track := func(t time.Time) time.Time {
		day := t.UTC().Truncate(24 * time.Hour)
		if earliest.IsZero() || day.Before(earliest) {
			earliest = day
		}
		return day
	}

	for _, g := range guests {
		if groupID != 0 && (g.GroupID == nil || *g.GroupID != groupID) {
			continue
		}
		if g.RespondedAt == nil {
			continue
		}
		day := track(*g.RespondedAt)
		switch g.Status {
		case guest.StatusConfirmed:
			at(day).confirmed++
		case guest.StatusDeclined:
			at(day).declined++
		}
	}

	for _, grp := range groups {
		if groupID != 0 && grp.ID != groupID {
			continue
		}
		if grp.FirstOpenedAt == nil {
			continue
		}
		at(track(*grp.FirstOpenedAt)).opened++
	}

	start := today
	if days := window.days(); days > 0 {
		start = today.AddDate(0, 0, -(days - 1))
	} else if !earliest.IsZero() && earliest.Before(today) {
		start = earliest
	}

	var series []DayBucket
	var cumConfirmed, cumDeclined, cumOpened int

	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		key := day.Format(dayFormat)
		var d delta
		if found, ok := deltas[key]; ok {
			d = *found
		}

		cumConfirmed += d.confirmed
		cumDeclined += d.declined
		cumOpened += d.opened

		series = append(series, DayBucket{
			Date:                key,
			Confirmed:           d.confirmed,
			Declined:            d.declined,
			Opened:              d.opened,
			CumulativeConfirmed: cumConfirmed,
			CumulativeDeclined:  cumDeclined,
			CumulativeOpened:    cumOpened,
		})
	}

	return series
}
