package report

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lromero/guestdesk/internal/group"
	"github.com/lromero/guestdesk/internal/guest"
	"github.com/lromero/guestdesk/internal/host"
)

// Filter values use "all" (or empty) as the no-op for every predicate:
// an unset predicate filters nothing, it never filters everything.
const FilterAll = "all"

// Group filter sentinel for guests with no group
const FilterUngrouped = "ungrouped"

// Opened tri-state values
const (
	OpenedAny = "all"
	OpenedYes = "opened"
	OpenedNo  = "not_opened"
)

// Filter composes the independently-settable predicates over the guest
// collection. Active predicates are ANDed.
type Filter struct {
	// Search matches name or phone as a case-insensitive substring
	Search string
	// Status is "all" or one of the confirmation statuses
	Status string
	// Tag is "all" or a single tag the guest (or its group) must carry
	Tag string
	// Group is "all", "ungrouped", or a group id in decimal
	Group string
	// Host is "all" or a canonical host reference
	Host string
	// Opened is the tri-state over the owning group's open_count
	Opened string
}

func isAll(v string) bool {
	return v == "" || v == FilterAll
}

// Apply returns the guests matching every active predicate, preserving
// input order. groups indexes the wedding's groups by id for the
// group-dependent predicates.
func (f Filter) Apply(guests []*guest.Guest, groups map[int64]*group.Group) []*guest.Guest {
	var out []*guest.Guest
	for _, g := range guests {
		if f.matches(g, groups) {
			out = append(out, g)
		}
	}
	return out
}

func (f Filter) matches(g *guest.Guest, groups map[int64]*group.Group) bool {
	if !isAll(f.Search) {
		needle := strings.ToLower(f.Search)
		name := strings.ToLower(g.Name)
		phone := ""
		if g.Phone != nil {
			phone = strings.ToLower(*g.Phone)
		}
		if !strings.Contains(name, needle) && !strings.Contains(phone, needle) {
			return false
		}
	}

	if !isAll(f.Status) && string(g.Status) != f.Status {
		return false
	}

	if !isAll(f.Tag) && !hasEffectiveTag(g, groups, f.Tag) {
		return false
	}

	if !isAll(f.Group) {
		switch f.Group {
		case FilterUngrouped:
			if g.GroupID != nil {
				return false
			}
		default:
			id, err := strconv.ParseInt(f.Group, 10, 64)
			if err != nil || g.GroupID == nil || *g.GroupID != id {
				return false
			}
		}
	}

	if !isAll(f.Host) && !hasEffectiveHost(g, groups, host.Ref(f.Host)) {
		return false
	}

	if !isAll(f.Opened) && f.Opened != OpenedAny {
		opened := false
		if g.GroupID != nil {
			if grp, ok := groups[*g.GroupID]; ok {
				opened = grp.Opened()
			}
		}
		if f.Opened == OpenedYes && !opened {
			return false
		}
		if f.Opened == OpenedNo && opened {
			return false
		}
	}

	return true
}

// hasEffectiveTag checks the guest's tags unioned with its group's
// override tags
func hasEffectiveTag(g *guest.Guest, groups map[int64]*group.Group, tag string) bool {
	if g.HasTag(tag) {
		return true
	}
	if g.GroupID == nil {
		return false
	}
	grp, ok := groups[*g.GroupID]
	if !ok {
		return false
	}
	for _, t := range grp.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// hasEffectiveHost checks the guest's attribution unioned with its
// group's override attribution
func hasEffectiveHost(g *guest.Guest, groups map[int64]*group.Group, ref host.Ref) bool {
	if g.InvitedByHost(ref) {
		return true
	}
	if g.GroupID == nil {
		return false
	}
	grp, ok := groups[*g.GroupID]
	if !ok {
		return false
	}
	for _, r := range grp.InvitedBy {
		if r == ref {
			return true
		}
	}
	return false
}

// SortKey selects the single comparator the view sorts by
type SortKey string

const (
	SortByName   SortKey = "name"
	SortByGroup  SortKey = "group"
	SortByStatus SortKey = "status"
)

// Sort orders guests by one key, ascending or descending. The sort is
// stable so ties keep their insertion order; there is no secondary key.
func Sort(guests []*guest.Guest, groups map[int64]*group.Group, key SortKey, descending bool) {
	less := func(a, b *guest.Guest) bool { return false }

	switch key {
	case SortByName:
		less = func(a, b *guest.Guest) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case SortByGroup:
		less = func(a, b *guest.Guest) bool {
			return strings.ToLower(groupName(a, groups)) < strings.ToLower(groupName(b, groups))
		}
	case SortByStatus:
		less = func(a, b *guest.Guest) bool {
			return statusRank(a.Status) < statusRank(b.Status)
		}
	}

	sort.SliceStable(guests, func(i, j int) bool {
		if descending {
			return less(guests[j], guests[i])
		}
		return less(guests[i], guests[j])
	})
}

func groupName(g *guest.Guest, groups map[int64]*group.Group) string {
	if g.GroupID == nil {
		return ""
	}
	grp, ok := groups[*g.GroupID]
	if !ok {
		return ""
	}
	return grp.DisplayName()
}

// statusRank orders statuses for the status sort: pending first, then
// confirmed, then declined
func statusRank(s guest.ConfirmationStatus) int {
	switch s {
	case guest.StatusPending:
		return 0
	case guest.StatusConfirmed:
		return 1
	case guest.StatusDeclined:
		return 2
	default:
		return 3
	}
}
