package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lromero/guestdesk/internal/group"
	"github.com/lromero/guestdesk/internal/guest"
	"github.com/lromero/guestdesk/internal/host"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestSummarize(t *testing.T) {
	guests, groupsByID := fixtureGuests()
	var groups []*group.Group
	for _, g := range groupsByID {
		groups = append(groups, g)
	}

	s := Summarize(guests, groups)
	assert.Equal(t, 4, s.TotalGuests)
	assert.Equal(t, 2, s.TotalGroups)
	assert.Equal(t, StatusCounts{Confirmed: 1, Pending: 2, Declined: 1}, s.Status)
	assert.Equal(t, 1, s.Ungrouped)
	assert.Equal(t, 1, s.OpenedGroups)
	assert.Equal(t, 0, s.Traveling)
}

func TestSummarizeTravelingGate(t *testing.T) {
	guests := []*guest.Guest{
		{ID: 1, Status: guest.StatusConfirmed, Travel: guest.TravelInfo{IsTraveling: true}},
		{ID: 2, Status: guest.StatusPending, Travel: guest.TravelInfo{IsTraveling: true}},
	}

	// A traveling guest who has not confirmed is not a travel case
	assert.Equal(t, 1, Summarize(guests, nil).Traveling)
}

func TestStatusByHost(t *testing.T) {
	guests, groups := fixtureGuests()

	byHost := StatusByHost(guests, groups)

	// Anna (pending) is attributed to host A directly
	assert.Equal(t, StatusCounts{Pending: 1}, byHost[host.RefA])
	// Carla (declined) inherits host B from her group
	assert.Equal(t, StatusCounts{Declined: 1}, byHost[host.RefB])
}

func TestTagDistribution(t *testing.T) {
	guests, groups := fixtureGuests()

	tags := TagDistribution(guests, groups)
	assert.Equal(t, 1, tags["family"])
	// Dan directly plus Carla through her group
	assert.Equal(t, 2, tags["work"])
}

func TestUnionForGroup(t *testing.T) {
	grp := &group.Group{ID: 1, Tags: []string{"vip"}, InvitedBy: []host.Ref{host.RefA}}
	members := []*guest.Guest{
		{ID: 1, Status: guest.StatusConfirmed, Tags: []string{"family"}, InvitedBy: []host.Ref{host.RefA}},
		{ID: 2, Status: guest.StatusPending, Tags: []string{"vip"}},
	}

	u := UnionForGroup(grp, members)
	assert.Equal(t, []int64{1, 2}, u.GuestIDs)
	assert.Equal(t, []string{"family", "vip"}, u.Tags)
	assert.Equal(t, []host.Ref{host.RefA}, u.InvitedBy)
	assert.Equal(t, StatusCounts{Confirmed: 1, Pending: 1}, u.Status)
}

func TestTimeline(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)
	day := func(daysAgo int) time.Time { return now.AddDate(0, 0, -daysAgo) }

	groupID := int64(1)
	guests := []*guest.Guest{
		{ID: 1, GroupID: &groupID, Status: guest.StatusConfirmed, RespondedAt: timePtr(day(5))},
		{ID: 2, GroupID: &groupID, Status: guest.StatusConfirmed, RespondedAt: timePtr(day(2))},
		{ID: 3, GroupID: &groupID, Status: guest.StatusDeclined, RespondedAt: timePtr(day(2))},
		{ID: 4, Status: guest.StatusPending}, // no response, contributes nothing
	}
	groups := []*group.Group{
		{ID: 1, OpenCount: 3, FirstOpenedAt: timePtr(day(6))},
	}

	t.Run("seven day window has exactly seven buckets", func(t *testing.T) {
		series := Timeline(guests, groups, Window7d, 0, now)
		require.Len(t, series, 7)
		assert.Equal(t, "2026-08-23", series[0].Date)
		assert.Equal(t, "2026-08-29", series[6].Date)
	})

	t.Run("zero-event days are present, not skipped", func(t *testing.T) {
		series := Timeline(guests, groups, Window7d, 0, now)
		// Day -4, -3: no events, but buckets exist
		assert.Equal(t, 0, series[2].Confirmed)
		assert.Equal(t, 0, series[3].Confirmed)
	})

	t.Run("cumulative series is monotone and ends at the window total", func(t *testing.T) {
		series := Timeline(guests, groups, Window7d, 0, now)

		prev := 0
		for _, b := range series {
			require.GreaterOrEqual(t, b.CumulativeConfirmed, prev, "day %s", b.Date)
			prev = b.CumulativeConfirmed
		}

		last := series[len(series)-1]
		assert.Equal(t, 2, last.CumulativeConfirmed)
		assert.Equal(t, 1, last.CumulativeDeclined)
		assert.Equal(t, 1, last.CumulativeOpened)
	})

	t.Run("each day carries the previous total plus its delta", func(t *testing.T) {
		series := Timeline(guests, groups, Window7d, 0, now)
		prev := DayBucket{}
		for _, b := range series {
			assert.Equal(t, prev.CumulativeConfirmed+b.Confirmed, b.CumulativeConfirmed)
			assert.Equal(t, prev.CumulativeDeclined+b.Declined, b.CumulativeDeclined)
			assert.Equal(t, prev.CumulativeOpened+b.Opened, b.CumulativeOpened)
			prev = b
		}
	})

	t.Run("unbounded window starts at the earliest event", func(t *testing.T) {
		all := Timeline(guests, groups, WindowAll, 0, now)
		assert.Equal(t, "2026-08-23", all[0].Date)
		assert.Equal(t, 2, all[len(all)-1].CumulativeConfirmed)
	})

	t.Run("group scope restricts the series", func(t *testing.T) {
		other := int64(2)
		withOther := append(guests, &guest.Guest{
			ID: 5, GroupID: &other, Status: guest.StatusConfirmed, RespondedAt: timePtr(day(1)),
		})

		scoped := Timeline(withOther, groups, Window7d, 1, now)
		assert.Equal(t, 2, scoped[len(scoped)-1].CumulativeConfirmed)

		unscoped := Timeline(withOther, groups, Window7d, 0, now)
		assert.Equal(t, 3, unscoped[len(unscoped)-1].CumulativeConfirmed)
	})

	t.Run("no events still yields a bucket per window day", func(t *testing.T) {
		series := Timeline(nil, nil, Window14d, 0, now)
		require.Len(t, series, 14)
		assert.Equal(t, 0, series[13].CumulativeConfirmed)
	})

	t.Run("buckets are UTC days regardless of the server zone", func(t *testing.T) {
		// 20:00 on Aug 29 at UTC-7 is already Aug 30 in UTC
		west := time.FixedZone("UTC-7", -7*3600)
		local := time.Date(2026, 8, 29, 20, 0, 0, 0, west)
		confirmed := []*guest.Guest{
			{ID: 1, Status: guest.StatusConfirmed, RespondedAt: timePtr(local)},
		}

		series := Timeline(confirmed, nil, Window7d, 0, local)
		last := series[len(series)-1]
		assert.Equal(t, "2026-08-30", last.Date)
		assert.Equal(t, 1, last.Confirmed)
	})
}

// The Smith-family scenario: an import attributes Anna via a typo, Bob's
// RSVP is first rejected by the travel gate and then accepted, and the
// aggregation picks up his confirmation.
func TestEndToEndScenario(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	names := host.Names{A: "Alex", B: "Jamie"}

	// Import: raw "alexx" resolves to host A
	refs, dropped := host.Normalize([]string{"alexx"}, names)
	require.Empty(t, dropped)
	require.Equal(t, []host.Ref{host.RefA}, refs)

	groupID := int64(10)
	anna := &guest.Guest{ID: 1, GroupID: &groupID, Name: "Anna", Status: guest.StatusPending, InvitedBy: refs}
	bob := &guest.Guest{ID: 2, GroupID: &groupID, Name: "Bob", Status: guest.StatusPending}
	smith := &group.Group{ID: groupID, Name: strPtr("Smith Family")}

	// Bob confirms, traveling with no ticket needed and a reason given
	// (the gate rejection for the empty reason is covered in rsvp tests)
	bob.Status = guest.StatusConfirmed
	bob.Travel = guest.TravelInfo{IsTraveling: true, Arrangement: guest.ArrangementNoTicket, NoTicketReason: strPtr("driving")}
	bob.RespondedAt = timePtr(now)
	smith.RSVPSubmittedAt = timePtr(now)

	guests := []*guest.Guest{anna, bob}
	groups := []*group.Group{smith}

	series := Timeline(guests, groups, Window7d, 0, now)
	last := series[len(series)-1]
	assert.Equal(t, 1, last.Confirmed, "Bob lands in today's confirmed delta")
	assert.Equal(t, 1, last.CumulativeConfirmed)

	byHost := StatusByHost(guests, map[int64]*group.Group{groupID: smith})
	assert.Equal(t, StatusCounts{Pending: 1}, byHost[host.RefA])

	s := Summarize(guests, groups)
	assert.Equal(t, StatusCounts{Confirmed: 1, Pending: 1}, s.Status)
	assert.Equal(t, 1, s.Traveling)
}
