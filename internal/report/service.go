package report

import (
	"context"
	"errors"
	"time"

	"github.com/lromero/guestdesk/internal/group"
	"github.com/lromero/guestdesk/internal/guest"
	"github.com/lromero/guestdesk/internal/host"
)

// Common errors
var (
	ErrInvalidWindow  = errors.New("invalid lookback window")
	ErrInvalidSortKey = errors.New("invalid sort key")
)

// Service builds the filtered views and aggregates every reporting
// consumer reads. All derivations are pure functions over a fresh read of
// the collections, so there is no cached state to invalidate on mutation.
type Service struct {
	guests *guest.Repository
	groups *group.Repository
	now    func() time.Time
}

// NewService creates a new report service
func NewService(guests *guest.Repository, groups *group.Repository) *Service {
	return &Service{guests: guests, groups: groups, now: time.Now}
}

func (s *Service) load(ctx context.Context, weddingID int64) ([]*guest.Guest, []*group.Group, map[int64]*group.Group, error) {
	guests, err := s.guests.ListByWedding(ctx, weddingID)
	if err != nil {
		return nil, nil, nil, err
	}

	groups, err := s.groups.ListByWedding(ctx, weddingID)
	if err != nil {
		return nil, nil, nil, err
	}

	byID := make(map[int64]*group.Group, len(groups))
	for _, g := range groups {
		byID[g.ID] = g
	}

	return guests, groups, byID, nil
}

// GuestView returns the flat guest list under the given filter and sort
func (s *Service) GuestView(ctx context.Context, weddingID int64, f Filter, key SortKey, descending bool) ([]*guest.Guest, error) {
	if key != "" && key != SortByName && key != SortByGroup && key != SortByStatus {
		return nil, ErrInvalidSortKey
	}

	guests, _, byID, err := s.load(ctx, weddingID)
	if err != nil {
		return nil, err
	}

	view := f.Apply(guests, byID)
	if key != "" {
		Sort(view, byID, key, descending)
	}

	return view, nil
}

// GroupedView returns every group's derived union plus the synthetic
// ungrouped bucket. The filter restricts which guests appear inside each
// bucket; empty buckets are kept so the admin sees every group.
func (s *Service) GroupedView(ctx context.Context, weddingID int64, f Filter) ([]GroupUnion, []*guest.Guest, error) {
	guests, groups, byID, err := s.load(ctx, weddingID)
	if err != nil {
		return nil, nil, err
	}

	filtered := f.Apply(guests, byID)

	byGroup := make(map[int64][]*guest.Guest)
	var ungrouped []*guest.Guest
	for _, g := range filtered {
		if g.GroupID == nil {
			ungrouped = append(ungrouped, g)
			continue
		}
		byGroup[*g.GroupID] = append(byGroup[*g.GroupID], g)
	}

	unions := make([]GroupUnion, len(groups))
	for i, grp := range groups {
		unions[i] = UnionForGroup(grp, byGroup[grp.ID])
	}

	return unions, ungrouped, nil
}

// SummaryReport bundles the headline totals with the per-host and per-tag
// breakdowns the charts consume
type SummaryReport struct {
	Summary      Summary                   `json:"summary"`
	StatusByHost map[host.Ref]StatusCounts `json:"status_by_host"`
	Tags         map[string]int            `json:"tags"`
}

// Summary computes the dashboard aggregates
func (s *Service) Summary(ctx context.Context, weddingID int64) (*SummaryReport, error) {
	guests, groups, byID, err := s.load(ctx, weddingID)
	if err != nil {
		return nil, err
	}

	return &SummaryReport{
		Summary:      Summarize(guests, groups),
		StatusByHost: StatusByHost(guests, byID),
		Tags:         TagDistribution(guests, byID),
	}, nil
}

// Timeline computes the cumulative per-day event series for the window,
// optionally scoped to one group (0 = whole wedding)
func (s *Service) Timeline(ctx context.Context, weddingID int64, window Window, groupID int64) ([]DayBucket, error) {
	if !window.IsValid() {
		return nil, ErrInvalidWindow
	}

	guests, groups, _, err := s.load(ctx, weddingID)
	if err != nil {
		return nil, err
	}

	return Timeline(guests, groups, window, groupID, s.now()), nil
}
