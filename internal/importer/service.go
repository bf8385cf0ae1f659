package importer

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/lromero/guestdesk/internal/group"
	"github.com/lromero/guestdesk/internal/guest"
	"github.com/lromero/guestdesk/internal/host"
	"github.com/lromero/guestdesk/internal/wedding"
)

// Common errors
var (
	ErrTargetGroupNotFound = errors.New("target group not found")
)

// Result reports what an import did
type Result struct {
	GuestsCreated    int      `json:"guests_created"`
	GroupsCreated    int      `json:"groups_created"`
	RowsSkipped      int      `json:"rows_skipped"`
	DroppedHostTexts []string `json:"dropped_host_texts,omitempty"`
}

// Service turns import rows into guests. Host text goes through the
// resolver on the way in; unresolvable values are dropped and reported,
// never treated as import errors.
type Service struct {
	guests   *guest.Repository
	groups   *group.Repository
	weddings *wedding.Service
	log      zerolog.Logger
}

// NewService creates a new importer service
func NewService(guests *guest.Repository, groups *group.Repository, weddings *wedding.Service, log zerolog.Logger) *Service {
	return &Service{guests: guests, groups: groups, weddings: weddings, log: log}
}

// defaultGroupName is where rows without a group land when the upload did
// not select a target group. An import never creates ungrouped guests.
const defaultGroupName = "Imported guests"

// groupNameForRow picks the group a row belongs to when no target group
// was selected for the file
func groupNameForRow(row Row) string {
	if row.Group != "" {
		return row.Group
	}
	return defaultGroupName
}

// Import reads a CSV stream and creates its guests. targetGroupID, when
// set, overrides per-row group names; otherwise rows naming a group land
// in it, creating each missing group once per file, and rows without a
// group land in a per-file default group.
func (s *Service) Import(ctx context.Context, weddingID int64, r io.Reader, targetGroupID *int64) (*Result, error) {
	rows, skipped, err := ParseCSV(r)
	if err != nil {
		return nil, err
	}

	names, err := s.weddings.HostNames(ctx, weddingID)
	if err != nil {
		return nil, err
	}

	if targetGroupID != nil {
		g, err := s.groups.GetByID(ctx, weddingID, *targetGroupID)
		if err != nil {
			return nil, err
		}
		if g == nil {
			return nil, ErrTargetGroupNotFound
		}
	}

	// Existing groups by name, so a file referencing "Smith Family" five
	// times creates it at most once
	existing, err := s.groups.ListByWedding(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	groupsByName := make(map[string]int64, len(existing))
	for _, g := range existing {
		if g.Name != nil && *g.Name != "" {
			groupsByName[*g.Name] = g.ID
		}
	}

	result := &Result{RowsSkipped: skipped}

	for _, row := range rows {
		groupID := targetGroupID
		if groupID == nil {
			name := groupNameForRow(row)
			id, ok := groupsByName[name]
			if !ok {
				created, err := s.groups.Create(ctx, weddingID, &group.CreateGroupRequest{Name: &name}, nil)
				if err != nil {
					return nil, err
				}
				id = created.ID
				groupsByName[name] = id
				result.GroupsCreated++
			}
			groupID = &id
		}

		refs, dropped := host.Normalize(row.InvitedBy, names)
		for _, v := range dropped {
			s.log.Debug().
				Int64("wedding_id", weddingID).
				Str("guest_name", row.Name).
				Str("raw_value", v).
				Msg("import dropped unresolvable invited_by value")
			result.DroppedHostTexts = append(result.DroppedHostTexts, v)
		}
		if refs == nil {
			refs = []host.Ref{}
		}

		req := &guest.CreateGuestRequest{
			Name:    row.Name,
			GroupID: groupID,
			Tags:    row.Tags,
		}
		if row.Phone != "" {
			phone := row.Phone
			req.Phone = &phone
		}

		if _, err := s.guests.Create(ctx, weddingID, req, refs); err != nil {
			return nil, err
		}
		result.GuestsCreated++
	}

	s.log.Info().
		Int64("wedding_id", weddingID).
		Int("guests", result.GuestsCreated).
		Int("groups", result.GroupsCreated).
		Int("dropped_hosts", len(result.DroppedHostTexts)).
		Msg("guest import finished")

	return result, nil
}
