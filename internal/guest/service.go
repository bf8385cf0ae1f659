package guest

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog"

	"github.com/lromero/guestdesk/internal/host"
	"github.com/lromero/guestdesk/internal/selection"
	"github.com/lromero/guestdesk/internal/wedding"
)

// Common errors
var (
	ErrGuestNotFound      = errors.New("guest not found")
	ErrInvalidStatus      = errors.New("invalid confirmation status")
	ErrEmptySelection     = errors.New("no guests selected")
	ErrAmbiguousGroup     = errors.New("exactly one of group_id and new_group_name must be set")
	ErrInvalidArrangement = errors.New("invalid travel arrangement")
)

// Service handles guest business logic. Incoming invited_by text is
// normalized against the wedding's host names before it ever reaches the
// repository; unresolvable values are dropped and logged, never stored.
type Service struct {
	repo       *Repository
	weddings   *wedding.Service
	selections *selection.Store
	log        zerolog.Logger
}

// NewService creates a new guest service
func NewService(repo *Repository, weddings *wedding.Service, selections *selection.Store, log zerolog.Logger) *Service {
	return &Service{repo: repo, weddings: weddings, selections: selections, log: log}
}

// normalizeHosts resolves free-text attribution to canonical refs, logging
// any data-quality drops so they stay visible in telemetry
func (s *Service) normalizeHosts(ctx context.Context, weddingID int64, values []string) ([]host.Ref, error) {
	if values == nil {
		return nil, nil
	}

	names, err := s.weddings.HostNames(ctx, weddingID)
	if err != nil {
		return nil, err
	}

	refs, dropped := host.Normalize(values, names)
	for _, v := range dropped {
		s.log.Debug().
			Int64("wedding_id", weddingID).
			Str("raw_value", v).
			Msg("dropped unresolvable invited_by value")
	}

	if refs == nil {
		refs = []host.Ref{}
	}
	return refs, nil
}

// Create creates a new guest with status pending
func (s *Service) Create(ctx context.Context, weddingID int64, req *CreateGuestRequest) (*Guest, error) {
	refs, err := s.normalizeHosts(ctx, weddingID, req.InvitedBy)
	if err != nil {
		return nil, err
	}
	if refs == nil {
		refs = []host.Ref{}
	}

	return s.repo.Create(ctx, weddingID, req, refs)
}

// GetByID retrieves a guest by its ID
func (s *Service) GetByID(ctx context.Context, weddingID, id int64) (*Guest, error) {
	g, err := s.repo.GetByID(ctx, weddingID, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGuestNotFound
	}
	return g, nil
}

// ListByWedding retrieves all guests for a wedding
func (s *Service) ListByWedding(ctx context.Context, weddingID int64) ([]*Guest, error) {
	return s.repo.ListByWedding(ctx, weddingID)
}

// ListByGroup retrieves all guests in one group
func (s *Service) ListByGroup(ctx context.Context, weddingID, groupID int64) ([]*Guest, error) {
	return s.repo.ListByGroup(ctx, weddingID, groupID)
}

// Update applies an admin edit. Admin edits may move the status in any
// direction and set travel data (flagged admin-entered).
func (s *Service) Update(ctx context.Context, weddingID, id int64, req *UpdateGuestRequest) (*Guest, error) {
	if req.Status != nil && !req.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if req.Travel != nil && !req.Travel.Arrangement.IsValid() {
		return nil, ErrInvalidArrangement
	}

	refs, err := s.normalizeHosts(ctx, weddingID, req.InvitedBy)
	if err != nil {
		return nil, err
	}

	g, err := s.repo.Update(ctx, weddingID, id, req, refs)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGuestNotFound
	}
	return g, nil
}

// Delete removes a guest
func (s *Service) Delete(ctx context.Context, weddingID, id int64) error {
	err := s.repo.Delete(ctx, weddingID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrGuestNotFound
	}
	return err
}

// resolveSelection turns a bulk request's selection into the id snapshot
// the operation will act on
func (s *Service) resolveSelection(sel BulkSelection) ([]int64, error) {
	// explicit lists may carry repeats; the snapshot must be unique ids or
	// the all-or-nothing row count check would reject a valid selection
	ids := dedupeIDs(sel.GuestIDs)
	if len(ids) == 0 && sel.SessionID != "" {
		ids = s.selections.Snapshot(sel.SessionID)
	}
	if len(ids) == 0 {
		return nil, ErrEmptySelection
	}
	return ids, nil
}

// dedupeIDs drops repeated ids, keeping first-occurrence order
func dedupeIDs(ids []int64) []int64 {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// finishBulk clears the driving session selection after a successful bulk
// operation
func (s *Service) finishBulk(sel BulkSelection) {
	if sel.SessionID != "" {
		s.selections.Clear(sel.SessionID)
	}
}

// BulkSetStatus updates the confirmation status of every selected guest
func (s *Service) BulkSetStatus(ctx context.Context, weddingID int64, req *BulkStatusRequest) (int, error) {
	if !req.Status.IsValid() {
		return 0, ErrInvalidStatus
	}

	ids, err := s.resolveSelection(req.BulkSelection)
	if err != nil {
		return 0, err
	}

	if err := s.repo.BulkSetStatus(ctx, weddingID, ids, req.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrGuestNotFound
		}
		return 0, err
	}

	s.finishBulk(req.BulkSelection)
	return len(ids), nil
}

// BulkAssignGroup moves every selected guest into a group. When
// NewGroupName is set, exactly one group is created for the whole call.
// Returns the target group id and the number of guests moved.
func (s *Service) BulkAssignGroup(ctx context.Context, weddingID int64, req *BulkGroupRequest) (int64, int, error) {
	if (req.GroupID == nil) == (req.NewGroupName == nil) {
		return 0, 0, ErrAmbiguousGroup
	}

	ids, err := s.resolveSelection(req.BulkSelection)
	if err != nil {
		return 0, 0, err
	}

	var groupID int64
	if req.GroupID != nil {
		groupID = *req.GroupID
		err = s.repo.BulkAssignGroup(ctx, weddingID, ids, groupID)
	} else {
		groupID, err = s.repo.BulkAssignNewGroup(ctx, weddingID, ids, *req.NewGroupName)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, ErrGuestNotFound
		}
		return 0, 0, err
	}

	s.finishBulk(req.BulkSelection)
	return groupID, len(ids), nil
}

// BulkSetInvitedBy sets the host attribution of every selected guest
func (s *Service) BulkSetInvitedBy(ctx context.Context, weddingID int64, req *BulkHostRequest) (int, error) {
	ids, err := s.resolveSelection(req.BulkSelection)
	if err != nil {
		return 0, err
	}

	refs, err := s.normalizeHosts(ctx, weddingID, req.InvitedBy)
	if err != nil {
		return 0, err
	}
	if refs == nil {
		refs = []host.Ref{}
	}

	if err := s.repo.BulkSetInvitedBy(ctx, weddingID, ids, refs); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrGuestNotFound
		}
		return 0, err
	}

	s.finishBulk(req.BulkSelection)
	return len(ids), nil
}

// BulkSetTags replaces the tags of every selected guest
func (s *Service) BulkSetTags(ctx context.Context, weddingID int64, req *BulkTagsRequest) (int, error) {
	ids, err := s.resolveSelection(req.BulkSelection)
	if err != nil {
		return 0, err
	}

	if err := s.repo.BulkSetTags(ctx, weddingID, ids, req.Tags); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrGuestNotFound
		}
		return 0, err
	}

	s.finishBulk(req.BulkSelection)
	return len(ids), nil
}

// BulkSetTravel sets the travel sub-record of every selected guest
func (s *Service) BulkSetTravel(ctx context.Context, weddingID int64, req *BulkTravelRequest) (int, error) {
	if !req.Travel.Arrangement.IsValid() {
		return 0, ErrInvalidArrangement
	}

	ids, err := s.resolveSelection(req.BulkSelection)
	if err != nil {
		return 0, err
	}

	if err := s.repo.BulkSetTravel(ctx, weddingID, ids, req.Travel); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrGuestNotFound
		}
		return 0, err
	}

	s.finishBulk(req.BulkSelection)
	return len(ids), nil
}

// BulkDelete removes every selected guest
func (s *Service) BulkDelete(ctx context.Context, weddingID int64, req *BulkDeleteRequest) (int, error) {
	ids, err := s.resolveSelection(req.BulkSelection)
	if err != nil {
		return 0, err
	}

	if err := s.repo.BulkDelete(ctx, weddingID, ids); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrGuestNotFound
		}
		return 0, err
	}

	s.finishBulk(req.BulkSelection)
	return len(ids), nil
}
