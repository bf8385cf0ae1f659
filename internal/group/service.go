package group

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog"

	"github.com/lromero/guestdesk/internal/host"
	"github.com/lromero/guestdesk/internal/wedding"
)

// Common errors
var (
	ErrGroupNotFound = errors.New("group not found")
	ErrInvalidPolicy = errors.New("invalid delete policy")
)

// Service handles group business logic. Incoming invited_by text is
// normalized against the wedding's host names before it ever reaches the
// repository; unresolvable values are dropped and logged, never stored.
type Service struct {
	repo     *Repository
	weddings *wedding.Service
	log      zerolog.Logger
}

// NewService creates a new group service
func NewService(repo *Repository, weddings *wedding.Service, log zerolog.Logger) *Service {
	return &Service{repo: repo, weddings: weddings, log: log}
}

// canonicalRefs reduces free-text attribution to the canonical reference
// set. Values that fail to resolve are dropped, not stored.
func canonicalRefs(values []string, names host.Names) (refs []host.Ref, dropped []string) {
	refs, dropped = host.Normalize(values, names)
	if refs == nil {
		refs = []host.Ref{}
	}
	return refs, dropped
}

func (s *Service) normalizeInvitedBy(ctx context.Context, weddingID int64, values []string) ([]host.Ref, error) {
	if values == nil {
		return nil, nil
	}

	names, err := s.weddings.HostNames(ctx, weddingID)
	if err != nil {
		return nil, err
	}

	refs, dropped := canonicalRefs(values, names)
	for _, v := range dropped {
		s.log.Debug().
			Int64("wedding_id", weddingID).
			Str("raw_value", v).
			Msg("dropped unresolvable invited_by value")
	}
	return refs, nil
}

// Create creates a new group
func (s *Service) Create(ctx context.Context, weddingID int64, req *CreateGroupRequest) (*Group, error) {
	invitedBy, err := s.normalizeInvitedBy(ctx, weddingID, req.InvitedBy)
	if err != nil {
		return nil, err
	}
	if invitedBy == nil {
		invitedBy = []host.Ref{}
	}
	return s.repo.Create(ctx, weddingID, req, invitedBy)
}

// GetByID retrieves a group by its ID
func (s *Service) GetByID(ctx context.Context, weddingID, id int64) (*Group, error) {
	g, err := s.repo.GetByID(ctx, weddingID, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}
	return g, nil
}

// ListByWedding retrieves all groups for a wedding
func (s *Service) ListByWedding(ctx context.Context, weddingID int64) ([]*Group, error) {
	return s.repo.ListByWedding(ctx, weddingID)
}

// Update modifies an existing group
func (s *Service) Update(ctx context.Context, weddingID, id int64, req *UpdateGroupRequest) (*Group, error) {
	invitedBy, err := s.normalizeInvitedBy(ctx, weddingID, req.InvitedBy)
	if err != nil {
		return nil, err
	}

	g, err := s.repo.Update(ctx, weddingID, id, req, invitedBy)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}
	return g, nil
}

// SetInvitationSent flags a group's invitation as sent or unsent
func (s *Service) SetInvitationSent(ctx context.Context, weddingID, id int64, sent bool) (*Group, error) {
	g, err := s.repo.SetInvitationSent(ctx, weddingID, id, sent)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}
	return g, nil
}

// RecordOpen tracks an invitation page view for the group
func (s *Service) RecordOpen(ctx context.Context, weddingID, id int64) (*Group, error) {
	g, err := s.repo.RecordOpen(ctx, weddingID, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}

	s.log.Debug().
		Int64("group_id", id).
		Int("open_count", g.OpenCount).
		Msg("invitation page opened")

	return g, nil
}

// Delete removes a group after applying the requested member policy
func (s *Service) Delete(ctx context.Context, weddingID, id int64, policy DeletePolicy) error {
	if !policy.IsValid() {
		return ErrInvalidPolicy
	}

	err := s.repo.Delete(ctx, weddingID, id, policy)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrGroupNotFound
	}
	return err
}
