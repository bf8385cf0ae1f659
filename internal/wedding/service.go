package wedding

import (
	"context"
	"errors"

	"github.com/lromero/guestdesk/internal/host"
)

// Common errors
var (
	ErrWeddingNotFound = errors.New("wedding not found")
)

// Service handles wedding business logic
type Service struct {
	repo *Repository
}

// NewService creates a new wedding service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// GetByID retrieves a wedding by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Wedding, error) {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrWeddingNotFound
	}
	return w, nil
}

// HostNames returns the resolver match targets for a wedding. Every code
// path that normalizes invited_by text goes through this.
func (s *Service) HostNames(ctx context.Context, weddingID int64) (host.Names, error) {
	w, err := s.GetByID(ctx, weddingID)
	if err != nil {
		return host.Names{}, err
	}
	return w.HostNames(), nil
}

// Update modifies wedding settings
func (s *Service) Update(ctx context.Context, id int64, req *UpdateWeddingRequest) (*Wedding, error) {
	w, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrWeddingNotFound
	}
	return w, nil
}
