package rsvp

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/lromero/guestdesk/internal/group"
	"github.com/lromero/guestdesk/internal/guest"
)

// Common errors
var (
	ErrGroupNotFound = errors.New("group not found")
	ErrNoAnswers     = errors.New("submission contains no guest answers")
)

// Service handles the RSVP submission boundary: verification, the
// travel-completeness gate, and the atomic apply.
type Service struct {
	repo     *Repository
	groups   *group.Repository
	guests   *guest.Repository
	verifier *Verifier
	log      zerolog.Logger
}

// NewService creates a new rsvp service
func NewService(repo *Repository, groups *group.Repository, guests *guest.Repository, verifier *Verifier, log zerolog.Logger) *Service {
	return &Service{repo: repo, groups: groups, guests: guests, verifier: verifier, log: log}
}

// RequestVerification starts the out-of-band verification flow for a
// group. The returned token is single-use and expires.
func (s *Service) RequestVerification(ctx context.Context, weddingID int64, req *RequestVerificationRequest) (string, time.Time, error) {
	g, err := s.groups.GetByID(ctx, weddingID, req.GroupID)
	if err != nil {
		return "", time.Time{}, err
	}
	if g == nil {
		return "", time.Time{}, ErrGroupNotFound
	}

	return s.verifier.Issue(ctx, req.GroupID, req.PhoneNumbers)
}

// Submit processes one group's RSVP. Order matters: the gate runs before
// the token is consumed, so a validation rejection does not burn the
// token, and the token is consumed before any write, so an invalid token
// leaves state untouched. If the write itself fails the token is restored,
// keeping transient failures retryable without a fresh verification round.
// Re-submissions of an already-submitted RSVP go through the same gate
// again.
func (s *Service) Submit(ctx context.Context, weddingID int64, req *SubmitRequest) (*SubmitResponse, error) {
	if len(req.Guests) == 0 {
		return nil, ErrNoAnswers
	}

	g, err := s.groups.GetByID(ctx, weddingID, req.GroupID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}

	members, err := s.guests.ListByGroup(ctx, weddingID, req.GroupID)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*guest.Guest, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}

	if verr := validateAnswers(byID, req.Guests); verr != nil {
		s.log.Debug().
			Int64("group_id", req.GroupID).
			Int64("guest_id", verr.GuestID).
			Str("field", verr.Field).
			Msg("rsvp submission rejected by travel gate")
		return nil, verr
	}

	if err := s.verifier.Consume(req.VerificationToken, req.GroupID); err != nil {
		return nil, err
	}

	submittedAt, err := s.repo.Apply(ctx, weddingID, req.GroupID, req.Guests, req.Message)
	if err != nil {
		s.verifier.Restore(req.VerificationToken, req.GroupID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	s.log.Info().
		Int64("group_id", req.GroupID).
		Int("guests", len(req.Guests)).
		Msg("rsvp submitted")

	return &SubmitResponse{
		GroupID:         req.GroupID,
		GuestsUpdated:   len(req.Guests),
		RSVPSubmittedAt: submittedAt.Format(time.RFC3339),
	}, nil
}
