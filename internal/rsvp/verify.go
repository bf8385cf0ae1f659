package rsvp

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Verification errors. Both are retryable from the caller's point of view:
// requesting a fresh token and resubmitting is always legal.
var (
	ErrTokenInvalid = errors.New("verification token is invalid")
	ErrTokenExpired = errors.New("verification token has expired")
)

// SMSSender delivers the one-time code to the group's phone numbers. The
// actual transport (WhatsApp, SMS gateway) lives outside this service.
type SMSSender interface {
	Send(ctx context.Context, phoneNumber, message string) error
}

// LogSender stands in for a real SMS transport in development: it logs the
// message instead of delivering it.
type LogSender struct {
	Log zerolog.Logger
}

// Send logs the outgoing verification message
func (s *LogSender) Send(_ context.Context, phoneNumber, message string) error {
	s.Log.Info().
		Str("phone_number", phoneNumber).
		Str("message", message).
		Msg("verification message (log transport)")
	return nil
}

type issuedToken struct {
	groupID   int64
	expiresAt time.Time
	used      bool
}

// Verifier issues single-use verification tokens for RSVP submissions and
// consumes them on submit. Tokens are bound to a group and expire.
type Verifier struct {
	mu     sync.Mutex
	tokens map[string]issuedToken

	sender SMSSender
	ttl    time.Duration
	now    func() time.Time
}

// NewVerifier creates a verifier with the given token lifetime
func NewVerifier(sender SMSSender, ttl time.Duration) *Verifier {
	return &Verifier{
		tokens: make(map[string]issuedToken),
		sender: sender,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue sends a verification message to every phone number of the group
// and returns the token the submission must present.
func (v *Verifier) Issue(ctx context.Context, groupID int64, phoneNumbers []string) (token string, expiresAt time.Time, err error) {
	token = uuid.NewString()
	expiresAt = v.now().Add(v.ttl)

	for _, phone := range phoneNumbers {
		if err := v.sender.Send(ctx, phone, "Your RSVP verification code: "+token); err != nil {
			return "", time.Time{}, err
		}
	}

	v.mu.Lock()
	v.tokens[token] = issuedToken{groupID: groupID, expiresAt: expiresAt}
	v.mu.Unlock()

	return token, expiresAt, nil
}

// Consume validates and invalidates a token. A token is good for exactly
// one successful check against the group it was issued for.
func (v *Verifier) Consume(token string, groupID int64) error {
	if token == "" {
		return ErrTokenInvalid
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	issued, ok := v.tokens[token]
	if !ok || issued.groupID != groupID || issued.used {
		return ErrTokenInvalid
	}

	if v.now().After(issued.expiresAt) {
		delete(v.tokens, token)
		return ErrTokenExpired
	}

	issued.used = true
	v.tokens[token] = issued
	return nil
}

// Restore puts a consumed token back in play with its original expiry.
// Callers invoke it when the submission failed after the token was
// consumed, so a transient write failure does not force a fresh
// verification round. Unknown or unconsumed tokens are a no-op.
func (v *Verifier) Restore(token string, groupID int64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	issued, ok := v.tokens[token]
	if !ok || issued.groupID != groupID || !issued.used {
		return
	}

	issued.used = false
	v.tokens[token] = issued
}
