package rsvp

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []string
}

func (s *recordingSender) Send(_ context.Context, phoneNumber, _ string) error {
	s.sent = append(s.sent, phoneNumber)
	return nil
}

func TestVerifier(t *testing.T) {
	ctx := context.Background()

	t.Run("issued token verifies once", func(t *testing.T) {
		sender := &recordingSender{}
		v := NewVerifier(sender, time.Minute)

		token, _, err := v.Issue(ctx, 7, []string{"+111", "+222"})
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, []string{"+111", "+222"}, sender.sent)

		require.NoError(t, v.Consume(token, 7))

		// Single use: the second consume fails
		assert.ErrorIs(t, v.Consume(token, 7), ErrTokenInvalid)
	})

	t.Run("token is bound to its group", func(t *testing.T) {
		v := NewVerifier(&recordingSender{}, time.Minute)

		token, _, err := v.Issue(ctx, 7, []string{"+111"})
		require.NoError(t, err)

		assert.ErrorIs(t, v.Consume(token, 8), ErrTokenInvalid)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		v := NewVerifier(&recordingSender{}, time.Minute)

		token, _, err := v.Issue(ctx, 7, []string{"+111"})
		require.NoError(t, err)

		v.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
		assert.ErrorIs(t, v.Consume(token, 7), ErrTokenExpired)
	})

	t.Run("empty and unknown tokens are invalid", func(t *testing.T) {
		v := NewVerifier(&recordingSender{}, time.Minute)

		assert.ErrorIs(t, v.Consume("", 7), ErrTokenInvalid)
		assert.ErrorIs(t, v.Consume("nope", 7), ErrTokenInvalid)
	})

	t.Run("restored token is good for exactly one more consume", func(t *testing.T) {
		v := NewVerifier(&recordingSender{}, time.Minute)

		token, _, err := v.Issue(ctx, 7, []string{"+111"})
		require.NoError(t, err)

		// A failed submission hands the token back
		require.NoError(t, v.Consume(token, 7))
		v.Restore(token, 7)

		require.NoError(t, v.Consume(token, 7))
		assert.ErrorIs(t, v.Consume(token, 7), ErrTokenInvalid)
	})

	t.Run("restore ignores unknown and unconsumed tokens", func(t *testing.T) {
		v := NewVerifier(&recordingSender{}, time.Minute)

		token, _, err := v.Issue(ctx, 7, []string{"+111"})
		require.NoError(t, err)

		v.Restore("nope", 7)
		v.Restore(token, 7)
		v.Restore(token, 8)

		require.NoError(t, v.Consume(token, 7))
	})

	t.Run("restore keeps the original expiry", func(t *testing.T) {
		v := NewVerifier(&recordingSender{}, time.Minute)

		token, _, err := v.Issue(ctx, 7, []string{"+111"})
		require.NoError(t, err)

		require.NoError(t, v.Consume(token, 7))
		v.Restore(token, 7)

		v.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
		assert.ErrorIs(t, v.Consume(token, 7), ErrTokenExpired)
	})
}

func TestLogSender(t *testing.T) {
	s := &LogSender{Log: zerolog.Nop()}
	assert.NoError(t, s.Send(context.Background(), "+111", "hello"))
}
