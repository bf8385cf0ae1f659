package group

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lromero/guestdesk/internal/host"
)

func TestCanonicalRefs(t *testing.T) {
	names := host.Names{A: "Alex", B: "Jamie"}

	t.Run("only canonical refs survive", func(t *testing.T) {
		refs, dropped := canonicalRefs([]string{"alexx", "Jorge", "host_b"}, names)

		assert.Equal(t, []host.Ref{host.RefA, host.RefB}, refs)
		assert.Equal(t, []string{"Jorge"}, dropped)
		for _, r := range refs {
			assert.True(t, r.IsValid())
		}
	})

	t.Run("empty input stores an empty set, not nil", func(t *testing.T) {
		refs, dropped := canonicalRefs([]string{}, names)

		assert.Equal(t, []host.Ref{}, refs)
		assert.Empty(t, dropped)
	})

	t.Run("repeats collapse to one ref", func(t *testing.T) {
		refs, _ := canonicalRefs([]string{"Alex", "alex", "host_a"}, names)

		assert.Equal(t, []host.Ref{host.RefA}, refs)
	})
}
