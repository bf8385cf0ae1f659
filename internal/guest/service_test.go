package guest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lromero/guestdesk/internal/selection"
)

func TestResolveSelection(t *testing.T) {
	t.Run("repeated ids collapse to one snapshot entry", func(t *testing.T) {
		s := &Service{selections: selection.NewStore()}

		ids, err := s.resolveSelection(BulkSelection{GuestIDs: []int64{3, 1, 3, 2, 1}})
		require.NoError(t, err)
		assert.Equal(t, []int64{3, 1, 2}, ids)
	})

	t.Run("explicit ids win over the session selection", func(t *testing.T) {
		store := selection.NewStore()
		store.ToggleAll("sess", []int64{10, 11})
		s := &Service{selections: store}

		ids, err := s.resolveSelection(BulkSelection{SessionID: "sess", GuestIDs: []int64{7}})
		require.NoError(t, err)
		assert.Equal(t, []int64{7}, ids)
	})

	t.Run("falls back to the session selection", func(t *testing.T) {
		store := selection.NewStore()
		store.ToggleAll("sess", []int64{10, 11})
		s := &Service{selections: store}

		ids, err := s.resolveSelection(BulkSelection{SessionID: "sess"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{10, 11}, ids)
	})

	t.Run("nothing selected anywhere", func(t *testing.T) {
		s := &Service{selections: selection.NewStore()}

		_, err := s.resolveSelection(BulkSelection{SessionID: "sess"})
		assert.ErrorIs(t, err, ErrEmptySelection)
	})
}
