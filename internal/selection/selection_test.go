package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggle(t *testing.T) {
	s := New()

	s.Toggle(1)
	assert.True(t, s.Contains(1))

	s.Toggle(1)
	assert.False(t, s.Contains(1))
	assert.Equal(t, 0, s.Len())
}

func TestToggleAll(t *testing.T) {
	visible := []int64{1, 2, 3}

	t.Run("selects exactly the visible set", func(t *testing.T) {
		s := New()
		s.ToggleAll(visible)
		assert.Equal(t, []int64{1, 2, 3}, s.IDs())
	})

	t.Run("clears when fully selected", func(t *testing.T) {
		s := New(1, 2, 3)
		s.ToggleAll(visible)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("partial selection becomes full", func(t *testing.T) {
		s := New(2)
		s.ToggleAll(visible)
		assert.Equal(t, []int64{1, 2, 3}, s.IDs())
	})

	t.Run("never selects ids outside the visible set", func(t *testing.T) {
		s := New(99)
		s.ToggleAll(visible)
		assert.Equal(t, []int64{1, 2, 3, 99}, s.IDs())

		// 99 stays selected but nothing beyond visible+existing appears
		s.ToggleAll(visible)
		assert.Equal(t, []int64{99}, s.IDs())
	})

	t.Run("double toggle restores the state restricted to the list", func(t *testing.T) {
		s := New(2, 50)
		s.ToggleAll(visible) // partial -> full
		s.ToggleAll(visible) // full -> none of visible
		assert.False(t, s.Contains(1))
		assert.False(t, s.Contains(2))
		assert.False(t, s.Contains(3))
		assert.True(t, s.Contains(50))
	})

	t.Run("empty visible list is a no-op", func(t *testing.T) {
		s := New(7)
		s.ToggleAll(nil)
		assert.Equal(t, []int64{7}, s.IDs())
	})
}

func TestToggleGroup(t *testing.T) {
	s := New(10)

	s.ToggleGroup([]int64{4, 5})
	assert.True(t, s.IsFullySelected([]int64{4, 5}))
	assert.True(t, s.Contains(10))

	s.ToggleGroup([]int64{4, 5})
	assert.False(t, s.Contains(4))
	assert.False(t, s.Contains(5))
}

func TestTriState(t *testing.T) {
	ids := []int64{1, 2, 3}

	t.Run("empty list is neither full nor partial", func(t *testing.T) {
		s := New(1)
		assert.False(t, s.IsFullySelected(nil))
		assert.False(t, s.IsPartiallySelected(nil))
	})

	t.Run("full and partial are mutually exclusive", func(t *testing.T) {
		cases := []Selection{
			New(),        // none
			New(1),       // partial
			New(1, 2),    // partial
			New(1, 2, 3), // full
			New(1, 2, 3, 4),
		}
		for _, s := range cases {
			full := s.IsFullySelected(ids)
			partial := s.IsPartiallySelected(ids)
			assert.False(t, full && partial, "selection %v", s.IDs())
		}
	})

	t.Run("full selection", func(t *testing.T) {
		s := New(1, 2, 3)
		assert.True(t, s.IsFullySelected(ids))
		assert.False(t, s.IsPartiallySelected(ids))
	})

	t.Run("partial selection", func(t *testing.T) {
		s := New(2)
		assert.False(t, s.IsFullySelected(ids))
		assert.True(t, s.IsPartiallySelected(ids))
	})
}

func TestClear(t *testing.T) {
	s := New(1, 2, 3)
	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestStore(t *testing.T) {
	t.Run("sessions are independent", func(t *testing.T) {
		st := NewStore()
		st.Toggle("a", 1)
		st.Toggle("b", 2)

		assert.Equal(t, []int64{1}, st.Snapshot("a"))
		assert.Equal(t, []int64{2}, st.Snapshot("b"))
	})

	t.Run("clear empties only one session", func(t *testing.T) {
		st := NewStore()
		st.ToggleAll("a", []int64{1, 2})
		st.Toggle("b", 3)

		st.Clear("a")
		assert.Empty(t, st.Snapshot("a"))
		assert.Equal(t, []int64{3}, st.Snapshot("b"))
	})

	t.Run("state reports tri-state", func(t *testing.T) {
		st := NewStore()
		st.Toggle("a", 1)

		full, partial := st.State("a", []int64{1, 2})
		assert.False(t, full)
		assert.True(t, partial)

		st.Toggle("a", 2)
		full, partial = st.State("a", []int64{1, 2})
		assert.True(t, full)
		assert.False(t, partial)
	})
}
