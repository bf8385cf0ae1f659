// Package selection implements the tri-state guest selection semantics the
// admin list views are built on: a set of guest ids valid across both the
// flat and the grouped presentation, with full/partial selection queries
// driving aggregate checkboxes.
package selection

import "sort"

// Selection is a set of selected guest ids. It is a plain value owned by
// the caller; every operation is deterministic and free of I/O.
type Selection map[int64]struct{}

// New creates a selection containing the given ids
func New(ids ...int64) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether the id is selected
func (s Selection) Contains(id int64) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of selected ids
func (s Selection) Len() int {
	return len(s)
}

// Toggle flips membership of a single id
func (s Selection) Toggle(id int64) {
	if s.Contains(id) {
		delete(s, id)
	} else {
		s[id] = struct{}{}
	}
}

// ToggleAll implements the header checkbox: if every visible id is already
// selected, the visible ids are deselected; otherwise exactly the visible
// set becomes selected. Ids outside the visible set are never added, so a
// toggle under active filters cannot select hidden guests.
func (s Selection) ToggleAll(visible []int64) {
	if s.IsFullySelected(visible) {
		for _, id := range visible {
			delete(s, id)
		}
		return
	}
	for _, id := range visible {
		s[id] = struct{}{}
	}
}

// ToggleGroup applies the same full/empty semantics scoped to one group's
// member ids
func (s Selection) ToggleGroup(groupGuestIDs []int64) {
	s.ToggleAll(groupGuestIDs)
}

// IsFullySelected reports whether every id in the list is selected. An
// empty list is never fully selected.
func (s Selection) IsFullySelected(ids []int64) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if !s.Contains(id) {
			return false
		}
	}
	return true
}

// IsPartiallySelected reports whether some but not all of the ids are
// selected. Together with IsFullySelected it drives the tri-state
// checkbox; the two are never both true for the same list.
func (s Selection) IsPartiallySelected(ids []int64) bool {
	if len(ids) == 0 {
		return false
	}
	selected := 0
	for _, id := range ids {
		if s.Contains(id) {
			selected++
		}
	}
	return selected > 0 && selected < len(ids)
}

// Clear removes every id
func (s Selection) Clear() {
	for id := range s {
		delete(s, id)
	}
}

// IDs returns the selected ids in ascending order
func (s Selection) IDs() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
