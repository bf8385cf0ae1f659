package selection

import "sync"

// Store keeps one Selection per admin session so bulk operations can act
// on the selection built up across requests. Sessions are in-memory only;
// losing them on restart just means nothing is ticked.
type Store struct {
	mu       sync.Mutex
	sessions map[string]Selection
}

// NewStore creates an empty selection store
func NewStore() *Store {
	return &Store{sessions: make(map[string]Selection)}
}

func (st *Store) session(id string) Selection {
	s, ok := st.sessions[id]
	if !ok {
		s = New()
		st.sessions[id] = s
	}
	return s
}

// Toggle flips one guest id in the session's selection and returns the
// resulting id set
func (st *Store) Toggle(sessionID string, guestID int64) []int64 {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := st.session(sessionID)
	s.Toggle(guestID)
	return s.IDs()
}

// ToggleAll applies header-checkbox semantics over the visible ids
func (st *Store) ToggleAll(sessionID string, visible []int64) []int64 {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := st.session(sessionID)
	s.ToggleAll(visible)
	return s.IDs()
}

// ToggleGroup applies group-checkbox semantics over one group's member ids
func (st *Store) ToggleGroup(sessionID string, groupGuestIDs []int64) []int64 {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := st.session(sessionID)
	s.ToggleGroup(groupGuestIDs)
	return s.IDs()
}

// Snapshot returns the session's selected ids at this instant. Bulk
// operations act on the snapshot, not on the live selection.
func (st *Store) Snapshot(sessionID string) []int64 {
	st.mu.Lock()
	defer st.mu.Unlock()

	return st.session(sessionID).IDs()
}

// State reports the tri-state of a candidate id list against the session's
// selection
func (st *Store) State(sessionID string, ids []int64) (full, partial bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := st.session(sessionID)
	return s.IsFullySelected(ids), s.IsPartiallySelected(ids)
}

// Clear empties the session's selection. Called after a bulk operation
// completes or on explicit deselect-all.
func (st *Store) Clear(sessionID string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.sessions, sessionID)
}
