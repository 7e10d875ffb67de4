package wizard

import (
	"physioheal/models"
	"physioheal/services/pain"
)

// PartState is the per-part selection state on the pain-areas step. Side is
// set only for bilateral parts.
type PartState struct {
	Selected  bool
	PainLevel int
	Side      models.Side
}

// PartStateStore holds the selection state for every canonical body part.
// Mutations on unknown parts are no-ops.
type PartStateStore struct {
	states map[pain.PartID]PartState
}

// NewPartStateStore returns a store with every part at its default state:
// unselected, pain level 1, side "right" for bilateral parts.
func NewPartStateStore() *PartStateStore {
	states := make(map[pain.PartID]PartState, len(pain.Categories))
	for _, id := range pain.AllParts() {
		st := PartState{PainLevel: 1}
		if pain.Bilateral(id) {
			st.Side = models.SideRight
		}
		states[id] = st
	}
	return &PartStateStore{states: states}
}

// Get returns the state for a part.
func (s *PartStateStore) Get(id pain.PartID) (PartState, bool) {
	st, ok := s.states[id]
	return st, ok
}

// Toggle flips the part's selected flag, leaving pain level and side intact.
func (s *PartStateStore) Toggle(id pain.PartID) {
	st, ok := s.states[id]
	if !ok {
		return
	}
	st.Selected = !st.Selected
	s.states[id] = st
}

// SetPainLevel sets the part's pain level, clamped to [1,10].
func (s *PartStateStore) SetPainLevel(id pain.PartID, level int) {
	st, ok := s.states[id]
	if !ok {
		return
	}
	if level < 1 {
		level = 1
	} else if level > 10 {
		level = 10
	}
	st.PainLevel = level
	s.states[id] = st
}

// SetSide sets the side for a bilateral part. Non-bilateral parts never carry
// a side.
func (s *PartStateStore) SetSide(id pain.PartID, side models.Side) {
	st, ok := s.states[id]
	if !ok || !pain.Bilateral(id) || !side.Valid() {
		return
	}
	st.Side = side
	s.states[id] = st
}

// Selected returns the selected parts in display order.
func (s *PartStateStore) Selected() []pain.PartID {
	var parts []pain.PartID
	for _, id := range pain.AllParts() {
		if s.states[id].Selected {
			parts = append(parts, id)
		}
	}
	return parts
}

// Highlights returns the selected parts keyed for diagram highlighting.
func (s *PartStateStore) Highlights() map[pain.PartID]PartState {
	selected := make(map[pain.PartID]PartState)
	for id, st := range s.states {
		if st.Selected {
			selected[id] = st
		}
	}
	return selected
}
