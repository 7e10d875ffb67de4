package wizard

import "physioheal/services/pain"

// ConditionSet tracks the conditions a patient ticked per body part. Toggle
// semantics keep the set duplicate-free while preserving insertion order.
//
// Conditions are not pruned when a part is deselected; the payload builder
// only emits selected parts, so entries for deselected parts simply ride
// along, matching the behavior the form has always had.
type ConditionSet map[pain.PartID][]string

// Toggle adds the condition for the part, or removes it if already present.
func (cs ConditionSet) Toggle(part pain.PartID, condition string) {
	current := cs[part]
	for i, c := range current {
		if c == condition {
			cs[part] = append(current[:i:i], current[i+1:]...)
			return
		}
	}
	cs[part] = append(current, condition)
}

// Get returns the conditions recorded for a part.
func (cs ConditionSet) Get(part pain.PartID) []string {
	return cs[part]
}

// ToWire converts the set to the wire-format mapping.
func (cs ConditionSet) ToWire() map[string][]string {
	wire := make(map[string][]string, len(cs))
	for part, conditions := range cs {
		wire[string(part)] = conditions
	}
	return wire
}
