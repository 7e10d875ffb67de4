package bodymap

import "physioheal/services/pain"

// ResolvePartID translates a diagram region click into a canonical body part.
// Clicks on unmapped regions resolve to nothing and must be treated as no-ops
// by the caller.
func ResolvePartID(regionID string) (pain.PartID, bool) {
	part, ok := regionToPart[regionID]
	return part, ok
}
