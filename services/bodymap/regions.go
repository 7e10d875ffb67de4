package bodymap

import "physioheal/services/pain"

// regionToPart maps the fine-grained diagram region ids to canonical body
// parts. Many regions fold into one part; region ids encode laterality but a
// click always resolves to the side-agnostic part.
var regionToPart = map[string]pain.PartID{
	// Head/Neck
	"head": pain.PartNeck,

	// Shoulders
	"left-shoulder":  pain.PartShoulder,
	"right-shoulder": pain.PartShoulder,

	// Arms
	"left-arm-bicep":    pain.PartBiceps,
	"right-arm-bicep":   pain.PartBiceps,
	"left-arm-elbow":    pain.PartElbow,
	"right-arm-elbow":   pain.PartElbow,
	"left-arm-forearm":  pain.PartForearm,
	"right-arm-forearm": pain.PartForearm,

	// Hands
	"left-hand":  pain.PartHand,
	"right-hand": pain.PartHand,
	"hands":      pain.PartHand,

	// Torso
	"chest":      pain.PartChest,
	"stomach":    pain.PartAbdomen,
	"back":       pain.PartBack,
	"lower-back": pain.PartHip, // lower back/glutes fold into the hip category

	// Legs
	"left-hip":    pain.PartHip,
	"right-hip":   pain.PartHip,
	"left-thigh":  pain.PartThigh,
	"right-thigh": pain.PartThigh,
	"thighs":      pain.PartThigh,
	"left-knee":   pain.PartKnee,
	"right-knee":  pain.PartKnee,
	"knees":       pain.PartKnee,
	"left-shin":   pain.PartShin,
	"right-shin":  pain.PartShin,
	"calves":      pain.PartShin, // calves fold into the shin category (lower leg)
	"left-ankle":  pain.PartAnkle,
	"right-ankle": pain.PartAnkle,
	"ankles":      pain.PartAnkle,
	"left-foot":   pain.PartFoot,
	"right-foot":  pain.PartFoot,
	"feet":        pain.PartFoot,
}

// partRegions is the reverse mapping used for highlighting. Wrist shares the
// forearm visuals; the diagram has no separate wrist region.
var partRegions = map[pain.PartID][]string{
	pain.PartNeck:     {"head"},
	pain.PartShoulder: {"left-shoulder", "right-shoulder"},
	pain.PartChest:    {"chest"},
	pain.PartBiceps:   {"left-arm-bicep", "right-arm-bicep"},
	pain.PartElbow:    {"left-arm-elbow", "right-arm-elbow"},
	pain.PartForearm:  {"left-arm-forearm", "right-arm-forearm"},
	pain.PartWrist:    {"left-arm-forearm", "right-arm-forearm"},
	pain.PartHand:     {"left-hand", "right-hand", "hands"},
	pain.PartBack:     {"back"},
	pain.PartAbdomen:  {"stomach"},
	pain.PartHip:      {"left-hip", "right-hip", "lower-back"},
	pain.PartThigh:    {"left-thigh", "right-thigh", "thighs"},
	pain.PartKnee:     {"left-knee", "right-knee", "knees"},
	pain.PartShin:     {"left-shin", "right-shin", "calves"},
	pain.PartAnkle:    {"left-ankle", "right-ankle", "ankles"},
	pain.PartFoot:     {"left-foot", "right-foot", "feet"},
}

// RegionIDs returns every region id the diagram defines.
func RegionIDs() []string {
	ids := make([]string, 0, len(regionToPart))
	for id := range regionToPart {
		ids = append(ids, id)
	}
	return ids
}
