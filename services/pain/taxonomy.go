package pain

// PartID identifies one canonical body part on the intake form.
type PartID string

const (
	PartNeck     PartID = "neck"
	PartShoulder PartID = "shoulder"
	PartBiceps   PartID = "biceps"
	PartElbow    PartID = "elbow"
	PartForearm  PartID = "forearm"
	PartWrist    PartID = "wrist"
	PartHand     PartID = "hand"
	PartChest    PartID = "chest"
	PartBack     PartID = "back"
	PartAbdomen  PartID = "abdomen"
	PartHip      PartID = "hip"
	PartThigh    PartID = "thigh"
	PartKnee     PartID = "knee"
	PartShin     PartID = "shin"
	PartAnkle    PartID = "ankle"
	PartFoot     PartID = "foot"
)

// Category maps a body part to its display name and the conditions a patient
// can report for it.
type Category struct {
	ID         PartID
	Name       string
	Conditions []string
}

// Categories is the static pain taxonomy keyed by body part.
var Categories = map[PartID]Category{
	PartNeck: {
		ID:   PartNeck,
		Name: "Neck",
		Conditions: []string{
			"Spasm",
			"Trigger point",
			"Radiculopathy",
			"Posture-related issues",
			"Tingling / Numbness",
		},
	},
	PartShoulder: {
		ID:   PartShoulder,
		Name: "Shoulder",
		Conditions: []string{
			"Decreased mobility",
			"Frozen shoulder (Adhesive capsulitis)",
			"Tendinitis",
			"Impingement syndrome",
			"Fracture",
			"Tingling",
		},
	},
	PartElbow: {
		ID:   PartElbow,
		Name: "Elbow",
		Conditions: []string{
			"Tennis elbow (Lateral epicondylitis)",
			"Golfer's elbow (Medial epicondylitis)",
			"Decreased mobility",
			"Student's elbow (Olecranon bursitis)",
			"Tingling",
		},
	},
	PartWrist: {
		ID:   PartWrist,
		Name: "Wrist",
		Conditions: []string{
			"CTS (Carpal Tunnel Syndrome)",
			"Tingling / Numbness",
			"Pain in fingers",
			"R/A pain (likely Repetitive Activity pain)",
		},
	},
	PartHip: {
		ID:   PartHip,
		Name: "Hip",
		Conditions: []string{
			"Replacement",
			"Pain",
			"Laxity",
			"Immobility",
			"Incontinence",
			"Sciatica",
		},
	},
	PartKnee: {
		ID:   PartKnee,
		Name: "Knee",
		Conditions: []string{
			"Replacement",
			"Pain / OA (Osteoarthritis)",
			"Ligament injury",
			"Shin pain",
			"Patellofemoral pain",
			"Patellar immobility",
		},
	},
	PartBack: {
		ID:   PartBack,
		Name: "Back",
		Conditions: []string{
			"Lower back pain",
			"Herniated disc",
			"Sciatica",
			"Muscle strain",
			"Spinal stenosis",
		},
	},
	PartChest: {
		ID:   PartChest,
		Name: "Chest",
		Conditions: []string{
			"Pain when breathing",
			"Muscle strain",
			"Costochondritis",
			"Tightness",
		},
	},
	PartAbdomen: {
		ID:   PartAbdomen,
		Name: "Abdomen",
		Conditions: []string{
			"Abdominal pain",
			"Muscle strain",
			"Cramps",
			"Digestive issues",
			"Weakness",
		},
	},
	PartAnkle: {
		ID:   PartAnkle,
		Name: "Ankle",
		Conditions: []string{
			"Sprain",
			"Achilles tendinitis",
			"Plantar fasciitis",
			"Fracture",
			"Instability",
		},
	},
	PartBiceps: {
		ID:   PartBiceps,
		Name: "Biceps",
		Conditions: []string{
			"Strain",
			"Tendonitis",
			"Rupture",
			"Pain",
		},
	},
	PartForearm: {
		ID:   PartForearm,
		Name: "Forearm",
		Conditions: []string{
			"Strain",
			"Pain",
			"Tightness",
			"Numbsess",
		},
	},
	PartHand: {
		ID:   PartHand,
		Name: "Hand",
		Conditions: []string{
			"Arthritis",
			"Carpal Tunnel",
			"Trigger Finger",
			"Pain",
			"Numbness",
		},
	},
	PartThigh: {
		ID:   PartThigh,
		Name: "Thigh",
		Conditions: []string{
			"Strain",
			"Bruise",
			"Pain",
			"Weakness",
		},
	},
	PartShin: {
		ID:   PartShin,
		Name: "Shin",
		Conditions: []string{
			"Shin Splints",
			"Stress Fracture",
			"Pain",
		},
	},
	PartFoot: {
		ID:   PartFoot,
		Name: "Foot",
		Conditions: []string{
			"Plantar Fasciitis",
			"Bunions",
			"Pain",
			"Numbness",
		},
	},
}

// allParts lists every body part in the order the intake form presents them.
var allParts = []PartID{
	PartNeck,
	PartShoulder,
	PartBiceps,
	PartElbow,
	PartForearm,
	PartWrist,
	PartHand,
	PartChest,
	PartBack,
	PartAbdomen,
	PartHip,
	PartThigh,
	PartKnee,
	PartShin,
	PartAnkle,
	PartFoot,
}

// bilateral marks the parts that carry a left/right/both side selection.
var bilateral = map[PartID]bool{
	PartShoulder: true,
	PartBiceps:   true,
	PartElbow:    true,
	PartForearm:  true,
	PartWrist:    true,
	PartHand:     true,
	PartHip:      true,
	PartThigh:    true,
	PartKnee:     true,
	PartShin:     true,
	PartAnkle:    true,
	PartFoot:     true,
}

// AllParts returns every canonical body part in display order.
func AllParts() []PartID {
	parts := make([]PartID, len(allParts))
	copy(parts, allParts)
	return parts
}

// CategoryFor looks up the taxonomy entry for a body part.
func CategoryFor(id PartID) (Category, bool) {
	c, ok := Categories[id]
	return c, ok
}

// Bilateral reports whether the part carries a side selection.
func Bilateral(id PartID) bool {
	return bilateral[id]
}
