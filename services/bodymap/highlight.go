package bodymap

import (
	"strings"

	"physioheal/models"
	"physioheal/services/pain"
)

// PartHighlight is the display state the diagram needs for one selected part.
type PartHighlight struct {
	PainLevel int
	Side      models.Side
}

// HighlightColors computes the fill color per diagram region for the selected
// parts. The stored side filters which of a part's regions light up; the pain
// level picks the color through the shared severity mapping.
func HighlightColors(selected map[pain.PartID]PartHighlight) map[string]string {
	colors := make(map[string]string)
	for part, hl := range selected {
		color := pain.SeverityColor(hl.PainLevel)
		for _, region := range regionsForSide(part, hl.Side) {
			colors[region] = color
		}
	}
	return colors
}

func regionsForSide(part pain.PartID, side models.Side) []string {
	regions := partRegions[part]
	switch side {
	case models.SideLeft:
		return filterRegions(regions, "right")
	case models.SideRight:
		return filterRegions(regions, "left")
	}
	return regions
}

func filterRegions(regions []string, exclude string) []string {
	var kept []string
	for _, r := range regions {
		if !strings.Contains(r, exclude) {
			kept = append(kept, r)
		}
	}
	return kept
}
