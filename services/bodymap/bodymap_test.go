package bodymap

import (
	"testing"

	"physioheal/models"
	"physioheal/services/pain"
)

func TestResolvePartID(t *testing.T) {
	tests := []struct {
		region string
		want   pain.PartID
	}{
		{"head", pain.PartNeck},
		{"left-knee", pain.PartKnee},
		{"right-knee", pain.PartKnee},
		{"knees", pain.PartKnee},
		{"lower-back", pain.PartHip},
		{"calves", pain.PartShin},
		{"stomach", pain.PartAbdomen},
		{"left-arm-forearm", pain.PartForearm},
	}
	for _, tt := range tests {
		got, ok := ResolvePartID(tt.region)
		if !ok {
			t.Errorf("ResolvePartID(%q) did not resolve", tt.region)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolvePartID(%q) = %q, want %q", tt.region, got, tt.want)
		}
	}
}

func TestResolvePartID_UnmappedRegion(t *testing.T) {
	for _, region := range []string{"", "left-ear", "tailbone"} {
		if part, ok := ResolvePartID(region); ok {
			t.Errorf("ResolvePartID(%q) resolved to %q, want no-op", region, part)
		}
	}
}

func TestResolvePartID_TotalOverRegionTable(t *testing.T) {
	for _, region := range RegionIDs() {
		part, ok := ResolvePartID(region)
		if !ok {
			t.Errorf("region %q did not resolve", region)
			continue
		}
		if _, ok := pain.CategoryFor(part); !ok {
			t.Errorf("region %q resolves to %q which has no taxonomy entry", region, part)
		}
	}
}

func TestHighlightColors_SideFilter(t *testing.T) {
	colors := HighlightColors(map[pain.PartID]PartHighlight{
		pain.PartKnee: {PainLevel: 7, Side: models.SideLeft},
	})

	if got := colors["left-knee"]; got != "#EF4444" {
		t.Errorf("left-knee color = %q, want severe red", got)
	}
	// Side-agnostic regions stay highlighted regardless of the side filter.
	if got := colors["knees"]; got != "#EF4444" {
		t.Errorf("knees color = %q, want severe red", got)
	}
	if _, ok := colors["right-knee"]; ok {
		t.Error("right-knee should not be highlighted for side=left")
	}
}

func TestHighlightColors_BothSides(t *testing.T) {
	colors := HighlightColors(map[pain.PartID]PartHighlight{
		pain.PartShoulder: {PainLevel: 2, Side: models.SideBoth},
	})
	for _, region := range []string{"left-shoulder", "right-shoulder"} {
		if got := colors[region]; got != "#EAB308" {
			t.Errorf("%s color = %q, want mild yellow", region, got)
		}
	}
}

func TestHighlightColors_NonBilateralPart(t *testing.T) {
	colors := HighlightColors(map[pain.PartID]PartHighlight{
		pain.PartBack: {PainLevel: 5},
	})
	if got := colors["back"]; got != "#F97316" {
		t.Errorf("back color = %q, want moderate orange", got)
	}
	if len(colors) != 1 {
		t.Errorf("expected exactly one highlighted region, got %d", len(colors))
	}
}
