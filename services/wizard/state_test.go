package wizard

import (
	"reflect"
	"testing"

	"physioheal/models"
	"physioheal/services/pain"
)

func TestPartStateStore_Defaults(t *testing.T) {
	store := NewPartStateStore()

	neck, ok := store.Get(pain.PartNeck)
	if !ok {
		t.Fatal("neck missing from default states")
	}
	if neck.Selected || neck.PainLevel != 1 || neck.Side != "" {
		t.Errorf("neck default = %+v, want unselected, level 1, no side", neck)
	}

	knee, _ := store.Get(pain.PartKnee)
	if knee.Side != models.SideRight {
		t.Errorf("knee default side = %q, want %q", knee.Side, models.SideRight)
	}

	if parts := store.Selected(); len(parts) != 0 {
		t.Errorf("fresh store has selected parts: %v", parts)
	}
}

func TestPartStateStore_DoubleToggleIdempotent(t *testing.T) {
	store := NewPartStateStore()
	store.SetPainLevel(pain.PartKnee, 7)
	store.SetSide(pain.PartKnee, models.SideLeft)
	before, _ := store.Get(pain.PartKnee)

	store.Toggle(pain.PartKnee)
	mid, _ := store.Get(pain.PartKnee)
	if !mid.Selected {
		t.Fatal("toggle did not select knee")
	}
	if mid.PainLevel != 7 || mid.Side != models.SideLeft {
		t.Errorf("toggle changed level/side: %+v", mid)
	}

	store.Toggle(pain.PartKnee)
	after, _ := store.Get(pain.PartKnee)
	if after != before {
		t.Errorf("double toggle: got %+v, want %+v", after, before)
	}
}

func TestPartStateStore_PainLevelClamped(t *testing.T) {
	store := NewPartStateStore()

	store.SetPainLevel(pain.PartBack, 15)
	if st, _ := store.Get(pain.PartBack); st.PainLevel != 10 {
		t.Errorf("level after SetPainLevel(15) = %d, want 10", st.PainLevel)
	}

	store.SetPainLevel(pain.PartBack, -2)
	if st, _ := store.Get(pain.PartBack); st.PainLevel != 1 {
		t.Errorf("level after SetPainLevel(-2) = %d, want 1", st.PainLevel)
	}
}

func TestPartStateStore_SideOnlyForBilateralParts(t *testing.T) {
	store := NewPartStateStore()

	store.SetSide(pain.PartNeck, models.SideLeft)
	if st, _ := store.Get(pain.PartNeck); st.Side != "" {
		t.Errorf("neck accepted a side: %q", st.Side)
	}

	store.SetSide(pain.PartKnee, models.SideBoth)
	if st, _ := store.Get(pain.PartKnee); st.Side != models.SideBoth {
		t.Errorf("knee side = %q, want %q", st.Side, models.SideBoth)
	}

	store.SetSide(pain.PartKnee, "up")
	if st, _ := store.Get(pain.PartKnee); st.Side != models.SideBoth {
		t.Errorf("invalid side overwrote knee side: %q", st.Side)
	}
}

func TestPartStateStore_UnknownPartNoOp(t *testing.T) {
	store := NewPartStateStore()
	store.Toggle("tail")
	store.SetPainLevel("tail", 5)
	store.SetSide("tail", models.SideLeft)
	if parts := store.Selected(); len(parts) != 0 {
		t.Errorf("unknown part mutations selected something: %v", parts)
	}
}

func TestConditionSet_Toggle(t *testing.T) {
	cs := make(ConditionSet)

	cs.Toggle(pain.PartKnee, "Ligament injury")
	cs.Toggle(pain.PartKnee, "Shin pain")
	if got := cs.Get(pain.PartKnee); !reflect.DeepEqual(got, []string{"Ligament injury", "Shin pain"}) {
		t.Errorf("conditions = %v", got)
	}

	// Toggling again removes, preserving order of the rest.
	cs.Toggle(pain.PartKnee, "Ligament injury")
	if got := cs.Get(pain.PartKnee); !reflect.DeepEqual(got, []string{"Shin pain"}) {
		t.Errorf("conditions after removal = %v", got)
	}
}

func TestConditionSet_ToWire(t *testing.T) {
	cs := make(ConditionSet)
	cs.Toggle(pain.PartKnee, "Ligament injury")
	wire := cs.ToWire()
	if !reflect.DeepEqual(wire["knee"], []string{"Ligament injury"}) {
		t.Errorf("wire mapping = %v", wire)
	}
}
