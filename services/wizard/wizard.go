package wizard

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"physioheal/models"
	"physioheal/services/bodymap"
	"physioheal/services/pain"
)

// Step is the wizard's position in the intake flow.
type Step int

const (
	StepPersonalInfo Step = iota + 1
	StepPainAreas
	StepPainDescription
	StepReviewConfirm
)

// ErrSubmissionInFlight is returned when Next is called while a previous
// submission has not completed yet.
var ErrSubmissionInFlight = errors.New("wizard: submission already in flight")

// BookingAPI is the remote surface the wizard submits through.
type BookingAPI interface {
	CreateBooking(ctx context.Context, input models.BookingInput, idempotencyKey string) (*models.BookingRecord, error)
}

// Wizard drives the 4-step intake flow. All state belongs to a single flow
// instance and is mutated from the UI's event loop; the only operation that
// suspends is the final submission.
type Wizard struct {
	api BookingAPI

	step      Step
	submitted bool
	busy      bool

	Personal   models.PersonalDetails
	Parts      *PartStateStore
	Conditions ConditionSet
	Pain       models.PainDetails

	// idemKey stays constant across retries of the same booking so a retried
	// submit after a transient failure cannot create a duplicate record.
	idemKey string
	record  *models.BookingRecord
}

// New returns a wizard at step 1 with all fields at their defaults.
func New(api BookingAPI) *Wizard {
	w := &Wizard{api: api}
	w.Reset()
	return w
}

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// Submitted reports whether the booking was accepted by the server.
func (w *Wizard) Submitted() bool { return w.submitted }

// Busy reports whether a submission is in flight. The confirm control is
// disabled while this is true.
func (w *Wizard) Busy() bool { return w.busy }

// Record returns the persisted booking after a successful submission.
func (w *Wizard) Record() *models.BookingRecord { return w.record }

// IdempotencyKey returns the token sent with the current booking attempt.
func (w *Wizard) IdempotencyKey() string { return w.idemKey }

// Next validates the current step and advances, or on the review step submits
// the booking. A gate failure or submission error leaves the step and all
// entered values unchanged.
func (w *Wizard) Next(ctx context.Context) error {
	if w.submitted {
		return nil
	}
	if w.busy {
		return ErrSubmissionInFlight
	}
	if err := w.validateStep(w.step); err != nil {
		return err
	}
	if w.step < StepReviewConfirm {
		w.step++
		return nil
	}
	return w.submit(ctx)
}

// Prev moves back one step. It is unguarded: backward navigation through
// invalid data is always allowed.
func (w *Wizard) Prev() {
	if !w.submitted && w.step > StepPersonalInfo {
		w.step--
	}
}

// HandleRegionClick resolves a diagram region click to a body part and
// toggles it. Clicks on unmapped regions change nothing.
func (w *Wizard) HandleRegionClick(regionID string) {
	if part, ok := bodymap.ResolvePartID(regionID); ok {
		w.Parts.Toggle(part)
	}
}

// HighlightColors returns the diagram fill colors for the current selection.
func (w *Wizard) HighlightColors() map[string]string {
	selected := make(map[pain.PartID]bodymap.PartHighlight)
	for id, st := range w.Parts.Highlights() {
		selected[id] = bodymap.PartHighlight{PainLevel: st.PainLevel, Side: st.Side}
	}
	return bodymap.HighlightColors(selected)
}

// BuildInput assembles the submission payload from the current state. Only
// parts with Selected=true are included.
func (w *Wizard) BuildInput() models.BookingInput {
	var parts []models.BodyPartEntry
	for _, id := range w.Parts.Selected() {
		st, _ := w.Parts.Get(id)
		parts = append(parts, models.BodyPartEntry{
			PartID:    string(id),
			PainLevel: st.PainLevel,
			Side:      st.Side,
			Selected:  true,
		})
	}
	return models.BookingInput{
		PersonalDetails:    w.Personal,
		BodyParts:          parts,
		SelectedConditions: w.Conditions.ToWire(),
		PainDetails:        w.Pain,
	}
}

func (w *Wizard) submit(ctx context.Context) error {
	w.busy = true
	defer func() { w.busy = false }()

	record, err := w.api.CreateBooking(ctx, w.BuildInput(), w.idemKey)
	if err != nil {
		// Stay on the review step; the user may retry with the same key.
		return err
	}
	w.record = record
	w.submitted = true
	return nil
}

// Reset returns the wizard to step 1 with everything at defaults, ready for
// another booking. A fresh idempotency key marks the new booking attempt.
func (w *Wizard) Reset() {
	w.step = StepPersonalInfo
	w.submitted = false
	w.busy = false
	w.Personal = models.PersonalDetails{}
	w.Parts = NewPartStateStore()
	w.Conditions = make(ConditionSet)
	w.Pain = models.PainDetails{}
	w.idemKey = uuid.New().String()
	w.record = nil
}
