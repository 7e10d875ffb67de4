package wizard

import (
	"regexp"
	"strconv"

	"physioheal/models"
)

// ValidationError reports a step-gate failure. It never reaches the network;
// the wizard stays on the current step and surfaces Field/Message inline.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

func validatePersonalDetails(pd models.PersonalDetails) error {
	fields := []struct {
		name  string
		value string
	}{
		{"firstName", pd.FirstName},
		{"lastName", pd.LastName},
		{"age", pd.Age},
		{"gender", pd.Gender},
		{"phone", pd.Phone},
		{"email", pd.Email},
		{"address", pd.Address},
	}
	for _, f := range fields {
		if f.value == "" {
			return &ValidationError{Field: f.name, Message: "please fill in all required fields"}
		}
	}

	if !emailPattern.MatchString(pd.Email) {
		return &ValidationError{Field: "email", Message: "please enter a valid email address"}
	}

	if !phonePattern.MatchString(pd.Phone) {
		return &ValidationError{Field: "phone", Message: "please enter a valid 10-digit phone number (numbers only)"}
	}

	age, err := strconv.Atoi(pd.Age)
	if err != nil || age < 0 || age > 120 {
		return &ValidationError{Field: "age", Message: "please enter a valid age"}
	}

	return nil
}

func (w *Wizard) validateStep(step Step) error {
	switch step {
	case StepPersonalInfo:
		return validatePersonalDetails(w.Personal)

	case StepPainAreas:
		if len(w.Parts.Selected()) == 0 {
			return &ValidationError{Field: "bodyParts", Message: "please select at least one area where you're experiencing pain"}
		}
		return nil

	case StepPainDescription:
		if w.Pain.Description == "" || w.Pain.Duration == "" {
			return &ValidationError{Field: "painDetails", Message: "please describe your pain and its duration"}
		}
		return nil
	}

	// Review step has no gate; confirming triggers submission.
	return nil
}
