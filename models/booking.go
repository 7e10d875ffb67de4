package models

import (
	"fmt"
	"time"
)

// Side indicates which side of the body a bilateral part refers to.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
	SideBoth  Side = "both"
)

// Valid reports whether s is one of the recognized side values.
func (s Side) Valid() bool {
	switch s {
	case SideLeft, SideRight, SideBoth:
		return true
	}
	return false
}

// BookingStatus is the lifecycle state of a persisted booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// PersonalDetails holds the patient's contact information. All fields are
// required at submission time. Age travels as a string to match the wire
// format the intake form produces; the wizard validates it as an integer.
type PersonalDetails struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Age       string `bson:"age" json:"age"`
	Gender    string `bson:"gender" json:"gender"`
	Phone     string `bson:"phone" json:"phone"`
	Email     string `bson:"email" json:"email"`
	Address   string `bson:"address" json:"address"`
}

// BodyPartEntry is one selected pain location in a booking payload.
type BodyPartEntry struct {
	PartID    string `bson:"partId" json:"partId"`
	PainLevel int    `bson:"painLevel" json:"painLevel"`
	Side      Side   `bson:"side,omitempty" json:"side,omitempty"`
	Selected  bool   `bson:"selected" json:"selected"`
}

// PainDetails is the free-text portion of the intake form.
type PainDetails struct {
	Description       string `bson:"description" json:"description"`
	Duration          string `bson:"duration" json:"duration"`
	PreviousTreatment string `bson:"previousTreatment" json:"previousTreatment"`
	AdditionalNotes   string `bson:"additionalNotes" json:"additionalNotes"`
}

// BookingInput is the payload accepted by POST /api/bookings: a BookingRecord
// minus the server-generated id, status and timestamp.
type BookingInput struct {
	PersonalDetails    PersonalDetails     `bson:"personalDetails" json:"personalDetails"`
	BodyParts          []BodyPartEntry     `bson:"bodyParts" json:"bodyParts"`
	SelectedConditions map[string][]string `bson:"selectedConditions" json:"selectedConditions"`
	PainDetails        PainDetails         `bson:"painDetails" json:"painDetails"`
}

// BookingRecord is the canonical persisted submission. Records are immutable
// once stored; there is no update or delete path.
type BookingRecord struct {
	ID                 string              `bson:"id" json:"id"`
	PersonalDetails    PersonalDetails     `bson:"personalDetails" json:"personalDetails"`
	BodyParts          []BodyPartEntry     `bson:"bodyParts" json:"bodyParts"`
	SelectedConditions map[string][]string `bson:"selectedConditions" json:"selectedConditions"`
	PainDetails        PainDetails         `bson:"painDetails" json:"painDetails"`
	Status             BookingStatus       `bson:"status" json:"status"`
	CreatedAt          time.Time           `bson:"createdAt" json:"createdAt"`
}

// Validate enforces the schema-level constraints on an incoming booking.
// Failures here surface to API callers the same way any other persistence
// error does.
func (in BookingInput) Validate() error {
	required := map[string]string{
		"personalDetails.firstName": in.PersonalDetails.FirstName,
		"personalDetails.lastName":  in.PersonalDetails.LastName,
		"personalDetails.age":       in.PersonalDetails.Age,
		"personalDetails.gender":    in.PersonalDetails.Gender,
		"personalDetails.phone":     in.PersonalDetails.Phone,
		"personalDetails.email":     in.PersonalDetails.Email,
		"personalDetails.address":   in.PersonalDetails.Address,
		"painDetails.description":   in.PainDetails.Description,
		"painDetails.duration":      in.PainDetails.Duration,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("booking validation failed: %s is required", field)
		}
	}
	for i, part := range in.BodyParts {
		if part.PartID == "" {
			return fmt.Errorf("booking validation failed: bodyParts[%d].partId is required", i)
		}
		if part.PainLevel < 1 || part.PainLevel > 10 {
			return fmt.Errorf("booking validation failed: bodyParts[%d].painLevel must be in [1,10]", i)
		}
		if part.Side != "" && !part.Side.Valid() {
			return fmt.Errorf("booking validation failed: bodyParts[%d].side %q is not a valid side", i, part.Side)
		}
	}
	return nil
}
