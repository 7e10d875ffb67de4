package bookingRepo

import (
	"context"
	"time"

	"physioheal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create validates and inserts a new booking, filling in the generated id,
// default status and creation timestamp.
func (r *mongoBookingRepo) Create(ctx context.Context, input models.BookingInput) (*models.BookingRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	record := models.BookingRecord{
		ID:                 uuid.New().String(),
		PersonalDetails:    input.PersonalDetails,
		BodyParts:          input.BodyParts,
		SelectedConditions: input.SelectedConditions,
		PainDetails:        input.PainDetails,
		Status:             models.StatusPending,
		CreatedAt:          time.Now(),
	}

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByID returns a booking by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.BookingRecord, error) {
	var record models.BookingRecord
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetAll fetches every booking, newest first.
func (r *mongoBookingRepo) GetAll(ctx context.Context) ([]models.BookingRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.BookingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
