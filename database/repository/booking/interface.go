package bookingRepo

import (
	"context"

	"physioheal/config"
	"physioheal/database"
	"physioheal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists intake submissions. Bookings are write-once:
// there is deliberately no update or delete.
type BookingRepository interface {
	Create(ctx context.Context, input models.BookingInput) (*models.BookingRecord, error)
	GetByID(ctx context.Context, id string) (*models.BookingRecord, error)
	GetAll(ctx context.Context) ([]models.BookingRecord, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.MongoDBName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
