package bookingRepo

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &MongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
