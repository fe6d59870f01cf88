package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"cleansync/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const opTimeout = 5 * time.Second

// Create inserts a new booking document.
func (repo *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its ID.
func (repo *MongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var booking models.Booking
	if err := repo.coll.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking); err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}
	return &booking, nil
}

// ListByUser retrieves all bookings owned by the given user, newest first.
func (repo *MongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

// UpdateScheduledAt patches the scheduled-instant text of a booking.
// Last write wins; there is no optimistic concurrency on booking documents.
func (repo *MongoBookingRepo) UpdateScheduledAt(ctx context.Context, bookingID, scheduledAt string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"id": bookingID}
	update := bson.M{"$set": bson.M{"scheduled_at": scheduledAt}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error rescheduling booking %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", bookingID)
	}
	return nil
}

// UpdateProgressStage patches the fulfilment stage label of a booking.
func (repo *MongoBookingRepo) UpdateProgressStage(ctx context.Context, bookingID, stage string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"id": bookingID}
	update := bson.M{"$set": bson.M{"progress_stage": stage}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating progress stage for booking %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", bookingID)
	}
	return nil
}

// Delete removes a booking record from the database.
func (repo *MongoBookingRepo) Delete(ctx context.Context, bookingID string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"id": bookingID}); err != nil {
		return fmt.Errorf("error deleting booking %s: %w", bookingID, err)
	}
	return nil
}
