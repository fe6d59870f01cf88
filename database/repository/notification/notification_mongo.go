package notificationRepo

import (
	"context"
	"fmt"
	"time"

	"cleansync/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const opTimeout = 5 * time.Second

// MongoNotificationRepo implements NotificationRepository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a new instance of MongoNotificationRepo.
func NewMongoNotificationRepo(db *mongo.Database) NotificationRepository {
	return &MongoNotificationRepo{
		coll: db.Collection("notifications"),
	}
}

// Create inserts a new notification document.
func (repo *MongoNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}
	return nil
}

// ListByUser retrieves all notifications for a user, newest first.
func (repo *MongoNotificationRepo) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	for cursor.Next(ctx) {
		var n models.Notification
		if err := cursor.Decode(&n); err != nil {
			return nil, fmt.Errorf("error decoding notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return notifications, nil
}

// SetRead toggles the read flag of a notification owned by the user.
func (repo *MongoNotificationRepo) SetRead(ctx context.Context, userID, notificationID string, read bool) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"id": notificationID, "user_id": userID}
	update := bson.M{"$set": bson.M{"read": read}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating notification %s: %w", notificationID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("notification %s not found", notificationID)
	}
	return nil
}

// Delete removes a notification document owned by the user.
func (repo *MongoNotificationRepo) Delete(ctx context.Context, userID, notificationID string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": notificationID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("error deleting notification %s: %w", notificationID, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("notification %s not found", notificationID)
	}
	return nil
}
