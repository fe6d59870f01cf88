package userRepo

import (
	"context"
	"fmt"
	"time"

	"cleansync/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const opTimeout = 5 * time.Second

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new instance of MongoUserRepo.
func NewMongoUserRepo(db *mongo.Database) UserRepository {
	return &MongoUserRepo{
		coll: db.Collection("accounts"),
	}
}

// Create inserts a new account document.
func (repo *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID.
func (repo *MongoUserRepo) GetByID(ctx context.Context, userID string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var user models.User
	if err := repo.coll.FindOne(ctx, bson.M{"id": userID}).Decode(&user); err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return &user, nil
}

// GetByEmail retrieves an account by email address.
func (repo *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var user models.User
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return &user, nil
}

// Update replaces the mutable profile fields of an account.
func (repo *MongoUserRepo) Update(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"id": user.ID}
	update := bson.M{"$set": bson.M{
		"full_name": user.FullName,
		"phone":     user.Phone,
		"address":   user.Address,
	}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating user %s: %w", user.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s not found", user.ID)
	}
	return nil
}

// UpdateTokenHash stores the hash of the currently issued auth token.
func (repo *MongoUserRepo) UpdateTokenHash(ctx context.Context, userID, tokenHash string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"id": userID}
	update := bson.M{"$set": bson.M{"token_hash": tokenHash}}
	if _, err := repo.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("error updating token hash for user %s: %w", userID, err)
	}
	return nil
}

// UpdateFCMToken stores the push registration token for an account.
func (repo *MongoUserRepo) UpdateFCMToken(ctx context.Context, userID, fcmToken string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"id": userID}
	update := bson.M{"$set": bson.M{"fcm_token": fcmToken}}
	if _, err := repo.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("error updating FCM token for user %s: %w", userID, err)
	}
	return nil
}

// Delete removes an account document.
func (repo *MongoUserRepo) Delete(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"id": userID}); err != nil {
		return fmt.Errorf("error deleting user %s: %w", userID, err)
	}
	return nil
}
