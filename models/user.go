package models

import "time"

// User is a CleanSync account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	FullName     string    `bson:"full_name" json:"full_name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address      string    `bson:"address,omitempty" json:"address,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
