package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is stored as-is on registration; the password is plaintext for
// compatibility with the existing frontend and never serialized to JSON.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"`
	IsAdmin  bool               `bson:"isAdmin" json:"isAdmin"`
}
