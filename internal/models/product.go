package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product belongs to the user whose id is in UserID. Ownership is a
// convention enforced by the catalog queries, not a database constraint.
type Product struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Product  string             `bson:"product" json:"product"`
	Price    string             `bson:"price" json:"price"`
	Category string             `bson:"category" json:"category"`
	UserID   string             `bson:"userId" json:"userId"`
	Company  string             `bson:"company" json:"company"`
	Image    string             `bson:"image" json:"image"`
}
