package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"ecomm-api/internal/models"
)

type mongoProductStore struct {
	collection *mongo.Collection
}

// NewMongoProductStore returns a ProductStore backed by the "products" collection.
func NewMongoProductStore(db *mongo.Database) ProductStore {
	return &mongoProductStore{collection: db.Collection("products")}
}

func (s *mongoProductStore) Insert(ctx context.Context, product models.Product) (models.Product, error) {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, product); err != nil {
		return models.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}
	return product, nil
}

func (s *mongoProductStore) FindByID(ctx context.Context, id string) (models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id cannot match any record.
		return models.Product{}, ErrNoRecord
	}

	var product models.Product
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Product{}, ErrNoRecord
		}
		return models.Product{}, fmt.Errorf("failed to find product: %w", err)
	}
	return product, nil
}

func (s *mongoProductStore) FindByOwner(ctx context.Context, ownerID string) ([]models.Product, error) {
	return s.find(ctx, bson.M{"userId": ownerID})
}

func (s *mongoProductStore) FindAll(ctx context.Context) ([]models.Product, error) {
	return s.find(ctx, bson.M{})
}

func (s *mongoProductStore) Update(ctx context.Context, id string, patch map[string]interface{}) (UpdateOutcome, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateOutcome{}, nil
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": patch})
	if err != nil {
		return UpdateOutcome{}, fmt.Errorf("failed to update product: %w", err)
	}
	return UpdateOutcome{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}

// Delete removes at most one record; a missing id yields a zero count, not an error.
func (s *mongoProductStore) Delete(ctx context.Context, id string) (DeleteOutcome, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return DeleteOutcome{}, nil
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return DeleteOutcome{}, fmt.Errorf("failed to delete product: %w", err)
	}
	return DeleteOutcome{DeletedCount: result.DeletedCount}, nil
}

// Search matches key case-insensitively against the product, company and
// category fields, across all owners.
func (s *mongoProductStore) Search(ctx context.Context, key string) ([]models.Product, error) {
	pattern := primitive.Regex{Pattern: key, Options: "i"}
	return s.find(ctx, bson.M{"$or": bson.A{
		bson.M{"product": pattern},
		bson.M{"company": pattern},
		bson.M{"category": pattern},
	}})
}

func (s *mongoProductStore) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("error decoding products: %w", err)
	}
	return products, nil
}
