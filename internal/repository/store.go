package repository

import (
	"context"
	"errors"

	"ecomm-api/internal/models"
)

var (
	// ErrUserNotFound means no user matched the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrNoRecord means no product matched the given id.
	ErrNoRecord = errors.New("no record found")
)

// UserStore holds user records. Services depend on this interface,
// not on the MongoDB implementation.
type UserStore interface {
	Insert(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByCredentials(ctx context.Context, email, password string) (models.User, error)
}

// UpdateOutcome reports how many records an update matched and changed.
type UpdateOutcome struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteOutcome reports how many records a delete removed.
type DeleteOutcome struct {
	DeletedCount int64 `json:"deletedCount"`
}

// ProductStore holds product records.
type ProductStore interface {
	Insert(ctx context.Context, product models.Product) (models.Product, error)
	FindByID(ctx context.Context, id string) (models.Product, error)
	FindByOwner(ctx context.Context, ownerID string) ([]models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) (UpdateOutcome, error)
	Delete(ctx context.Context, id string) (DeleteOutcome, error)
	Search(ctx context.Context, key string) ([]models.Product, error)
}
