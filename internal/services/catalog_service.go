package services

import (
	"context"

	"ecomm-api/internal/models"
	"ecomm-api/internal/repository"
)

// CatalogService implements the product operations and their owner scoping.
type CatalogService struct {
	Products repository.ProductStore
}

type ProductInput struct {
	Product  string `json:"product"`
	Price    string `json:"price"`
	Category string `json:"category"`
	Company  string `json:"company"`
	UserID   string `json:"userId"`
	Image    string `json:"image"`
}

// Create stores a new product tagged with its owner. Image stays the empty
// string when no file was supplied.
func (s *CatalogService) Create(ctx context.Context, in ProductInput) (models.Product, error) {
	return s.Products.Insert(ctx, models.Product{
		Product:  in.Product,
		Price:    in.Price,
		Category: in.Category,
		Company:  in.Company,
		UserID:   in.UserID,
		Image:    in.Image,
	})
}

// List returns every product for admins, and only the requester's own
// products otherwise. Ordering is insertion order.
func (s *CatalogService) List(ctx context.Context, requesterID string, isAdmin bool) ([]models.Product, error) {
	if isAdmin {
		return s.Products.FindAll(ctx)
	}
	return s.Products.FindByOwner(ctx, requesterID)
}

// Get returns repository.ErrNoRecord when nothing matches the id.
func (s *CatalogService) Get(ctx context.Context, id string) (models.Product, error) {
	return s.Products.FindByID(ctx, id)
}

// Update applies a partial field replacement without validating the patch keys.
func (s *CatalogService) Update(ctx context.Context, id string, patch map[string]interface{}) (repository.UpdateOutcome, error) {
	return s.Products.Update(ctx, id, patch)
}

func (s *CatalogService) Delete(ctx context.Context, id string) (repository.DeleteOutcome, error) {
	return s.Products.Delete(ctx, id)
}

// Search matches across all owners regardless of the caller, unlike List.
// This mirrors the behavior the existing frontend depends on.
func (s *CatalogService) Search(ctx context.Context, key string) ([]models.Product, error) {
	return s.Products.Search(ctx, key)
}
