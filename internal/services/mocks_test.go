package services

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecomm-api/internal/models"
	"ecomm-api/internal/repository"
)

type memUserStore struct {
	mu    sync.Mutex
	users []models.User

	credentialLookups int
	insertErr         error
}

func (s *memUserStore) Insert(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insertErr != nil {
		return models.User{}, s.insertErr
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users = append(s.users, user)
	return user, nil
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repository.ErrUserNotFound
}

func (s *memUserStore) FindByCredentials(_ context.Context, email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentialLookups++
	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}
	return models.User{}, repository.ErrUserNotFound
}

type memProductStore struct {
	mu       sync.Mutex
	products []models.Product
}

func (s *memProductStore) Insert(_ context.Context, product models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	s.products = append(s.products, product)
	return product, nil
}

func (s *memProductStore) FindByID(_ context.Context, id string) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID.Hex() == id {
			return p, nil
		}
	}
	return models.Product{}, repository.ErrNoRecord
}

func (s *memProductStore) FindByOwner(_ context.Context, ownerID string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owned := []models.Product{}
	for _, p := range s.products {
		if p.UserID == ownerID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

func (s *memProductStore) FindAll(_ context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product{}, s.products...), nil
}

func (s *memProductStore) Update(_ context.Context, id string, patch map[string]interface{}) (repository.UpdateOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID.Hex() != id {
			continue
		}
		modified := int64(0)
		for key, value := range patch {
			str, _ := value.(string)
			if applyField(&s.products[i], key, str) {
				modified = 1
			}
		}
		return repository.UpdateOutcome{MatchedCount: 1, ModifiedCount: modified}, nil
	}
	return repository.UpdateOutcome{}, nil
}

func applyField(p *models.Product, key, value string) bool {
	var field *string
	switch key {
	case "product":
		field = &p.Product
	case "price":
		field = &p.Price
	case "category":
		field = &p.Category
	case "company":
		field = &p.Company
	case "userId":
		field = &p.UserID
	case "image":
		field = &p.Image
	default:
		return false
	}
	if *field == value {
		return false
	}
	*field = value
	return true
}

func (s *memProductStore) Delete(_ context.Context, id string) (repository.DeleteOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID.Hex() == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return repository.DeleteOutcome{DeletedCount: 1}, nil
		}
	}
	return repository.DeleteOutcome{}, nil
}

func (s *memProductStore) Search(_ context.Context, key string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	needle := strings.ToLower(key)
	matches := []models.Product{}
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Product), needle) ||
			strings.Contains(strings.ToLower(p.Company), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}
