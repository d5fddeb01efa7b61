package storage

import "context"

// Storage persists uploaded images, decoupled from the catalog logic.
// Save returns the name the file was stored under.
type Storage interface {
	Save(ctx context.Context, name, contentType string, data []byte) (string, error)
}
