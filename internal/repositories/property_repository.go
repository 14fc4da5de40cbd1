package repositories

import (
	"context"

	"sunshare/internal/models"
)

// PropertyRepository is a storage backend for property listings. One
// implementation is chosen at startup and used for the process lifetime.
type PropertyRepository interface {
	// Name identifies the backend in logs, metrics and the X-Data-Source header.
	Name() string
	// List returns every stored property in store order.
	List(ctx context.Context) ([]models.Property, error)
	// Create assigns property.ID and stores the record.
	Create(ctx context.Context, property *models.Property) error
}
