package catalogRepo

import (
	"context"

	"barberflow/models"
)

// CatalogRepository exposes read-only access to services and barbers.
// The CRUD layer that owns these records lives outside the booking core.
// Get* methods return (nil, nil) when nothing matches.
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id string) (*models.Service, error)
	ListActiveServices(ctx context.Context) ([]models.Service, error)
	GetBarberByID(ctx context.Context, id string) (*models.Barber, error)
	ListActiveBarbers(ctx context.Context) ([]models.Barber, error)
}
