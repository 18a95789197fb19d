package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"barberflow/database"
	"barberflow/models"
)

// MongoCatalogRepo reads services and barbers from their collections.
type MongoCatalogRepo struct {
	serviceColl *mongo.Collection
	barberColl  *mongo.Collection
}

// NewMongoCatalogRepo returns a repository over the services and barbers collections.
func NewMongoCatalogRepo() *MongoCatalogRepo {
	return &MongoCatalogRepo{
		serviceColl: database.Collection("services"),
		barberColl:  database.Collection("barbers"),
	}
}

// GetServiceByID retrieves a service by its ID.
func (repo *MongoCatalogRepo) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var svc models.Service
	err := repo.serviceColl.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&svc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching service %s: %w", id, err)
	}
	return &svc, nil
}

// ListActiveServices returns active services sorted by name.
func (repo *MongoCatalogRepo) ListActiveServices(ctx context.Context) ([]models.Service, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := repo.serviceColl.Find(ctxWithTimeout, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing services: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var services []models.Service
	if err := cursor.All(ctxWithTimeout, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

// GetBarberByID retrieves a barber by its ID.
func (repo *MongoCatalogRepo) GetBarberByID(ctx context.Context, id string) (*models.Barber, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var barber models.Barber
	err := repo.barberColl.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&barber)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching barber %s: %w", id, err)
	}
	return &barber, nil
}

// ListActiveBarbers returns active barbers sorted by name.
func (repo *MongoCatalogRepo) ListActiveBarbers(ctx context.Context) ([]models.Barber, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := repo.barberColl.Find(ctxWithTimeout, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing barbers: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var barbers []models.Barber
	if err := cursor.All(ctxWithTimeout, &barbers); err != nil {
		return nil, fmt.Errorf("error decoding barbers: %w", err)
	}
	return barbers, nil
}
