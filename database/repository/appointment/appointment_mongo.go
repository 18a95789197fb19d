package appointmentRepo

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

// MongoAppointmentRepo is the MongoDB-backed appointment store.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo returns a repository bound to the appointments collection.
func NewMongoAppointmentRepo() *MongoAppointmentRepo {
	return &MongoAppointmentRepo{coll: database.Collection("appointments")}
}

// Create inserts a new appointment document.
func (repo *MongoAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctxWithTimeout, appt); err != nil {
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by its ID.
func (repo *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&appt)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching appointment %s: %w", id, err)
	}
	return &appt, nil
}

// Update replaces an existing appointment document.
func (repo *MongoAppointmentRepo) Update(ctx context.Context, appt *models.Appointment) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": appt.ID}
	update := bson.M{"$set": appt}
	if _, err := repo.coll.UpdateOne(ctxWithTimeout, filter, update); err != nil {
		return fmt.Errorf("error updating appointment %s: %w", appt.ID, err)
	}
	return nil
}

// Delete removes an appointment document (hard delete).
func (repo *MongoAppointmentRepo) Delete(ctx context.Context, id string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctxWithTimeout, bson.M{"id": id}); err != nil {
		return fmt.Errorf("error deleting appointment %s: %w", id, err)
	}
	return nil
}

// FindOverlapping returns non-cancelled appointments for the barber that
// intersect the half-open window [start, end): starts_at < end AND ends_at > start.
func (repo *MongoAppointmentRepo) FindOverlapping(ctx context.Context, barberID string, start, end time.Time) ([]models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"barber_id": barberID,
		"status":    bson.M{"$ne": models.StatusCancelled},
		"starts_at": bson.M{"$lt": end},
		"ends_at":   bson.M{"$gt": start},
	}
	cursor, err := repo.coll.Find(ctxWithTimeout, filter)
	if err != nil {
		return nil, fmt.Errorf("error querying overlapping appointments: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var appts []models.Appointment
	if err := cursor.All(ctxWithTimeout, &appts); err != nil {
		return nil, fmt.Errorf("error decoding overlapping appointments: %w", err)
	}
	return appts, nil
}

// List returns appointments matching the filter, newest first.
func (repo *MongoAppointmentRepo) List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.BarberID != "" {
		query["barber_id"] = filter.BarberID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Day != nil {
		dayStart := time.Date(filter.Day.Year(), filter.Day.Month(), filter.Day.Day(), 0, 0, 0, 0, filter.Day.Location())
		query["starts_at"] = bson.M{"$gte": dayStart, "$lt": dayStart.AddDate(0, 0, 1)}
	}

	opts := options.Find().SetSort(bson.D{{Key: "starts_at", Value: -1}})
	cursor, err := repo.coll.Find(ctxWithTimeout, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var appts []models.Appointment
	if err := cursor.All(ctxWithTimeout, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}
