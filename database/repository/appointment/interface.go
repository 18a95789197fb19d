package appointmentRepo

import (
	"context"
	"time"

	"barberflow/models"
)

// AppointmentRepository defines persistence for committed appointments.
// GetByID returns (nil, nil) when no appointment matches.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Update(ctx context.Context, appt *models.Appointment) error
	Delete(ctx context.Context, id string) error
	// FindOverlapping returns non-cancelled appointments for the barber whose
	// [starts_at, ends_at) interval intersects [start, end).
	FindOverlapping(ctx context.Context, barberID string, start, end time.Time) ([]models.Appointment, error)
	List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error)
}
