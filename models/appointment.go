package models

import "time"

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusReserved  AppointmentStatus = "reserved"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment is a committed booking on a barber's calendar. EndsAt is frozen
// at creation from the service duration in effect at booking time; later edits
// to the service never reshape existing appointments.
type Appointment struct {
	ID         string            `bson:"id" json:"id"`
	CustomerID string            `bson:"customer_id,omitempty" json:"customerId,omitempty"` // empty for walk-ins
	BarberID   string            `bson:"barber_id" json:"barberId"`
	ServiceID  string            `bson:"service_id" json:"serviceId"`
	StartsAt   time.Time         `bson:"starts_at" json:"startsAt"`
	EndsAt     time.Time         `bson:"ends_at" json:"endsAt"`
	Status     AppointmentStatus `bson:"status" json:"status"`
	Notes      string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time         `bson:"updated_at" json:"updatedAt"`
}

// AppointmentFilter narrows dashboard listings.
type AppointmentFilter struct {
	BarberID string
	Status   AppointmentStatus
	// Day filters to appointments starting within the given calendar day.
	Day *time.Time
}
