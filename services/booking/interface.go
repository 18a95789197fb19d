package booking

import (
	"context"
	"time"

	"barberflow/models"
)

// AvailabilityEngine decides whether a time window on a barber's calendar is
// free of conflicting appointments.
type AvailabilityEngine interface {
	IsFree(ctx context.Context, barberID string, start time.Time, durationMinutes int) (bool, error)
}

// StagingService writes a tentative booking into a conversation's context.
// It never touches the appointment store.
type StagingService interface {
	Stage(ctx context.Context, conversationID, serviceID, barberID string, start time.Time) (*StageSummary, error)
}

// CommitService converts a staged booking into a durable appointment. It is
// the only writer of new appointments.
type CommitService interface {
	Commit(ctx context.Context, conversationID, customerName, customerContact string) (*CommitResult, error)
}

// CancellationService transitions an existing appointment to cancelled.
type CancellationService interface {
	Cancel(ctx context.Context, appointmentID, reason string) (string, error)
}

// StatusService answers point lookups for the check_status tool.
type StatusService interface {
	AppointmentStatus(ctx context.Context, id string) (*AppointmentSnapshot, error)
	BarberStatus(ctx context.Context, id string) (*BarberSnapshot, error)
}

// CatalogService lists the bookable services and active barbers.
type CatalogService interface {
	ListServices(ctx context.Context) ([]ServiceInfo, error)
	ListBarbers(ctx context.Context) ([]BarberInfo, error)
}

// ReminderScheduler enqueues an appointment reminder. Implemented by the
// tasks package; a nil scheduler disables reminders.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, appt *models.Appointment) error
}

// StageSummary is the human-presentable result of a successful staging call.
// The reasoning engine must relay Summary and re-ask the user for explicit
// confirmation before committing; staging alone never books anything.
type StageSummary struct {
	ServiceName string    `json:"serviceName"`
	BarberName  string    `json:"barberName"`
	StartsAt    time.Time `json:"startsAt"`
	PriceCents  int       `json:"priceCents"`
	Summary     string    `json:"summary"`
}

// CommitResult is the outcome of a successful commit.
type CommitResult struct {
	AppointmentID string    `json:"appointmentId"`
	StartsAt      time.Time `json:"startsAt"`
	EndsAt        time.Time `json:"endsAt"`
	Message       string    `json:"message"`
}

// AppointmentSnapshot is the check_status view of an appointment.
type AppointmentSnapshot struct {
	ID         string                   `json:"id"`
	CustomerID string                   `json:"customerId,omitempty"`
	BarberID   string                   `json:"barberId"`
	ServiceID  string                   `json:"serviceId"`
	StartsAt   time.Time                `json:"scheduledTime"`
	Status     models.AppointmentStatus `json:"status"`
	Notes      string                   `json:"notes,omitempty"`
}

// BarberSnapshot is the check_status view of a barber.
type BarberSnapshot struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsActive  bool   `json:"isAvailable"`
	Specialty string `json:"specialty,omitempty"`
}

// ServiceInfo is the list_services view of a service.
type ServiceInfo struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	DurationMinutes int    `json:"duration"`
	PriceCents      int    `json:"price"`
}

// BarberInfo is the list_barbers view of a barber.
type BarberInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
