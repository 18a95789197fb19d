package booking

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "barberflow/database/repository/appointment"
	catalogRepo "barberflow/database/repository/catalog"
	"barberflow/models"
)

// DefaultAppointmentService backs the dashboard API: listing, transition-checked
// status updates, reschedules and hard deletes of committed appointments.
type DefaultAppointmentService struct {
	ApptRepo     appointmentRepo.AppointmentRepository
	Catalog      catalogRepo.CatalogRepository
	Availability AvailabilityEngine
}

// List returns appointments matching the filter.
func (s *DefaultAppointmentService) List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	return s.ApptRepo.List(ctx, filter)
}

// Get returns a single appointment.
func (s *DefaultAppointmentService) Get(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.ApptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, NewError(CodeAppointmentNotFound, "appointment %q not found", id)
	}
	return appt, nil
}

// UpdateStatus moves an appointment through its lifecycle. Transitions out of
// a terminal status are rejected.
func (s *DefaultAppointmentService) UpdateStatus(ctx context.Context, id string, to models.AppointmentStatus) (*models.Appointment, error) {
	appt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ValidTransition(appt.Status, to) {
		return nil, NewError(CodeInvalidTransition, "cannot move appointment from %s to %s", appt.Status, to)
	}
	appt.Status = to
	appt.UpdatedAt = time.Now()
	if err := s.ApptRepo.Update(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}
	return appt, nil
}

// Reschedule moves an appointment in time and/or onto a different service.
// A pure time move preserves the duration captured at booking time; only a
// service change re-derives the end from that service's current duration.
// The new window is availability-checked like any other booking.
func (s *DefaultAppointmentService) Reschedule(ctx context.Context, id string, newStart *time.Time, newServiceID string) (*models.Appointment, error) {
	appt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if IsTerminal(appt.Status) {
		return nil, NewError(CodeInvalidTransition, "cannot reschedule a %s appointment", appt.Status)
	}

	start := appt.StartsAt
	if newStart != nil {
		start = *newStart
	}
	duration := appt.EndsAt.Sub(appt.StartsAt)
	serviceID := appt.ServiceID
	if newServiceID != "" && newServiceID != appt.ServiceID {
		svc, err := s.Catalog.GetServiceByID(ctx, newServiceID)
		if err != nil {
			return nil, fmt.Errorf("failed to load service: %w", err)
		}
		if svc == nil {
			return nil, NewError(CodeServiceNotFound, "service %q not found", newServiceID)
		}
		serviceID = svc.ID
		duration = time.Duration(svc.DurationMinutes) * time.Minute
	}

	if start != appt.StartsAt || serviceID != appt.ServiceID {
		// The appointment's own slot must not count against itself, so the
		// overlap check is run against the rest of the calendar.
		free, err := s.windowFreeExcluding(ctx, appt.BarberID, start, start.Add(duration), appt.ID)
		if err != nil {
			return nil, err
		}
		if !free {
			return nil, NewError(CodeSlotUnavailable, "the new time conflicts with another appointment")
		}
	}

	appt.StartsAt = start
	appt.EndsAt = start.Add(duration)
	appt.ServiceID = serviceID
	appt.UpdatedAt = time.Now()
	if err := s.ApptRepo.Update(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to reschedule appointment: %w", err)
	}
	return appt, nil
}

// Delete removes an appointment permanently.
func (s *DefaultAppointmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.ApptRepo.Delete(ctx, id)
}

func (s *DefaultAppointmentService) windowFreeExcluding(ctx context.Context, barberID string, start, end time.Time, excludeID string) (bool, error) {
	conflicts, err := s.ApptRepo.FindOverlapping(ctx, barberID, start, end)
	if err != nil {
		return false, err
	}
	for _, c := range conflicts {
		if c.ID != excludeID {
			return false, nil
		}
	}
	return true, nil
}
