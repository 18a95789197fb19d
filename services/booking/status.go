package booking

import (
	"context"
	"fmt"

	appointmentRepo "barberflow/database/repository/appointment"
	catalogRepo "barberflow/database/repository/catalog"
)

// DefaultStatusService answers check_status lookups.
type DefaultStatusService struct {
	ApptRepo appointmentRepo.AppointmentRepository
	Catalog  catalogRepo.CatalogRepository
}

// AppointmentStatus returns a snapshot of an appointment.
func (s *DefaultStatusService) AppointmentStatus(ctx context.Context, id string) (*AppointmentSnapshot, error) {
	appt, err := s.ApptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	if appt == nil {
		return nil, NewError(CodeAppointmentNotFound, "appointment %q not found", id)
	}
	return &AppointmentSnapshot{
		ID:         appt.ID,
		CustomerID: appt.CustomerID,
		BarberID:   appt.BarberID,
		ServiceID:  appt.ServiceID,
		StartsAt:   appt.StartsAt,
		Status:     appt.Status,
		Notes:      appt.Notes,
	}, nil
}

// BarberStatus returns a snapshot of a barber.
func (s *DefaultStatusService) BarberStatus(ctx context.Context, id string) (*BarberSnapshot, error) {
	barber, err := s.Catalog.GetBarberByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load barber: %w", err)
	}
	if barber == nil {
		return nil, NewError(CodeBarberNotFound, "barber %q not found", id)
	}
	return &BarberSnapshot{
		ID:        barber.ID,
		Name:      barber.Name,
		IsActive:  barber.IsActive,
		Specialty: barber.Specialty,
	}, nil
}
