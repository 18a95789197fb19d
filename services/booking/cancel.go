package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	appointmentRepo "barberflow/database/repository/appointment"
	"barberflow/models"
	"barberflow/utils"
)

// DefaultCancellationService transitions appointments to cancelled.
type DefaultCancellationService struct {
	ApptRepo appointmentRepo.AppointmentRepository
}

// Cancel sets the appointment's status to cancelled and appends the reason to
// its notes. Cancelling an already-cancelled appointment is a benign failure
// (already_cancelled), not a fault; the status is left unchanged.
func (s *DefaultCancellationService) Cancel(ctx context.Context, appointmentID, reason string) (string, error) {
	appt, err := s.ApptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return "", fmt.Errorf("failed to load appointment: %w", err)
	}
	if appt == nil {
		return "", NewError(CodeAppointmentNotFound, "appointment %q not found, check the provided ID", appointmentID)
	}
	if appt.Status == models.StatusCancelled {
		return "", NewError(CodeAlreadyCancelled, "this appointment was already cancelled")
	}

	appt.Status = models.StatusCancelled
	if reason != "" {
		if appt.Notes != "" {
			appt.Notes += "\n"
		}
		appt.Notes += fmt.Sprintf("Cancellation reason: %s", reason)
	}
	appt.UpdatedAt = time.Now()
	if err := s.ApptRepo.Update(ctx, appt); err != nil {
		return "", fmt.Errorf("failed to cancel appointment: %w", err)
	}

	utils.GetLogger().Info("appointment cancelled",
		zap.String("appointmentID", appointmentID),
		zap.String("reason", reason))

	return fmt.Sprintf("Appointment cancelled successfully. ID: %s", appointmentID), nil
}
