package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appointmentRepo "barberflow/database/repository/appointment"
	catalogRepo "barberflow/database/repository/catalog"
	conversationRepo "barberflow/database/repository/conversation"
	"barberflow/models"
	"barberflow/utils"
)

// DefaultCommitService turns a pending booking into a durable appointment.
// There is no lock around the availability re-check and the insert; a slot
// stolen between staging and commit surfaces as slot_unavailable with the
// stage left intact, and the caller offers alternatives.
type DefaultCommitService struct {
	ConvRepo     conversationRepo.ConversationRepository
	ApptRepo     appointmentRepo.AppointmentRepository
	Catalog      catalogRepo.CatalogRepository
	Availability AvailabilityEngine
	Reminders    ReminderScheduler
}

// Commit re-validates the staged slot and creates the appointment with status
// reserved. A second commit finds no pending stage and fails cleanly with
// no_pending_booking.
func (s *DefaultCommitService) Commit(ctx context.Context, conversationID, customerName, customerContact string) (*CommitResult, error) {
	conv, err := s.ConvRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	if conv == nil {
		return nil, NewError(CodeConversationNotFound, "conversation %q not found", conversationID)
	}

	pending := conv.Context.PendingBooking
	if pending == nil || pending.Confirmed {
		return nil, NewError(CodeNoPendingBooking, "there is no booking awaiting confirmation")
	}
	// Defensive: the staging service is the only writer, so these should
	// always be present.
	if pending.ServiceID == "" || pending.BarberID == "" || pending.StartsAt.IsZero() {
		return nil, NewError(CodeIncompleteStaging, "staged booking is missing required fields")
	}

	// Duration is re-derived from storage, never trusted from the caller.
	svc, err := s.Catalog.GetServiceByID(ctx, pending.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if svc == nil {
		return nil, NewError(CodeServiceNotFound, "service %q not found", pending.ServiceID)
	}

	// Mandatory re-check: the slot may have been taken by a concurrent
	// conversation since staging. On conflict the stage survives so the user
	// can retry with a different time.
	free, err := s.Availability.IsFree(ctx, pending.BarberID, pending.StartsAt, svc.DurationMinutes)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, NewError(CodeSlotUnavailable, "that time was just taken, please pick another")
	}

	now := time.Now()
	notes := ""
	if customerName != "" {
		notes = fmt.Sprintf("Customer: %s", customerName)
		if customerContact != "" {
			notes += fmt.Sprintf(" (%s)", customerContact)
		}
	}
	appt := &models.Appointment{
		ID:        uuid.New().String(),
		BarberID:  pending.BarberID,
		ServiceID: pending.ServiceID,
		StartsAt:  pending.StartsAt,
		EndsAt:    pending.StartsAt.Add(time.Duration(svc.DurationMinutes) * time.Minute),
		Status:    models.StatusReserved,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.ApptRepo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	conv.Context.PendingBooking = nil
	conv.Context.LastMentionedAppointmentID = appt.ID
	conv.UpdatedAt = now
	if err := s.ConvRepo.Update(ctx, conv); err != nil {
		// The appointment exists; a stale stage is recoverable on the next
		// commit attempt (it will fail the availability re-check).
		utils.GetLogger().Error("failed to clear staged booking after commit",
			zap.String("conversationID", conversationID),
			zap.String("appointmentID", appt.ID),
			zap.Error(err))
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, appt); err != nil {
			utils.GetLogger().Warn("failed to schedule reminder",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}

	utils.GetLogger().Info("booking committed",
		zap.String("conversationID", conversationID),
		zap.String("appointmentID", appt.ID),
		zap.Time("start", appt.StartsAt))

	message := fmt.Sprintf(
		"Booking confirmed! Your %s with %s on %s has been registered.",
		pending.ServiceName, pending.BarberName, formatDateTime(pending.StartsAt),
	)
	return &CommitResult{
		AppointmentID: appt.ID,
		StartsAt:      appt.StartsAt,
		EndsAt:        appt.EndsAt,
		Message:       message,
	}, nil
}
