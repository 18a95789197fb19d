package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	catalogRepo "barberflow/database/repository/catalog"
	conversationRepo "barberflow/database/repository/conversation"
	"barberflow/models"
	"barberflow/utils"
)

// DefaultStagingService validates a proposed booking and writes it into the
// conversation's context as a pending booking. Re-staging overwrites any prior
// unconfirmed proposal without warning: each user turn supersedes intent.
type DefaultStagingService struct {
	Catalog      catalogRepo.CatalogRepository
	ConvRepo     conversationRepo.ConversationRepository
	Availability AvailabilityEngine
}

// Stage checks the slot and records the proposal on the conversation. On a
// conflict the context is left untouched. The returned summary must be
// relayed to the user for explicit confirmation before any commit.
func (s *DefaultStagingService) Stage(ctx context.Context, conversationID, serviceID, barberID string, start time.Time) (*StageSummary, error) {
	conv, err := s.ConvRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	if conv == nil {
		return nil, NewError(CodeConversationNotFound, "conversation %q not found", conversationID)
	}

	svc, err := s.Catalog.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if svc == nil {
		return nil, NewError(CodeServiceNotFound, "service %q not found", serviceID)
	}

	barber, err := s.Catalog.GetBarberByID(ctx, barberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load barber: %w", err)
	}
	if barber == nil {
		return nil, NewError(CodeBarberNotFound, "barber %q not found", barberID)
	}

	free, err := s.Availability.IsFree(ctx, barberID, start, svc.DurationMinutes)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, NewError(CodeSlotUnavailable, "that time is not available, please pick another")
	}

	// Overwrite any prior stage; last write wins.
	conv.Context.PendingBooking = &models.PendingBooking{
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		BarberID:    barber.ID,
		BarberName:  barber.Name,
		StartsAt:    start,
		PriceCents:  svc.PriceCents,
		Confirmed:   false,
	}
	conv.UpdatedAt = time.Now()
	if err := s.ConvRepo.Update(ctx, conv); err != nil {
		return nil, fmt.Errorf("failed to save staged booking: %w", err)
	}

	utils.GetLogger().Info("booking staged",
		zap.String("conversationID", conversationID),
		zap.String("barberID", barberID),
		zap.String("serviceID", serviceID),
		zap.Time("start", start))

	summary := fmt.Sprintf(
		"Here is your booking summary:\n\nService: %s\nBarber: %s\nDate and time: %s\nPrice: %s\n\nDo you confirm this booking?",
		svc.Name, barber.Name, formatDateTime(start), formatPrice(svc.PriceCents),
	)
	return &StageSummary{
		ServiceName: svc.Name,
		BarberName:  barber.Name,
		StartsAt:    start,
		PriceCents:  svc.PriceCents,
		Summary:     summary,
	}, nil
}
