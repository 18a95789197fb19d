package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	appointmentRepo "barberflow/database/repository/appointment"
	catalogRepo "barberflow/database/repository/catalog"
	"barberflow/utils"
)

// DefaultAvailabilityEngine checks for double-booking of a barber. It does not
// check the barber's weekly schedule or business hours; that policy lives with
// the conversational layer. Conflict-freedom is the only invariant enforced here.
type DefaultAvailabilityEngine struct {
	ApptRepo appointmentRepo.AppointmentRepository
	Catalog  catalogRepo.CatalogRepository
}

// IsFree reports whether [start, start+duration) on the barber's calendar has
// no overlap with any non-cancelled appointment. Unknown barbers are a
// distinct error, never "unavailable".
func (e *DefaultAvailabilityEngine) IsFree(ctx context.Context, barberID string, start time.Time, durationMinutes int) (bool, error) {
	if durationMinutes <= 0 {
		return false, NewError(CodeValidation, "duration must be positive, got %d", durationMinutes)
	}

	barber, err := e.Catalog.GetBarberByID(ctx, barberID)
	if err != nil {
		return false, err
	}
	if barber == nil {
		return false, NewError(CodeBarberNotFound, "barber %q not found", barberID)
	}

	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	conflicts, err := e.ApptRepo.FindOverlapping(ctx, barberID, start, end)
	if err != nil {
		return false, err
	}

	if len(conflicts) > 0 {
		utils.GetLogger().Debug("slot conflict",
			zap.String("barberID", barberID),
			zap.Time("start", start),
			zap.Int("conflicts", len(conflicts)))
	}
	return len(conflicts) == 0, nil
}
