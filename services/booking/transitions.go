package booking

import "barberflow/models"

// IsTerminal reports whether a status permits no further transitions.
func IsTerminal(s models.AppointmentStatus) bool {
	switch s {
	case models.StatusCompleted, models.StatusCancelled, models.StatusNoShow:
		return true
	}
	return false
}

// ValidTransition reports whether an appointment may move from one status to
// another. Only live appointments (reserved, confirmed) transition; the
// transition set is flat with no enforced ordering beyond forward motion.
func ValidTransition(from, to models.AppointmentStatus) bool {
	if from == to {
		return false
	}
	switch from {
	case models.StatusReserved:
		switch to {
		case models.StatusConfirmed, models.StatusCompleted, models.StatusCancelled, models.StatusNoShow:
			return true
		}
	case models.StatusConfirmed:
		switch to {
		case models.StatusCompleted, models.StatusCancelled, models.StatusNoShow:
			return true
		}
	}
	return false
}
