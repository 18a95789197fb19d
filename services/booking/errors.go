package booking

import "fmt"

// Error codes the tool dispatch boundary branches on.
const (
	CodeValidation           = "validation_error"
	CodeServiceNotFound      = "service_not_found"
	CodeBarberNotFound       = "barber_not_found"
	CodeAppointmentNotFound  = "appointment_not_found"
	CodeConversationNotFound = "conversation_not_found"
	CodeSlotUnavailable      = "slot_unavailable"
	CodeNoPendingBooking     = "no_pending_booking"
	CodeIncompleteStaging    = "incomplete_staging"
	CodeAlreadyCancelled     = "already_cancelled"
	CodeInvalidTransition    = "invalid_transition"
)

// Error is a booking failure with a machine-readable code. Failures carrying
// one of the codes above have had no side effects on storage.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError builds a coded booking error.
func NewError(code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the booking error code, or "" for plain errors.
func CodeOf(err error) string {
	if be, ok := err.(*Error); ok {
		return be.Code
	}
	return ""
}
