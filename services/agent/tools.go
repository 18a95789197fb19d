package agent

import (
	"context"
	"encoding/json"
	"time"

	"barberflow/services/booking"
)

// ToolDeps are the booking services the tool table calls into. Every tool
// re-derives truth from storage through these services rather than trusting
// values the reasoning engine asserts.
type ToolDeps struct {
	Staging      booking.StagingService
	Commit       booking.CommitService
	Cancel       booking.CancellationService
	Status       booking.StatusService
	Catalog      booking.CatalogService
	Availability booking.AvailabilityEngine
	// Location is the shop timezone used by resolve_datetime.
	Location *time.Location
}

// NewToolRegistry builds the fixed tool table exposed to the reasoning engine.
func NewToolRegistry(deps ToolDeps) *Registry {
	r := NewRegistry()

	r.Register(Tool{
		Name:        "list_services",
		Description: "Returns the active services with real durations and prices (in cents). Always call this instead of guessing.",
		Handle: func(ctx context.Context, _ Args) (map[string]any, error) {
			services, err := deps.Catalog.ListServices(ctx)
			if err != nil {
				return nil, err
			}
			if len(services) == 0 {
				return map[string]any{
					"ok":     false,
					"code":   "no_services",
					"reason": "There are no services available right now.",
				}, nil
			}
			return map[string]any{"services": jsonify(services)}, nil
		},
	})

	r.Register(Tool{
		Name:        "list_barbers",
		Description: "Returns the active barbers.",
		Handle: func(ctx context.Context, _ Args) (map[string]any, error) {
			barbers, err := deps.Catalog.ListBarbers(ctx)
			if err != nil {
				return nil, err
			}
			return map[string]any{"barbers": jsonify(barbers)}, nil
		},
	})

	r.Register(Tool{
		Name:        "resolve_datetime",
		Description: "Converts free-form date/time text like \"tomorrow 15:00\" or \"today 10:30am\" to ISO 8601 in the shop timezone. Always use this for relative times.",
		Params: []Param{
			{Name: "text", Type: TypeString, Description: "Date/time text to convert", Required: true},
			{Name: "timezone", Type: TypeString, Description: "IANA timezone override"},
		},
		Handle: func(ctx context.Context, args Args) (map[string]any, error) {
			resolved, err := ResolveDatetime(args.String("text"), args.String("timezone"), time.Now(), deps.Location)
			if err != nil {
				return nil, err
			}
			return map[string]any{
				"iso":       resolved.ISO,
				"formatted": resolved.Formatted,
				"timezone":  resolved.Timezone,
			}, nil
		},
	})

	r.Register(Tool{
		Name:        "check_availability",
		Description: "Checks whether a barber is free for a window before staging a booking.",
		Params: []Param{
			{Name: "barberId", Type: TypeString, Description: "Barber ID", Required: true},
			{Name: "start", Type: TypeString, Description: "Proposed start, ISO 8601", Required: true},
			{Name: "durationMinutes", Type: TypeInteger, Description: "Duration in minutes", Required: true},
		},
		Handle: func(ctx context.Context, args Args) (map[string]any, error) {
			start, err := parseISO(args.String("start"))
			if err != nil {
				return nil, err
			}
			free, err := deps.Availability.IsFree(ctx, args.String("barberId"), start, args.Int("durationMinutes"))
			if err != nil {
				return nil, err
			}
			return map[string]any{"available": free}, nil
		},
	})

	r.Register(Tool{
		Name:        "stage_booking",
		Description: "Prepares a booking by saving it on the conversation for confirmation. Does NOT create the appointment. After calling this, relay the summary and ask the user to explicitly confirm.",
		Params: []Param{
			{Name: "conversationId", Type: TypeString, Description: "Current conversation ID", Required: true},
			{Name: "serviceId", Type: TypeString, Description: "Service ID from list_services", Required: true},
			{Name: "barberId", Type: TypeString, Description: "Barber ID from list_barbers", Required: true},
			{Name: "start", Type: TypeString, Description: "Proposed start, ISO 8601", Required: true},
		},
		Handle: func(ctx context.Context, args Args) (map[string]any, error) {
			start, err := parseISO(args.String("start"))
			if err != nil {
				return nil, err
			}
			summary, err := deps.Staging.Stage(ctx, args.String("conversationId"), args.String("serviceId"), args.String("barberId"), start)
			if err != nil {
				return nil, err
			}
			return map[string]any{
				"pendingConfirmation": true,
				"message":             summary.Summary,
			}, nil
		},
	})

	r.Register(Tool{
		Name:        "confirm_booking",
		Description: "Commits the booking staged on this conversation. Only call after the user has explicitly confirmed the staged summary.",
		Params: []Param{
			{Name: "conversationId", Type: TypeString, Description: "Current conversation ID", Required: true},
			{Name: "customerName", Type: TypeString, Description: "Customer name", Required: true},
			{Name: "customerContact", Type: TypeString, Description: "Phone or email, if given"},
		},
		Handle: func(ctx context.Context, args Args) (map[string]any, error) {
			result, err := deps.Commit.Commit(ctx, args.String("conversationId"), args.String("customerName"), args.String("customerContact"))
			if err != nil {
				return nil, err
			}
			return map[string]any{
				"appointmentId": result.AppointmentID,
				"message":       result.Message,
			}, nil
		},
	})

	r.Register(Tool{
		Name:        "cancel_appointment",
		Description: "Cancels an existing appointment by ID.",
		Params: []Param{
			{Name: "appointmentId", Type: TypeString, Description: "Appointment ID to cancel", Required: true},
			{Name: "reason", Type: TypeString, Description: "Cancellation reason, if given"},
		},
		Handle: func(ctx context.Context, args Args) (map[string]any, error) {
			message, err := deps.Cancel.Cancel(ctx, args.String("appointmentId"), args.String("reason"))
			if err != nil {
				return nil, err
			}
			return map[string]any{"message": message}, nil
		},
	})

	r.Register(Tool{
		Name:        "check_status",
		Description: "Returns the current status of an appointment or a barber.",
		Params: []Param{
			{Name: "type", Type: TypeString, Description: "Either \"appointment\" or \"barber\"", Required: true},
			{Name: "id", Type: TypeString, Description: "Appointment or barber ID", Required: true},
		},
		Handle: func(ctx context.Context, args Args) (map[string]any, error) {
			switch args.String("type") {
			case "appointment":
				snap, err := deps.Status.AppointmentStatus(ctx, args.String("id"))
				if err != nil {
					return nil, err
				}
				return map[string]any{"status": jsonify(snap)}, nil
			case "barber":
				snap, err := deps.Status.BarberStatus(ctx, args.String("id"))
				if err != nil {
					return nil, err
				}
				return map[string]any{"status": jsonify(snap)}, nil
			default:
				return nil, booking.NewError(booking.CodeValidation, "type must be \"appointment\" or \"barber\"")
			}
		},
	})

	return r
}

func parseISO(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, booking.NewError(booking.CodeValidation, "invalid ISO 8601 timestamp %q", s)
	}
	return t, nil
}

// jsonify flattens structs into plain maps and slices; the genai
// function-response encoding only accepts basic JSON types.
func jsonify(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}
