package booking

import (
	"context"
	"testing"
	"time"

	"barberflow/models"
)

func TestUpdateStatusHonorsLifecycle(t *testing.T) {
	f := newFixture()
	id := f.seedAppointment(t, "barber-s", at(10, 0), at(10, 45), models.StatusReserved)

	appt, err := f.appointments.UpdateStatus(context.Background(), id, models.StatusConfirmed)
	if err != nil {
		t.Fatalf("reserved -> confirmed: %v", err)
	}
	if appt.Status != models.StatusConfirmed {
		t.Errorf("status = %s, want %s", appt.Status, models.StatusConfirmed)
	}

	if _, err := f.appointments.UpdateStatus(context.Background(), id, models.StatusCompleted); err != nil {
		t.Fatalf("confirmed -> completed: %v", err)
	}

	// Completed is terminal.
	_, err = f.appointments.UpdateStatus(context.Background(), id, models.StatusCancelled)
	if CodeOf(err) != CodeInvalidTransition {
		t.Errorf("terminal transition: got code %q, want %q", CodeOf(err), CodeInvalidTransition)
	}
}

func TestRescheduleTimeMovePreservesDuration(t *testing.T) {
	f := newFixture()
	id := f.seedAppointment(t, "barber-s", at(10, 0), at(10, 45), models.StatusReserved)

	newStart := at(15, 0)
	appt, err := f.appointments.Reschedule(context.Background(), id, &newStart, "")
	if err != nil {
		t.Fatalf("Reschedule: %v", err)
	}
	if !appt.StartsAt.Equal(at(15, 0)) || !appt.EndsAt.Equal(at(15, 45)) {
		t.Errorf("window = [%s, %s), want [15:00, 15:45)",
			appt.StartsAt.Format("15:04"), appt.EndsAt.Format("15:04"))
	}
}

func TestRescheduleServiceChangeRederivesDuration(t *testing.T) {
	f := newFixture()
	id := f.seedAppointment(t, "barber-s", at(10, 0), at(10, 45), models.StatusReserved)

	appt, err := f.appointments.Reschedule(context.Background(), id, nil, "svc-shave")
	if err != nil {
		t.Fatalf("Reschedule: %v", err)
	}
	if appt.ServiceID != "svc-shave" {
		t.Errorf("serviceID = %s, want svc-shave", appt.ServiceID)
	}
	if got := appt.EndsAt.Sub(appt.StartsAt); got != 30*time.Minute {
		t.Errorf("duration = %s, want the shave's 30m", got)
	}
}

func TestRescheduleIgnoresOwnSlot(t *testing.T) {
	f := newFixture()
	id := f.seedAppointment(t, "barber-s", at(10, 0), at(10, 45), models.StatusReserved)

	// A 15-minute nudge overlaps the appointment's own current window.
	newStart := at(10, 15)
	appt, err := f.appointments.Reschedule(context.Background(), id, &newStart, "")
	if err != nil {
		t.Fatalf("Reschedule over own slot: %v", err)
	}
	if !appt.StartsAt.Equal(at(10, 15)) {
		t.Errorf("startsAt = %s, want 10:15", appt.StartsAt.Format("15:04"))
	}
}

func TestRescheduleConflictsWithOtherAppointment(t *testing.T) {
	f := newFixture()
	id := f.seedAppointment(t, "barber-s", at(10, 0), at(10, 45), models.StatusReserved)
	f.seedAppointment(t, "barber-s", at(12, 0), at(12, 45), models.StatusConfirmed)

	newStart := at(12, 30)
	_, err := f.appointments.Reschedule(context.Background(), id, &newStart, "")
	if CodeOf(err) != CodeSlotUnavailable {
		t.Errorf("got code %q, want %q", CodeOf(err), CodeSlotUnavailable)
	}

	// The original window must be untouched after a failed reschedule.
	appt, _ := f.appts.GetByID(context.Background(), id)
	if !appt.StartsAt.Equal(at(10, 0)) {
		t.Errorf("failed reschedule moved the appointment to %s", appt.StartsAt.Format("15:04"))
	}
}

func TestRescheduleTerminalRejected(t *testing.T) {
	f := newFixture()
	id := f.seedAppointment(t, "barber-s", at(10, 0), at(10, 45), models.StatusCompleted)

	newStart := at(15, 0)
	_, err := f.appointments.Reschedule(context.Background(), id, &newStart, "")
	if CodeOf(err) != CodeInvalidTransition {
		t.Errorf("got code %q, want %q", CodeOf(err), CodeInvalidTransition)
	}
}

func TestListFilters(t *testing.T) {
	f := newFixture()
	f.seedAppointment(t, "barber-s", at(10, 0), at(10, 45), models.StatusReserved)
	f.seedAppointment(t, "barber-s", at(12, 0), at(12, 45), models.StatusCancelled)
	f.seedAppointment(t, "barber-t", at(10, 0), at(10, 30), models.StatusReserved)

	byBarber, err := f.appointments.List(context.Background(), models.AppointmentFilter{BarberID: "barber-s"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(byBarber) != 2 {
		t.Errorf("barber-s list = %d entries, want 2", len(byBarber))
	}

	byStatus, err := f.appointments.List(context.Background(), models.AppointmentFilter{Status: models.StatusReserved})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(byStatus) != 2 {
		t.Errorf("reserved list = %d entries, want 2", len(byStatus))
	}
}

func TestDeleteRemovesAppointment(t *testing.T) {
	f := newFixture()
	id := f.seedAppointment(t, "barber-s", at(10, 0), at(10, 45), models.StatusReserved)

	if err := f.appointments.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := f.appointments.Delete(context.Background(), id); CodeOf(err) != CodeAppointmentNotFound {
		t.Errorf("second delete: got code %q, want %q", CodeOf(err), CodeAppointmentNotFound)
	}
}

func TestStatusServiceSnapshots(t *testing.T) {
	f := newFixture()
	id := f.seedAppointment(t, "barber-s", at(10, 0), at(10, 45), models.StatusReserved)

	snap, err := f.status.AppointmentStatus(context.Background(), id)
	if err != nil {
		t.Fatalf("AppointmentStatus: %v", err)
	}
	if snap.ID != id || snap.BarberID != "barber-s" || snap.Status != models.StatusReserved {
		t.Errorf("snapshot = %+v", snap)
	}

	barber, err := f.status.BarberStatus(context.Background(), "barber-t")
	if err != nil {
		t.Fatalf("BarberStatus: %v", err)
	}
	if barber.Name != "Tony" || !barber.IsActive {
		t.Errorf("barber snapshot = %+v", barber)
	}

	if _, err := f.status.AppointmentStatus(context.Background(), "nope"); CodeOf(err) != CodeAppointmentNotFound {
		t.Errorf("got code %q, want %q", CodeOf(err), CodeAppointmentNotFound)
	}
	if _, err := f.status.BarberStatus(context.Background(), "nope"); CodeOf(err) != CodeBarberNotFound {
		t.Errorf("got code %q, want %q", CodeOf(err), CodeBarberNotFound)
	}
}
