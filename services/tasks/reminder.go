package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"barberflow/models"
)

const TypeSendReminder = "reminder:send"

// ReminderPayload identifies the appointment a reminder fires for. The worker
// re-loads the appointment at fire time rather than trusting stale fields.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
}

// NewReminderTask builds a reminder task scheduled for fireAt.
func NewReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Scheduler enqueues appointment reminders on the asynq queue. It implements
// booking.ReminderScheduler.
type Scheduler struct {
	Client *asynq.Client
	Lead   time.Duration
}

// NewScheduler returns a scheduler that fires reminders lead before the
// appointment start.
func NewScheduler(redisOpt asynq.RedisClientOpt, lead time.Duration) *Scheduler {
	return &Scheduler{
		Client: asynq.NewClient(redisOpt),
		Lead:   lead,
	}
}

// ScheduleReminder enqueues a reminder for the appointment. Appointments
// starting too soon for the lead window get no reminder.
func (s *Scheduler) ScheduleReminder(ctx context.Context, appt *models.Appointment) error {
	fireAt := appt.StartsAt.Add(-s.Lead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	task, opts, err := NewReminderTask(ReminderPayload{AppointmentID: appt.ID}, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
