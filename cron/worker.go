package cron

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"barberflow/config"
	appointmentRepo "barberflow/database/repository/appointment"
	"barberflow/services/booking"
	"barberflow/services/tasks"
	"barberflow/utils"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(apptRepo appointmentRepo.AppointmentRepository) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(apptRepo))

	go func() {
		logger.Info("starting reminder worker")
		if err := srv.Run(mux); err != nil {
			logger.Fatal("reminder worker failed to start", zap.Error(err))
		}
	}()
}

// handleReminderTask re-loads the appointment at fire time; appointments that
// were cancelled, completed or deleted since enqueueing are skipped silently.
func handleReminderTask(apptRepo appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p tasks.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		appt, err := apptRepo.GetByID(ctx, p.AppointmentID)
		if err != nil {
			return err
		}
		if appt == nil || booking.IsTerminal(appt.Status) {
			logger.Debug("skipping reminder for inactive appointment",
				zap.String("appointmentID", p.AppointmentID))
			return nil
		}

		// Delivery channel (push/SMS) hangs off here; for now the reminder is
		// recorded in the log stream.
		logger.Info("appointment reminder due",
			zap.String("appointmentID", appt.ID),
			zap.String("barberID", appt.BarberID),
			zap.Time("startsAt", appt.StartsAt))
		return nil
	}
}
