package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"goodrunss/config"
	"goodrunss/database/repository/booking"
	"goodrunss/models"
	"goodrunss/services/notification"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// reminderLeadTime is how far ahead of a booking's start the reminder fires.
const reminderLeadTime = time.Hour

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ReminderWorker] worker stopped: %v", err)
		}
	}()
}

// handleReminderTask delivers one reminder push.
func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload models.ReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to decode reminder payload: %w", err)
		}
		if err := notifSvc.NotifyBookingReminder(ctx, payload.PlayerID, payload.BookingID, payload.Title, payload.Body); err != nil {
			return fmt.Errorf("failed to send reminder: %w", err)
		}
		return nil
	}
}

// StartReminderScheduler periodically scans upcoming bookings and enqueues a
// reminder task for each, scheduled ahead of the start time.
func StartReminderScheduler(bookings bookingRepo.BookingRepository) {
	client := asynq.NewClient(redisOpts())

	go func() {
		ticker := time.NewTicker(15 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			upcoming, err := bookings.GetUpcoming(2 * time.Hour)
			if err != nil {
				log.Printf("[ReminderScheduler] failed to fetch upcoming bookings: %v", err)
				continue
			}

			for _, b := range upcoming {
				payload, err := json.Marshal(models.ReminderPayload{
					PlayerID:  b.PlayerID,
					BookingID: b.ID,
					Title:     "Upcoming session",
					Body:      fmt.Sprintf("Your %s session starts at %s", b.Activity, b.StartTime.Format("15:04")),
				})
				if err != nil {
					continue
				}

				task := asynq.NewTask(TypeReminderSend, payload)
				fireAt := b.StartTime.Add(-reminderLeadTime)
				// TaskID dedupes re-enqueues of the same booking across scans.
				_, err = client.Enqueue(task,
					asynq.ProcessAt(fireAt),
					asynq.TaskID("reminder:"+b.ID),
				)
				if err != nil && err != asynq.ErrTaskIDConflict {
					log.Printf("[ReminderScheduler] failed to enqueue reminder for booking %s: %v", b.ID, err)
				}
			}
		}
	}()
}
