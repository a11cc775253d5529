package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"smartpark/config"
	reservationRepo "smartpark/database/repository/reservation"
	"smartpark/services/notification"
	"smartpark/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReservationWorker runs the async worker in background. It delivers the
// RESERVED notification after commit and the TIME_EXPIRED notification when a
// reservation's window runs out.
func InitReservationWorker(notifSvc notification.NotificationService, resRepo reservationRepo.ReservationRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
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
	mux.HandleFunc(tasks.TypeReservationNotify, handleNotifyTask(notifSvc))
	mux.HandleFunc(tasks.TypeReservationExpire, handleExpireTask(notifSvc, resRepo))

	go func() {
		log.Println("[ReservationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReservationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReservationWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleNotifyTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ReservationNotifyPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReservationWorker] invalid notify payload: %v", err)
			return err
		}

		if err := notifSvc.NotifyReserved(ctx, p.UserID, p.LotName, p.SlotID, p.AmountPaidCents, p.DurationHours); err != nil {
			log.Printf("[ReservationWorker] failed to deliver RESERVED notification for %s: %v", p.ReservationID, err)
			return err
		}
		return nil
	}
}

func handleExpireTask(notifSvc notification.NotificationService, resRepo reservationRepo.ReservationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ReservationExpirePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReservationWorker] invalid expire payload: %v", err)
			return err
		}

		// Status bookkeeping only. The slot stays occupied until the driver
		// actually leaves; release is not this worker's call to make.
		if err := resRepo.MarkExpired(p.ReservationID); err != nil {
			log.Printf("[ReservationWorker] failed to mark reservation %s expired: %v", p.ReservationID, err)
		}

		if err := notifSvc.NotifyExpired(ctx, p.UserID, p.LotName, p.SlotID); err != nil {
			log.Printf("[ReservationWorker] failed to deliver TIME_EXPIRED notification for %s: %v", p.ReservationID, err)
			return err
		}
		return nil
	}
}
