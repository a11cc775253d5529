package tasks

import (
	"fmt"

	"smartpark/models"

	"github.com/hibiken/asynq"
)

// QueueEmitter hands reservation announcements to the background worker via
// the asynq queue. Enqueueing happens after the reservation has committed;
// a failed enqueue loses at most a notification, never a reservation.
type QueueEmitter struct {
	client *asynq.Client
}

func NewQueueEmitter(client *asynq.Client) *QueueEmitter {
	return &QueueEmitter{client: client}
}

func (e *QueueEmitter) EmitReserved(res *models.Reservation) error {
	task, err := NewReservationNotifyTask(ReservationNotifyPayload{
		ReservationID:   res.ID,
		UserID:          res.UserID,
		LotName:         res.ParkingLotName,
		SlotID:          res.SlotID,
		DurationHours:   res.DurationHours,
		AmountPaidCents: res.AmountPaidCents,
	})
	if err != nil {
		return fmt.Errorf("build notify task: %w", err)
	}
	if _, err := e.client.Enqueue(task); err != nil {
		return fmt.Errorf("enqueue notify task: %w", err)
	}
	return nil
}

func (e *QueueEmitter) ScheduleExpiry(res *models.Reservation) error {
	task, opts, err := NewReservationExpireTask(ReservationExpirePayload{
		ReservationID: res.ID,
		UserID:        res.UserID,
		LotName:       res.ParkingLotName,
		SlotID:        res.SlotID,
		EndTime:       res.EndTime,
	}, res.EndTime)
	if err != nil {
		return fmt.Errorf("build expire task: %w", err)
	}
	if _, err := e.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("enqueue expire task: %w", err)
	}
	return nil
}
