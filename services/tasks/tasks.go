package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TypeReservationNotify = "reservation:notify"
	TypeReservationExpire = "reservation:expire"
)

// ReservationNotifyPayload carries everything the worker needs to build the
// RESERVED notification without re-reading the reservation.
type ReservationNotifyPayload struct {
	ReservationID   string `json:"reservationId"`
	UserID          string `json:"userId"`
	LotName         string `json:"lotName"`
	SlotID          string `json:"slotId"`
	DurationHours   int    `json:"durationHours"`
	AmountPaidCents int64  `json:"amountPaidCents"`
}

// ReservationExpirePayload is processed at the reservation's end time.
type ReservationExpirePayload struct {
	ReservationID string    `json:"reservationId"`
	UserID        string    `json:"userId"`
	LotName       string    `json:"lotName"`
	SlotID        string    `json:"slotId"`
	EndTime       time.Time `json:"endTime"`
}

func NewReservationNotifyTask(payload ReservationNotifyPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReservationNotify, b), nil
}

func NewReservationExpireTask(payload ReservationExpirePayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReservationExpire, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
