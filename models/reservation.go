package models

import "time"

// Reservation statuses. The reservation flow only ever writes "active";
// "expired" is set by the expiry worker when the time window runs out.
const (
	ReservationActive  = "active"
	ReservationExpired = "expired"
)

// Reservation commits one user to one slot for a bounded time window at a
// computed price. Records are append-only: once written they are never
// mutated by the reservation flow.
type Reservation struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"userId" json:"userId"`
	ParkingLotID    string    `bson:"parkingLotId" json:"parkingLotId"`
	ParkingLotName  string    `bson:"parkingLotName" json:"parkingLotName"` // snapshot at claim time, not re-synced
	SlotID          string    `bson:"slotId" json:"slotId"`
	StartTime       time.Time `bson:"startTime" json:"startTime"`
	EndTime         time.Time `bson:"endTime" json:"endTime"`
	DurationHours   int       `bson:"durationHours" json:"durationHours"`
	AmountPaidCents int64     `bson:"amountPaidCents" json:"amountPaidCents"`
	Status          string    `bson:"status" json:"status"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
