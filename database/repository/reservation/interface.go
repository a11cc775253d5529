package reservationRepo

import (
	"context"
	"errors"

	"smartpark/models"
)

// Sentinel errors surfaced by the atomic claim. Callers distinguish them with
// errors.Is.
var (
	ErrLotNotFound  = errors.New("parking lot not found")
	ErrSlotNotFound = errors.New("slot not found in lot")
	ErrSlotOccupied = errors.New("slot already occupied")
)

// BuildFunc derives the reservation record from the lot as read inside the
// atomic unit (name and hourly rate at claim time). It may be invoked more
// than once if the storage layer retries the transaction, so it must be free
// of external side effects.
type BuildFunc func(lot *models.ParkingLot) (*models.Reservation, error)

// ReservationRepository defines data access for reservations, including the
// transactional slot claim.
type ReservationRepository interface {
	// ReserveSlot atomically verifies the slot is free, marks it occupied and
	// inserts the reservation produced by build. Both writes commit together
	// or not at all.
	ReserveSlot(ctx context.Context, lotID, slotID string, build BuildFunc) (*models.Reservation, error)

	GetByUser(userID string) ([]models.Reservation, error)
	GetAll() ([]models.Reservation, error)
	MarkExpired(id string) error
}
