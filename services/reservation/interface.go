package reservation

import (
	"context"

	reservationRepo "smartpark/database/repository/reservation"
	"smartpark/models"
)

// Store is the slice of the reservation repository the service needs.
type Store interface {
	ReserveSlot(ctx context.Context, lotID, slotID string, build reservationRepo.BuildFunc) (*models.Reservation, error)
	GetByUser(userID string) ([]models.Reservation, error)
}

// Emitter announces committed reservations. Implementations must be
// best-effort: the reservation has already committed by the time these run,
// so errors are logged by the caller and dropped.
type Emitter interface {
	EmitReserved(res *models.Reservation) error
	ScheduleExpiry(res *models.Reservation) error
}

// ReservationService is the caller-facing operation surface.
type ReservationService interface {
	Reserve(ctx context.Context, userID, lotID, slotID string, hours int) (*models.Reservation, error)
	ListForUser(userID string) ([]models.Reservation, error)
}
