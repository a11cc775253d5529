package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	reservationRepo "smartpark/database/repository/reservation"
	"smartpark/models"
	"smartpark/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultReservationService implements ReservationService.
type DefaultReservationService struct {
	Store   Store
	Emitter Emitter
}

// Reserve atomically claims the slot and records the reservation, then
// announces the result. The caller receives either a committed reservation
// or exactly one typed error; there are no partial outcomes.
func (s *DefaultReservationService) Reserve(ctx context.Context, userID, lotID, slotID string, hours int) (*models.Reservation, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	if hours < MinHours || hours > MaxHours {
		return nil, ErrInvalidHours
	}

	// The identity is fixed before the transaction runs so a storage-level
	// retry re-inserts the same document rather than minting a second one.
	reservationID := uuid.New().String()

	res, err := s.Store.ReserveSlot(ctx, lotID, slotID, func(lot *models.ParkingLot) (*models.Reservation, error) {
		now := time.Now()
		return &models.Reservation{
			ID:              reservationID,
			UserID:          userID,
			ParkingLotID:    lot.ID,
			ParkingLotName:  lot.Name,
			SlotID:          slotID,
			StartTime:       now,
			EndTime:         now.Add(time.Duration(hours) * time.Hour),
			DurationHours:   hours,
			AmountPaidCents: PriceCents(hours, lot.HourlyRateCents),
			Status:          models.ReservationActive,
			CreatedAt:       now,
		}, nil
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	// Post-commit, outside the atomic unit. Failures here must never undo or
	// fail the reservation.
	s.announce(res)

	return res, nil
}

// ListForUser returns the caller's reservations, newest first.
func (s *DefaultReservationService) ListForUser(userID string) ([]models.Reservation, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	reservations, err := s.Store.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	return reservations, nil
}

func (s *DefaultReservationService) announce(res *models.Reservation) {
	logger := utils.GetLogger()
	if s.Emitter == nil {
		return
	}
	if err := s.Emitter.EmitReserved(res); err != nil {
		logger.Warn("failed to emit reservation notification",
			zap.String("reservationId", res.ID), zap.Error(err))
	}
	if err := s.Emitter.ScheduleExpiry(res); err != nil {
		logger.Warn("failed to schedule expiry notification",
			zap.String("reservationId", res.ID), zap.Error(err))
	}
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, reservationRepo.ErrLotNotFound):
		return ErrLotNotFound
	case errors.Is(err, reservationRepo.ErrSlotNotFound):
		return ErrSlotNotFound
	case errors.Is(err, reservationRepo.ErrSlotOccupied):
		return ErrSlotOccupied
	default:
		return newStorageError(err)
	}
}
