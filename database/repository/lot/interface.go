package lotRepo

import "smartpark/models"

// LotRepository defines data access methods for parking lots. Slot occupancy
// is deliberately absent here: it is mutated only through the reservation
// repository's atomic unit.
type LotRepository interface {
	Create(lot *models.ParkingLot) error
	Update(lot *models.ParkingLot) error
	Delete(id string) error
	GetByID(id string) (*models.ParkingLot, error)
	GetAll() ([]models.ParkingLot, error)
	Count() (int64, error)
}
