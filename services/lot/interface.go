package lot

import "smartpark/models"

// LotInput is the admin payload for creating or updating a lot.
type LotInput struct {
	Name            string          `json:"name" binding:"required"`
	Address         string          `json:"address" binding:"required"`
	Location        models.GeoPoint `json:"location"`
	HourlyRateCents int64           `json:"hourlyRateCents" binding:"required,gt=0"`
	SlotCount       int             `json:"slotCount"`
	SlotPrefix      string          `json:"slotPrefix"`
}

// LotService defines catalog and management operations for parking lots.
type LotService interface {
	List() ([]models.ParkingLot, error)
	Get(id string) (*models.ParkingLot, error)
	Create(in LotInput) (*models.ParkingLot, error)
	Update(id string, in LotInput) (*models.ParkingLot, error)
	Delete(id string) error
	Seed() (string, error)
}
