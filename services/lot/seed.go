package lot

import (
	"smartpark/models"

	"github.com/google/uuid"
)

// Seed inserts the two sample lots used for demos and local development.
// It is a no-op when any lot already exists, so it never duplicates data.
func (s *DefaultLotService) Seed() (string, error) {
	count, err := s.Repo.Count()
	if err != nil {
		return "", err
	}
	if count > 0 {
		return "Database has already been initialized.", nil
	}

	samples := []models.ParkingLot{
		{
			ID:              uuid.New().String(),
			Name:            "Downtown Central Garage",
			Address:         "123 Main St, Cityville",
			Location:        models.GeoPoint{Latitude: 34.0522, Longitude: -118.2437},
			HourlyRateCents: 500,
			Slots:           buildSlots("A", 50, 0),
		},
		{
			ID:              uuid.New().String(),
			Name:            "Uptown Plaza Lot",
			Address:         "456 Oak Ave, Metropolis",
			Location:        models.GeoPoint{Latitude: 34.0622, Longitude: -118.2537},
			HourlyRateCents: 350,
			// every fifth slot starts occupied so the map has some texture
			Slots: buildSlots("B", 30, 5),
		},
	}

	for i := range samples {
		if err := s.Repo.Create(&samples[i]); err != nil {
			return "", err
		}
	}

	s.invalidateCache()
	return "Successfully initialized database with sample parking lots.", nil
}
