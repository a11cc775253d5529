package lot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	lotRepo "smartpark/database/repository/lot"
	"smartpark/models"
	"smartpark/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const lotCacheTTL = 30 * time.Second

// DefaultLotService implements LotService. The lot list backs the map screen
// and is read far more often than it changes, so it is cached briefly in
// Redis; every admin mutation invalidates the cache.
type DefaultLotService struct {
	Repo  lotRepo.LotRepository
	Cache *redis.Client
}

// List returns every lot, served from cache when fresh.
func (s *DefaultLotService) List() ([]models.ParkingLot, error) {
	ctx := context.Background()

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, utils.LotListCacheKey).Result(); err == nil {
			var lots []models.ParkingLot
			if err := json.Unmarshal([]byte(cached), &lots); err == nil {
				return lots, nil
			}
		}
	}

	lots, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(lots); err == nil {
			if err := s.Cache.Set(ctx, utils.LotListCacheKey, data, lotCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache lot list", zap.Error(err))
			}
		}
	}
	return lots, nil
}

// Get returns one lot by id.
func (s *DefaultLotService) Get(id string) (*models.ParkingLot, error) {
	lot, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, fmt.Errorf("parking lot with id %s not found", id)
	}
	return lot, nil
}

// Create builds a lot with SlotCount empty slots named <prefix>1..<prefix>N.
func (s *DefaultLotService) Create(in LotInput) (*models.ParkingLot, error) {
	if in.HourlyRateCents <= 0 {
		return nil, fmt.Errorf("hourly rate must be positive")
	}
	if in.SlotCount <= 0 {
		return nil, fmt.Errorf("slot count must be positive")
	}
	prefix := in.SlotPrefix
	if prefix == "" {
		prefix = "A"
	}

	newLot := &models.ParkingLot{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Address:         in.Address,
		Location:        in.Location,
		HourlyRateCents: in.HourlyRateCents,
		Slots:           buildSlots(prefix, in.SlotCount, 0),
	}
	if err := s.Repo.Create(newLot); err != nil {
		return nil, err
	}

	s.invalidateCache()
	return newLot, nil
}

// Update edits a lot's metadata. The slots array is untouched: occupancy
// belongs to the reservation transaction alone.
func (s *DefaultLotService) Update(id string, in LotInput) (*models.ParkingLot, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Address = in.Address
	existing.Location = in.Location
	existing.HourlyRateCents = in.HourlyRateCents
	if err := s.Repo.Update(existing); err != nil {
		return nil, err
	}

	s.invalidateCache()
	return existing, nil
}

// Delete removes a lot. Reservations referencing it keep their denormalized
// lot name; there is no cascading delete.
func (s *DefaultLotService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

func (s *DefaultLotService) invalidateCache() {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(context.Background(), utils.LotListCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate lot cache", zap.Error(err))
	}
}

func buildSlots(prefix string, count int, occupiedEvery int) []models.Slot {
	slots := make([]models.Slot, count)
	for i := range slots {
		slots[i] = models.Slot{ID: fmt.Sprintf("%s%d", prefix, i+1)}
		if occupiedEvery > 0 && (i+1)%occupiedEvery == 0 {
			slots[i].IsOccupied = true
		}
	}
	return slots
}
