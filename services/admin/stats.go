package admin

import (
	"fmt"
	"time"

	"smartpark/models"
)

// DefaultAdminService implements AdminService.
type DefaultAdminService struct {
	UsersRepo        UserSource
	LotsRepo         LotSource
	ReservationsRepo ReservationSource
}

// Overview computes the dashboard summary: revenue in integer cents so
// repeated addition stays exact, occupancy from the live slot flags.
func (s *DefaultAdminService) Overview() (*models.StatsOverview, error) {
	reservations, err := s.ReservationsRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}
	lots, err := s.LotsRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load parking lots: %w", err)
	}
	userCount, err := s.UsersRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	var revenue int64
	for _, r := range reservations {
		revenue += r.AmountPaidCents
	}

	totalSlots, occupied := 0, 0
	for _, l := range lots {
		totalSlots += len(l.Slots)
		occupied += l.OccupiedCount()
	}

	rate := 0.0
	if totalSlots > 0 {
		rate = float64(occupied) / float64(totalSlots) * 100
	}

	return &models.StatsOverview{
		TotalRevenueCents: revenue,
		TotalReservations: len(reservations),
		RegisteredUsers:   int(userCount),
		TotalLots:         len(lots),
		TotalSlots:        totalSlots,
		OccupiedSlots:     occupied,
		OccupancyRate:     rate,
	}, nil
}

// Report assembles the summary plus the detailed reservations log. Rendering
// is left to the client.
func (s *DefaultAdminService) Report() (*models.Report, error) {
	summary, err := s.Overview()
	if err != nil {
		return nil, err
	}
	reservations, err := s.ReservationsRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}
	users, err := s.UsersRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	usernames := make(map[string]string, len(users))
	for _, u := range users {
		usernames[u.ID] = u.Username
	}

	rows := make([]models.ReportRow, 0, len(reservations))
	for _, r := range reservations {
		name := usernames[r.UserID]
		if name == "" {
			name = "N/A"
		}
		rows = append(rows, models.ReportRow{
			Date:            r.StartTime,
			Username:        name,
			ParkingLotName:  r.ParkingLotName,
			SlotID:          r.SlotID,
			DurationHours:   r.DurationHours,
			AmountPaidCents: r.AmountPaidCents,
		})
	}

	return &models.Report{
		GeneratedAt: time.Now(),
		Summary:     *summary,
		Rows:        rows,
	}, nil
}

// Users returns every registered user for the admin user list.
func (s *DefaultAdminService) Users() ([]models.User, error) {
	return s.UsersRepo.GetAll()
}
