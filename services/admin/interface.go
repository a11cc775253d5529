package admin

import "smartpark/models"

// Narrow repository views, enough for the dashboard aggregations.

type UserSource interface {
	GetAll() ([]models.User, error)
	Count() (int64, error)
}

type LotSource interface {
	GetAll() ([]models.ParkingLot, error)
}

type ReservationSource interface {
	GetAll() ([]models.Reservation, error)
}

// AdminService produces the dashboard overview and the report payload.
type AdminService interface {
	Overview() (*models.StatsOverview, error)
	Report() (*models.Report, error)
	Users() ([]models.User, error)
}
