package models

import "time"

// StatsOverview is the admin dashboard summary.
type StatsOverview struct {
	TotalRevenueCents int64   `json:"totalRevenueCents"`
	TotalReservations int     `json:"totalReservations"`
	RegisteredUsers   int     `json:"registeredUsers"`
	TotalLots         int     `json:"totalLots"`
	TotalSlots        int     `json:"totalSlots"`
	OccupiedSlots     int     `json:"occupiedSlots"`
	OccupancyRate     float64 `json:"occupancyRate"` // percentage, 0-100
}

// ReportRow is one line of the detailed reservations log.
type ReportRow struct {
	Date            time.Time `json:"date"`
	Username        string    `json:"username"`
	ParkingLotName  string    `json:"parkingLotName"`
	SlotID          string    `json:"slotId"`
	DurationHours   int       `json:"durationHours"`
	AmountPaidCents int64     `json:"amountPaidCents"`
}

// Report is the full admin report payload. Rendering (PDF or otherwise) is
// the client's concern; the server only assembles the data.
type Report struct {
	GeneratedAt time.Time     `json:"generatedAt"`
	Summary     StatsOverview `json:"summary"`
	Rows        []ReportRow   `json:"rows"`
}
