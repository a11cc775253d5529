package models

import "time"

// GeoPoint is a latitude/longitude pair.
type GeoPoint struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Slot is an individually reservable space within a lot. Slot ids are unique
// within their lot. IsOccupied is flipped only by the reservation transaction;
// no other code path writes it.
type Slot struct {
	ID         string `bson:"id" json:"id"`
	IsOccupied bool   `bson:"isOccupied" json:"isOccupied"`
}

// ParkingLot is a physical parking facility. The whole lot document is the
// unit of atomicity for slot claims.
type ParkingLot struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Address         string    `bson:"address" json:"address"`
	Location        GeoPoint  `bson:"location" json:"location"`
	HourlyRateCents int64     `bson:"hourlyRateCents" json:"hourlyRateCents"`
	Slots           []Slot    `bson:"slots" json:"slots"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// FindSlot returns the slot with the given id, or nil if the lot has none.
func (l *ParkingLot) FindSlot(slotID string) *Slot {
	for i := range l.Slots {
		if l.Slots[i].ID == slotID {
			return &l.Slots[i]
		}
	}
	return nil
}

// OccupiedCount returns how many of the lot's slots are currently claimed.
func (l *ParkingLot) OccupiedCount() int {
	n := 0
	for _, s := range l.Slots {
		if s.IsOccupied {
			n++
		}
	}
	return n
}
