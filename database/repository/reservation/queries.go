package reservationRepo

import (
	"fmt"
	"time"

	"smartpark/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByUser retrieves a user's reservations, newest first.
func (r *MongoReservationRepo) GetByUser(userID string) ([]models.Reservation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: -1}})
	cursor, err := r.reservationColl.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching reservations for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return reservations, nil
}

// GetAll retrieves every reservation, newest first. Used by the admin report.
func (r *MongoReservationRepo) GetAll() ([]models.Reservation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: -1}})
	cursor, err := r.reservationColl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return reservations, nil
}

// MarkExpired flips a reservation's status to expired. It never touches the
// slot's occupancy flag; release is not part of the reservation flow.
func (r *MongoReservationRepo) MarkExpired(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.ReservationActive}
	update := bson.M{"$set": bson.M{"status": models.ReservationExpired}}

	if _, err := r.reservationColl.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to mark reservation %s expired: %w", id, err)
	}
	return nil
}
