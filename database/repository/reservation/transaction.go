package reservationRepo

import (
	"context"
	"fmt"

	"smartpark/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReserveSlot performs the slot claim and reservation insert as one Mongo
// transaction. The driver retries the callback on transient transaction
// errors; the callback re-reads the lot each attempt and writes nothing
// outside the session, so retries are safe.
//
// The occupancy write is a conditional positional update: it only matches
// while the slot is still unoccupied. If a concurrent claimer committed
// between our read and our write, MatchedCount is zero and the attempt fails
// with ErrSlotOccupied: first committer wins, everyone else loses.
func (r *MongoReservationRepo) ReserveSlot(ctx context.Context, lotID, slotID string, build BuildFunc) (*models.Reservation, error) {
	client := r.lotColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	result, err := sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var lot models.ParkingLot
		if err := r.lotColl.FindOne(sc, bson.M{"id": lotID}).Decode(&lot); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrLotNotFound
			}
			return nil, fmt.Errorf("fetch lot failed: %w", err)
		}

		slot := lot.FindSlot(slotID)
		if slot == nil {
			return nil, ErrSlotNotFound
		}
		if slot.IsOccupied {
			return nil, ErrSlotOccupied
		}

		reservation, err := build(&lot)
		if err != nil {
			return nil, err
		}

		filter := bson.M{
			"id": lotID,
			"slots": bson.M{
				"$elemMatch": bson.M{
					"id":         slotID,
					"isOccupied": false,
				},
			},
		}
		update := bson.M{"$set": bson.M{"slots.$.isOccupied": true}}

		res, err := r.lotColl.UpdateOne(sc, filter, update)
		if err != nil {
			return nil, fmt.Errorf("claim slot failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, ErrSlotOccupied
		}

		if _, err := r.reservationColl.InsertOne(sc, reservation); err != nil {
			return nil, fmt.Errorf("insert reservation failed: %w", err)
		}

		return reservation, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*models.Reservation), nil
}
