package lotRepo

import (
	"fmt"
	"time"

	"smartpark/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new parking lot document.
func (r *MongoLotRepo) Create(lot *models.ParkingLot) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	lot.CreatedAt = now
	lot.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, lot)
	if err != nil {
		return fmt.Errorf("failed to create parking lot: %w", err)
	}
	return nil
}

// Update modifies an existing parking lot document. The slots array is
// excluded from admin updates so edits cannot race the reservation
// transaction's occupancy writes.
func (r *MongoLotRepo) Update(lot *models.ParkingLot) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	lot.UpdatedAt = time.Now()
	filter := bson.M{"id": lot.ID}
	update := bson.M{"$set": bson.M{
		"name":            lot.Name,
		"address":         lot.Address,
		"location":        lot.Location,
		"hourlyRateCents": lot.HourlyRateCents,
		"updatedAt":       lot.UpdatedAt,
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update parking lot with id %s: %w", lot.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("parking lot with id %s not found", lot.ID)
	}
	return nil
}

// Delete removes a parking lot document by its ID.
func (r *MongoLotRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete parking lot with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("parking lot with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a parking lot by its unique ID.
func (r *MongoLotRepo) GetByID(id string) (*models.ParkingLot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var lot models.ParkingLot
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&lot); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching parking lot with id %s: %w", id, err)
	}
	return &lot, nil
}

// GetAll retrieves every parking lot, sorted by name.
func (r *MongoLotRepo) GetAll() ([]models.ParkingLot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching parking lots: %w", err)
	}
	defer cursor.Close(ctx)

	var lots []models.ParkingLot
	if err := cursor.All(ctx, &lots); err != nil {
		return nil, fmt.Errorf("error decoding parking lots: %w", err)
	}
	return lots, nil
}

// Count returns the number of parking lot documents.
func (r *MongoLotRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting parking lots: %w", err)
	}
	return n, nil
}
