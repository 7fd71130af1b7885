package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"mountaincottage/database"
	"mountaincottage/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo creates a new instance of ReservationRepository
// using MongoDB.
func NewMongoReservationRepo() ReservationRepository {
	repo := &MongoReservationRepo{coll: database.Collection("reservations")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReservationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "cottageId", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "touristId", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// overlapFilter matches confirmed reservations on the cottage overlapping
// [checkIn, checkOut] with inclusive bounds on both ends, so a back-to-back
// checkout and check-in on the same day count as a conflict.
func overlapFilter(cottageID string, checkIn, checkOut time.Time) bson.M {
	return bson.M{
		"cottageId": cottageID,
		"status":    models.ReservationConfirmed,
		"checkIn":   bson.M{"$lte": checkOut},
		"checkOut":  bson.M{"$gte": checkIn},
	}
}

// GetByID retrieves a reservation by its unique ID.
func (r *MongoReservationRepo) GetByID(id string) (*models.Reservation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var reservation models.Reservation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&reservation); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch reservation with id %s: %w", id, err)
	}
	return &reservation, nil
}

func (r *MongoReservationRepo) findAll(filter bson.M, sort bson.D) ([]models.Reservation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return reservations, nil
}

// ListByTourist retrieves a tourist's reservations, latest check-in first.
func (r *MongoReservationRepo) ListByTourist(touristID string) ([]models.Reservation, error) {
	return r.findAll(bson.M{"touristId": touristID}, bson.D{{Key: "checkIn", Value: -1}})
}

// ListByCottages retrieves all reservations on the given cottages, latest
// check-in first.
func (r *MongoReservationRepo) ListByCottages(cottageIDs []string) ([]models.Reservation, error) {
	if len(cottageIDs) == 0 {
		return nil, nil
	}
	return r.findAll(bson.M{"cottageId": bson.M{"$in": cottageIDs}}, bson.D{{Key: "checkIn", Value: -1}})
}

// FindConfirmedOverlapping returns confirmed reservations overlapping the range.
func (r *MongoReservationRepo) FindConfirmedOverlapping(cottageID string, checkIn, checkOut time.Time) ([]models.Reservation, error) {
	return r.findAll(overlapFilter(cottageID, checkIn, checkOut), nil)
}

// ListCompletedConfirmed returns confirmed reservations with a past check-out.
func (r *MongoReservationRepo) ListCompletedConfirmed(cottageIDs []string, before time.Time) ([]models.Reservation, error) {
	if len(cottageIDs) == 0 {
		return nil, nil
	}
	filter := bson.M{
		"cottageId": bson.M{"$in": cottageIDs},
		"status":    models.ReservationConfirmed,
		"checkOut":  bson.M{"$lt": before},
	}
	return r.findAll(filter, nil)
}

// CountActiveForCottage counts pending or confirmed reservations with a
// check-out at or after now.
func (r *MongoReservationRepo) CountActiveForCottage(cottageID string, now time.Time) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"cottageId": cottageID,
		"status":    bson.M{"$in": []string{models.ReservationPending, models.ReservationConfirmed}},
		"checkOut":  bson.M{"$gte": now},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count active reservations: %w", err)
	}
	return count, nil
}

// CountCreatedSince counts non-cancelled reservations created since t.
func (r *MongoReservationRepo) CountCreatedSince(t time.Time) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"createdAt": bson.M{"$gte": t},
		"status":    bson.M{"$ne": models.ReservationCancelled},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent reservations: %w", err)
	}
	return count, nil
}

// Update modifies an existing reservation document.
func (r *MongoReservationRepo) Update(reservation *models.Reservation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	reservation.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": reservation.ID}, bson.M{"$set": reservation})
	if err != nil {
		return fmt.Errorf("failed to update reservation with id %s: %w", reservation.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
