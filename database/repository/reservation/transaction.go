package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"mountaincottage/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// withTransaction runs fn inside a Mongo session transaction.
func (r *MongoReservationRepo) withTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

func (r *MongoReservationRepo) countOverlapping(sc mongo.SessionContext, cottageID string, checkIn, checkOut time.Time, excludeID string) (int64, error) {
	filter := overlapFilter(cottageID, checkIn, checkOut)
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	count, err := r.coll.CountDocuments(sc, filter)
	if err != nil {
		return 0, fmt.Errorf("conflict check failed: %w", err)
	}
	return count, nil
}

// CreatePendingGuarded re-checks for confirmed conflicts and inserts the
// pending reservation in one transaction, closing the gap between the
// availability check and the write.
func (r *MongoReservationRepo) CreatePendingGuarded(ctx context.Context, reservation *models.Reservation) error {
	now := time.Now()
	reservation.Status = models.ReservationPending
	reservation.CreatedAt = now
	reservation.UpdatedAt = now

	return r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		count, err := r.countOverlapping(sc, reservation.CottageID, reservation.CheckIn, reservation.CheckOut, "")
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrDateConflict
		}
		if _, err := r.coll.InsertOne(sc, reservation); err != nil {
			return fmt.Errorf("insert reservation failed: %w", err)
		}
		return nil
	})
}

// ConfirmGuarded flips a pending reservation to confirmed after re-running
// the overlap check against other confirmed reservations. When two pending
// reservations race for the same range, the second confirmation fails here.
func (r *MongoReservationRepo) ConfirmGuarded(ctx context.Context, id string) (*models.Reservation, error) {
	var confirmed models.Reservation

	err := r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		var reservation models.Reservation
		if err := r.coll.FindOne(sc, bson.M{"id": id}).Decode(&reservation); err != nil {
			if err == mongo.ErrNoDocuments {
				return ErrNotFound
			}
			return fmt.Errorf("failed to fetch reservation with id %s: %w", id, err)
		}
		if reservation.Status != models.ReservationPending {
			return &StateError{Status: reservation.Status}
		}

		count, err := r.countOverlapping(sc, reservation.CottageID, reservation.CheckIn, reservation.CheckOut, reservation.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrDateConflict
		}

		update := bson.M{"$set": bson.M{
			"status":    models.ReservationConfirmed,
			"updatedAt": time.Now(),
		}}
		if _, err := r.coll.UpdateOne(sc, bson.M{"id": id}, update); err != nil {
			return fmt.Errorf("failed to confirm reservation with id %s: %w", id, err)
		}

		reservation.Status = models.ReservationConfirmed
		confirmed = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &confirmed, nil
}
