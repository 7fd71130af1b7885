package ratingRepo

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

// MongoRatingRepo implements RatingRepository using MongoDB.
type MongoRatingRepo struct {
	coll *mongo.Collection
}

// NewMongoRatingRepo creates a new instance of RatingRepository using MongoDB.
func NewMongoRatingRepo() RatingRepository {
	repo := &MongoRatingRepo{coll: database.Collection("ratings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRatingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	// The compound unique index backs the one-rating-per-tourist rule.
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys:    bson.D{{Key: "cottageId", Value: 1}, {Key: "touristId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoRatingRepo) find(filter bson.M, opts *options.FindOptions) ([]models.Rating, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var ratings []models.Rating
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, fmt.Errorf("failed to decode ratings: %w", err)
	}
	return ratings, nil
}

// ListByCottage retrieves a cottage's ratings, newest first.
func (r *MongoRatingRepo) ListByCottage(cottageID string) ([]models.Rating, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(bson.M{"cottageId": cottageID}, opts)
}

// ListLatestByCottage retrieves the newest limit ratings of a cottage.
func (r *MongoRatingRepo) ListLatestByCottage(cottageID string, limit int) ([]models.Rating, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(bson.M{"cottageId": cottageID}, opts)
}

// GetByCottageAndTourist retrieves a tourist's rating of a cottage.
func (r *MongoRatingRepo) GetByCottageAndTourist(cottageID, touristID string) (*models.Rating, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var rating models.Rating
	err := r.coll.FindOne(ctx, bson.M{"cottageId": cottageID, "touristId": touristID}).Decode(&rating)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch rating: %w", err)
	}
	return &rating, nil
}

// Upsert inserts the rating or updates the existing document for the same
// (cottage, tourist) pair.
func (r *MongoRatingRepo) Upsert(rating *models.Rating) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{"cottageId": rating.CottageID, "touristId": rating.TouristID}
	update := bson.M{
		"$set": bson.M{
			"rating":    rating.Value,
			"comment":   rating.Comment,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"id":        rating.ID,
			"cottageId": rating.CottageID,
			"touristId": rating.TouristID,
			"createdAt": now,
		},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("failed to upsert rating: %w", err)
	}
	return result.UpsertedCount > 0, nil
}
