package cottageRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"mountaincottage/database"
	"mountaincottage/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Sortable cottage list fields. Anything else falls back to name.
var allowedSortFields = map[string]bool{
	"name":        true,
	"location":    true,
	"summerPrice": true,
	"winterPrice": true,
	"capacity":    true,
	"createdAt":   true,
}

// MongoCottageRepo implements CottageRepository using MongoDB.
type MongoCottageRepo struct {
	coll *mongo.Collection
}

// NewMongoCottageRepo creates a new instance of CottageRepository using MongoDB.
func NewMongoCottageRepo() CottageRepository {
	repo := &MongoCottageRepo{coll: database.Collection("cottages")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCottageRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "ownerId", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "location", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a cottage by its unique ID. Returns nil when absent.
func (r *MongoCottageRepo) GetByID(id string) (*models.Cottage, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var cottage models.Cottage
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&cottage); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch cottage with id %s: %w", id, err)
	}
	return &cottage, nil
}

// List retrieves cottages matching the filter.
func (r *MongoCottageRepo) List(filter ListFilter) ([]models.Cottage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Name != "" {
		query["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Name), Options: "i"}
	}
	if filter.Location != "" {
		query["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Location), Options: "i"}
	}

	sortBy := filter.SortBy
	if !allowedSortFields[sortBy] {
		sortBy = "name"
	}
	order := 1
	if filter.SortOrder == "desc" {
		order = -1
	}

	opts := options.Find().SetSort(bson.D{{Key: sortBy, Value: order}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cottages: %w", err)
	}
	defer cursor.Close(ctx)

	var cottages []models.Cottage
	if err := cursor.All(ctx, &cottages); err != nil {
		return nil, fmt.Errorf("failed to decode cottages: %w", err)
	}
	return cottages, nil
}

// ListByOwner retrieves an owner's cottages, newest first.
func (r *MongoCottageRepo) ListByOwner(ownerID string) ([]models.Cottage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cottages for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var cottages []models.Cottage
	if err := cursor.All(ctx, &cottages); err != nil {
		return nil, fmt.Errorf("failed to decode cottages: %w", err)
	}
	return cottages, nil
}

// Count counts all cottages.
func (r *MongoCottageRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count cottages: %w", err)
	}
	return count, nil
}

// Create inserts a new cottage document.
func (r *MongoCottageRepo) Create(cottage *models.Cottage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	cottage.CreatedAt = now
	cottage.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, cottage); err != nil {
		return fmt.Errorf("failed to create cottage: %w", err)
	}
	return nil
}

// Update modifies an existing cottage document.
func (r *MongoCottageRepo) Update(cottage *models.Cottage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cottage.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": cottage.ID}, bson.M{"$set": cottage})
	if err != nil {
		return fmt.Errorf("failed to update cottage with id %s: %w", cottage.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("cottage with id %s not found", cottage.ID)
	}
	return nil
}

// SetBlockedUntil sets or clears the admin block timestamp.
func (r *MongoCottageRepo) SetBlockedUntil(id string, until *time.Time) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var update bson.M
	if until != nil {
		update = bson.M{"$set": bson.M{"blockedUntil": *until, "updatedAt": time.Now()}}
	} else {
		update = bson.M{
			"$unset": bson.M{"blockedUntil": ""},
			"$set":   bson.M{"updatedAt": time.Now()},
		}
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update block on cottage %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("cottage with id %s not found", id)
	}
	return nil
}

// Delete removes a cottage document by its ID.
func (r *MongoCottageRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete cottage with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("cottage with id %s not found", id)
	}
	return nil
}
