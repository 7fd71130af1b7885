package registrationRepo

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

// MongoRegistrationRepo implements RegistrationRepository using MongoDB.
type MongoRegistrationRepo struct {
	coll *mongo.Collection
}

// NewMongoRegistrationRepo creates a new instance of RegistrationRepository
// using MongoDB.
func NewMongoRegistrationRepo() RegistrationRepository {
	repo := &MongoRegistrationRepo{coll: database.Collection("registration_requests")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRegistrationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "status", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a request by its unique ID. Returns nil when absent.
func (r *MongoRegistrationRepo) GetByID(id string) (*models.RegistrationRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var request models.RegistrationRequest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch registration request with id %s: %w", id, err)
	}
	return &request, nil
}

// ListPending retrieves all pending requests.
func (r *MongoRegistrationRepo) ListPending() ([]models.RegistrationRequest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"status": models.RequestPending})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve registration requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.RegistrationRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode registration requests: %w", err)
	}
	return requests, nil
}

// HasWithStatus reports whether a request with the given status exists for
// the username or email. Rejected entries are never cleared, which keeps a
// rejected identity permanently blocked.
func (r *MongoRegistrationRepo) HasWithStatus(username, email, status string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"$or":    bson.A{bson.M{"username": username}, bson.M{"email": email}},
		"status": status,
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check registration requests: %w", err)
	}
	return count > 0, nil
}

// Create inserts a new registration request.
func (r *MongoRegistrationRepo) Create(request *models.RegistrationRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	request.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, request); err != nil {
		return fmt.Errorf("failed to create registration request: %w", err)
	}
	return nil
}

// Update modifies an existing registration request.
func (r *MongoRegistrationRepo) Update(request *models.RegistrationRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": request.ID}, bson.M{"$set": request})
	if err != nil {
		return fmt.Errorf("failed to update registration request with id %s: %w", request.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("registration request with id %s not found", request.ID)
	}
	return nil
}
