package userRepo

import (
	"mountaincottage/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByUsername retrieves a user by username. Returns nil when absent.
	GetByUsername(username string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns nil when absent.
	GetByEmail(email string) (*models.User, error)
	// GetByIDWithProjection retrieves a user by ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	// ListByRoles retrieves all users holding one of the given roles,
	// newest first.
	ListByRoles(roles []string) ([]models.User, error)
	// CountActiveByRole counts active users with the given role.
	CountActiveByRole(role string) (int64, error)
	// EmailInUseByOther reports whether another user already uses the email.
	EmailInUseByOther(email, excludeID string) (bool, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// SetActive flips the active flag and returns the updated user.
	SetActive(id string, active bool) (*models.User, error)
	// Delete removes a user record by its ID.
	Delete(id string) error
}
