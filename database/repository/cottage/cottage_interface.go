package cottageRepo

import (
	"time"

	"mountaincottage/models"
)

// ListFilter narrows and orders cottage list queries. Name and Location are
// matched case-insensitively as substrings.
type ListFilter struct {
	Name      string
	Location  string
	SortBy    string
	SortOrder string
}

// CottageRepository defines methods for cottage data access.
type CottageRepository interface {
	// GetByID retrieves a cottage by its unique ID. Returns nil when absent.
	GetByID(id string) (*models.Cottage, error)
	// List retrieves cottages matching the filter.
	List(filter ListFilter) ([]models.Cottage, error)
	// ListByOwner retrieves an owner's cottages, newest first.
	ListByOwner(ownerID string) ([]models.Cottage, error)
	// Count counts all cottages.
	Count() (int64, error)
	// Create inserts a new cottage record.
	Create(cottage *models.Cottage) error
	// Update modifies an existing cottage record.
	Update(cottage *models.Cottage) error
	// SetBlockedUntil sets or clears the admin block timestamp.
	SetBlockedUntil(id string, until *time.Time) error
	// Delete removes a cottage record by its ID.
	Delete(id string) error
}
