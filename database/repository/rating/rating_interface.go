package ratingRepo

import "mountaincottage/models"

// RatingRepository defines methods for rating data access.
type RatingRepository interface {
	// ListByCottage retrieves a cottage's ratings, newest first.
	ListByCottage(cottageID string) ([]models.Rating, error)
	// ListLatestByCottage retrieves the newest limit ratings of a cottage.
	ListLatestByCottage(cottageID string, limit int) ([]models.Rating, error)
	// GetByCottageAndTourist retrieves a tourist's rating of a cottage.
	// Returns nil when the tourist has not rated it.
	GetByCottageAndTourist(cottageID, touristID string) (*models.Rating, error)
	// Upsert inserts the rating or updates the existing document for the
	// same (cottage, tourist) pair. Reports whether a new document was
	// created.
	Upsert(rating *models.Rating) (created bool, err error)
}
