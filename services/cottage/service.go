package cottage

import (
	"context"
	"time"

	"go.uber.org/zap"

	cottageRepo "mountaincottage/database/repository/cottage"
	ratingRepo "mountaincottage/database/repository/rating"
	reservationRepo "mountaincottage/database/repository/reservation"
	userRepo "mountaincottage/database/repository/user"
	"mountaincottage/models"
	"mountaincottage/services/storage"
)

// maxCottageImages caps the gallery size per cottage.
const maxCottageImages = 10

// CottageService covers the tourist browse surface, ratings, and the owner
// management surface.
type CottageService interface {
	// List returns cottages matching the filter with their rating aggregates.
	List(filter cottageRepo.ListFilter) ([]models.CottageWithRating, error)
	// GetDetail returns one cottage with its owner, rating aggregate and the
	// individual ratings.
	GetDetail(id string) (*models.CottageDetail, error)
	// Rate records the tourist's score and comment for a cottage they stayed
	// in. A repeat submission updates the earlier one.
	Rate(touristID, cottageID string, value int, comment string) (*models.Rating, error)

	// ListByOwner returns the owner's cottages with rating aggregates.
	ListByOwner(ownerID string) ([]models.CottageWithRating, error)
	// Create adds a cottage with its images already validated and uploaded.
	Create(ctx context.Context, ownerID string, input models.CottageInput, images [][]byte) (*models.Cottage, error)
	// ImportJSON creates a cottage from an uploaded JSON document.
	ImportJSON(ctx context.Context, ownerID string, data []byte) (*models.Cottage, error)
	// Update edits the owner's cottage. keepImages lists existing image URLs
	// that survive; the rest are removed from storage. newImages are appended.
	Update(ctx context.Context, ownerID, cottageID string, input models.CottageInput, keepImages []string, newImages [][]byte) (*models.Cottage, error)
	// Delete removes the owner's cottage unless reservations are still active.
	Delete(ctx context.Context, ownerID, cottageID string) error
	// Statistics returns the owner's monthly and weekend/weekday breakdowns.
	Statistics(ownerID string) (*models.OwnerStatistics, error)
}

// DefaultCottageService implements CottageService on the Mongo repositories
// and Cloudinary.
type DefaultCottageService struct {
	CottageRepo     cottageRepo.CottageRepository
	RatingRepo      ratingRepo.RatingRepository
	ReservationRepo reservationRepo.ReservationRepository
	UserRepo        userRepo.UserRepository
	Storage         storage.StorageService
	Logger          *zap.Logger

	now func() time.Time
}

// NewCottageService wires a cottage service over the given collaborators.
func NewCottageService(
	cottages cottageRepo.CottageRepository,
	ratings ratingRepo.RatingRepository,
	reservations reservationRepo.ReservationRepository,
	users userRepo.UserRepository,
	store storage.StorageService,
	logger *zap.Logger,
) *DefaultCottageService {
	return &DefaultCottageService{
		CottageRepo:     cottages,
		RatingRepo:      ratings,
		ReservationRepo: reservations,
		UserRepo:        users,
		Storage:         store,
		Logger:          logger,
		now:             time.Now,
	}
}
