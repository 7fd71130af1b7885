package cottage

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mountaincottage/models"
	"mountaincottage/utils"
)

// hasCompletedStay reports whether the tourist has a confirmed reservation on
// the cottage whose check-out has passed.
func (s *DefaultCottageService) hasCompletedStay(touristID, cottageID string, now time.Time) (bool, error) {
	reservations, err := s.ReservationRepo.ListByTourist(touristID)
	if err != nil {
		return false, err
	}
	for _, r := range reservations {
		if r.CottageID == cottageID && r.Status == models.ReservationConfirmed && r.CheckOut.Before(now) {
			return true, nil
		}
	}
	return false, nil
}

// Rate records the tourist's score for a cottage they completed a stay in.
// One rating per tourist per cottage; a repeat submission replaces the first.
func (s *DefaultCottageService) Rate(touristID, cottageID string, value int, comment string) (*models.Rating, error) {
	if value < 1 || value > 5 {
		return nil, newValidationError("Rating must be between 1 and 5")
	}
	if strings.TrimSpace(comment) == "" {
		return nil, newValidationError("Comment is required")
	}

	c, err := s.CottageRepo.GetByID(cottageID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, newNotFoundError("Cottage not found")
	}

	stayed, err := s.hasCompletedStay(touristID, cottageID, s.now())
	if err != nil {
		return nil, err
	}
	if !stayed {
		return nil, newForbiddenError("You can only rate cottages you have stayed in.")
	}

	rating := &models.Rating{
		ID:        uuid.New().String(),
		CottageID: cottageID,
		TouristID: touristID,
		Value:     value,
		Comment:   utils.SanitizeString(comment),
	}
	created, err := s.RatingRepo.Upsert(rating)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("cottage rated",
		zap.String("cottageId", cottageID),
		zap.String("touristId", touristID),
		zap.Int("rating", value),
		zap.Bool("created", created))
	return rating, nil
}
