package cottage

import (
	"math"

	cottageRepo "mountaincottage/database/repository/cottage"
	"mountaincottage/models"
)

// ratingAggregate computes the average (one decimal) and count of a rating set.
func ratingAggregate(ratings []models.Rating) (float64, int) {
	if len(ratings) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Value
	}
	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*10) / 10, len(ratings)
}

func (s *DefaultCottageService) publicOwner(ownerID string) *models.PublicOwner {
	owner, err := s.UserRepo.GetByID(ownerID)
	if err != nil || owner == nil {
		return nil
	}
	return &models.PublicOwner{
		ID:        owner.ID,
		FirstName: owner.FirstName,
		LastName:  owner.LastName,
		Email:     owner.Email,
		Phone:     owner.Phone,
	}
}

func (s *DefaultCottageService) withRating(c models.Cottage, owner bool) (models.CottageWithRating, []models.Rating) {
	ratings, err := s.RatingRepo.ListByCottage(c.ID)
	if err != nil {
		ratings = nil
	}
	avg, count := ratingAggregate(ratings)
	view := models.CottageWithRating{Cottage: c, AverageRating: avg, RatingCount: count}
	if owner {
		view.Owner = s.publicOwner(c.OwnerID)
	}
	return view, ratings
}

// List returns cottages matching the filter decorated with rating aggregates
// and owner contact info.
func (s *DefaultCottageService) List(filter cottageRepo.ListFilter) ([]models.CottageWithRating, error) {
	cottages, err := s.CottageRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]models.CottageWithRating, 0, len(cottages))
	for _, c := range cottages {
		view, _ := s.withRating(c, true)
		out = append(out, view)
	}
	return out, nil
}

// GetDetail returns one cottage with its individual ratings, each carrying
// the rating tourist's name.
func (s *DefaultCottageService) GetDetail(id string) (*models.CottageDetail, error) {
	c, err := s.CottageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, newNotFoundError("Cottage not found")
	}

	view, ratings := s.withRating(*c, true)
	detail := &models.CottageDetail{CottageWithRating: view, Ratings: []models.RatingView{}}

	names := map[string]string{}
	for _, r := range ratings {
		name, ok := names[r.TouristID]
		if !ok {
			if tourist, err := s.UserRepo.GetByID(r.TouristID); err == nil && tourist != nil {
				name = tourist.FirstName + " " + tourist.LastName
			}
			names[r.TouristID] = name
		}
		detail.Ratings = append(detail.Ratings, models.RatingView{Rating: r, TouristName: name})
	}
	return detail, nil
}
