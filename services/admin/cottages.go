package admin

import (
	"math"

	"go.uber.org/zap"

	cottageRepo "mountaincottage/database/repository/cottage"
	"mountaincottage/models"
)

// lastThreeNeedAttention reports whether a cottage has at least three ratings
// and the latest three are all below 2.
func lastThreeNeedAttention(latest []int) bool {
	if len(latest) < 3 {
		return false
	}
	for _, v := range latest {
		if v >= 2 {
			return false
		}
	}
	return true
}

// ListCottages returns every cottage decorated with its rating analysis for
// the moderation dashboard.
func (s *DefaultAdminService) ListCottages() ([]models.CottageModeration, error) {
	cottages, err := s.CottageRepo.List(cottageRepo.ListFilter{})
	if err != nil {
		return nil, err
	}

	now := s.now()
	owners := map[string]*models.PublicOwner{}
	out := make([]models.CottageModeration, 0, len(cottages))

	for _, c := range cottages {
		all, err := s.RatingRepo.ListByCottage(c.ID)
		if err != nil {
			return nil, err
		}
		latest, err := s.RatingRepo.ListLatestByCottage(c.ID, 3)
		if err != nil {
			return nil, err
		}

		lastThree := make([]int, 0, len(latest))
		for _, r := range latest {
			lastThree = append(lastThree, r.Value)
		}

		avg := 0.0
		if len(all) > 0 {
			sum := 0
			for _, r := range all {
				sum += r.Value
			}
			avg = math.Round(float64(sum)/float64(len(all))*10) / 10
		}

		owner, ok := owners[c.OwnerID]
		if !ok {
			if u, err := s.UserRepo.GetByID(c.OwnerID); err == nil && u != nil {
				owner = &models.PublicOwner{
					ID:        u.ID,
					FirstName: u.FirstName,
					LastName:  u.LastName,
					Email:     u.Email,
					Phone:     u.Phone,
				}
			}
			owners[c.OwnerID] = owner
		}

		out = append(out, models.CottageModeration{
			Cottage:          c,
			Owner:            owner,
			LastThreeRatings: lastThree,
			NeedsAttention:   lastThreeNeedAttention(lastThree),
			AverageRating:    avg,
			TotalRatings:     len(all),
			Blocked:          c.IsBlocked(now),
		})
	}
	return out, nil
}

// BlockCottage stops new reservations on the cottage for the next 48 hours.
// Existing reservations are untouched.
func (s *DefaultAdminService) BlockCottage(id string) (*models.Cottage, error) {
	c, err := s.CottageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, newNotFoundError("Cottage not found")
	}

	until := s.now().Add(cottageBlockDuration)
	if err := s.CottageRepo.SetBlockedUntil(id, &until); err != nil {
		return nil, err
	}
	c.BlockedUntil = &until

	s.Logger.Info("cottage blocked", zap.String("cottageId", id), zap.Time("until", until))
	return c, nil
}

// UnblockCottage lifts an admin block before it expires.
func (s *DefaultAdminService) UnblockCottage(id string) (*models.Cottage, error) {
	c, err := s.CottageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, newNotFoundError("Cottage not found")
	}

	if err := s.CottageRepo.SetBlockedUntil(id, nil); err != nil {
		return nil, err
	}
	c.BlockedUntil = nil

	s.Logger.Info("cottage unblocked", zap.String("cottageId", id))
	return c, nil
}
