package booking

import (
	"mountaincottage/models"
)

// cottageLookup caches cottage fetches across one listing build.
func (s *DefaultBookingService) cottageLookup() func(id string) *models.Cottage {
	cache := map[string]*models.Cottage{}
	return func(id string) *models.Cottage {
		if c, ok := cache[id]; ok {
			return c
		}
		c, err := s.CottageRepo.GetByID(id)
		if err != nil {
			c = nil
		}
		cache[id] = c
		return c
	}
}

// TouristReservations returns the tourist's reservations split into current
// (upcoming or in progress, not cancelled) and past. Past confirmed stays
// carry the tourist's rating of the cottage when one exists.
func (s *DefaultBookingService) TouristReservations(touristID string) (*models.TouristReservations, error) {
	reservations, err := s.ReservationRepo.ListByTourist(touristID)
	if err != nil {
		return nil, err
	}

	lookup := s.cottageLookup()
	now := s.now()
	out := &models.TouristReservations{
		Current: []models.TouristReservationView{},
		Past:    []models.TouristReservationView{},
	}

	for _, r := range reservations {
		view := models.TouristReservationView{Reservation: r}
		if cottage := lookup(r.CottageID); cottage != nil {
			view.CottageName = cottage.Name
			view.CottageLocation = cottage.Location
		}

		isPast := r.CheckOut.Before(now) || r.Status == models.ReservationCancelled
		if isPast {
			if r.Status == models.ReservationConfirmed {
				rating, err := s.RatingRepo.GetByCottageAndTourist(r.CottageID, touristID)
				if err == nil && rating != nil {
					view.HasRated = true
					value := rating.Value
					view.Rating = &value
					view.Comment = rating.Comment
				}
			}
			out.Past = append(out.Past, view)
		} else {
			out.Current = append(out.Current, view)
		}
	}
	return out, nil
}

// OwnerReservations returns every reservation on the owner's cottages, with
// the pending subset split out for approval.
func (s *DefaultBookingService) OwnerReservations(ownerID string) (*models.OwnerReservations, error) {
	cottages, err := s.CottageRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	cottageByID := map[string]models.Cottage{}
	ids := make([]string, 0, len(cottages))
	for _, c := range cottages {
		cottageByID[c.ID] = c
		ids = append(ids, c.ID)
	}

	out := &models.OwnerReservations{
		Pending: []models.OwnerReservationView{},
		All:     []models.OwnerReservationView{},
	}
	if len(ids) == 0 {
		return out, nil
	}

	reservations, err := s.ReservationRepo.ListByCottages(ids)
	if err != nil {
		return nil, err
	}

	tourists := map[string]*models.User{}
	for _, r := range reservations {
		view := models.OwnerReservationView{Reservation: r}
		if cottage, ok := cottageByID[r.CottageID]; ok {
			view.CottageName = cottage.Name
			view.CottageLocation = cottage.Location
		}

		tourist, ok := tourists[r.TouristID]
		if !ok {
			tourist, _ = s.UserRepo.GetByID(r.TouristID)
			tourists[r.TouristID] = tourist
		}
		if tourist != nil {
			view.TouristName = tourist.FirstName + " " + tourist.LastName
			view.TouristEmail = tourist.Email
			view.TouristPhone = tourist.Phone
		}

		out.All = append(out.All, view)
		if r.Status == models.ReservationPending {
			out.Pending = append(out.Pending, view)
		}
	}
	return out, nil
}
