package cottage

import (
	"time"

	"mountaincottage/models"
)

// monthKey formats a check-out month as "YYYY-MM".
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// splitNights walks each night of a stay and counts Saturday/Sunday nights
// against the rest.
func splitNights(checkIn, checkOut time.Time) (weekend, weekday int) {
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
			weekend++
		default:
			weekday++
		}
	}
	return weekend, weekday
}

// Statistics aggregates the owner's completed stays: confirmed reservations
// whose check-out has passed, grouped per cottage by check-out month and by
// weekend versus weekday nights.
func (s *DefaultCottageService) Statistics(ownerID string) (*models.OwnerStatistics, error) {
	cottages, err := s.CottageRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	out := &models.OwnerStatistics{
		ReservationsPerMonth: []models.MonthlyReservations{},
		WeekendVsWeekday:     []models.WeekendSplit{},
	}
	if len(cottages) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(cottages))
	for _, c := range cottages {
		ids = append(ids, c.ID)
	}
	completed, err := s.ReservationRepo.ListCompletedConfirmed(ids, s.now())
	if err != nil {
		return nil, err
	}

	byCottage := map[string][]models.Reservation{}
	for _, r := range completed {
		byCottage[r.CottageID] = append(byCottage[r.CottageID], r)
	}

	for _, c := range cottages {
		months := map[string]int{}
		weekend, weekday := 0, 0
		for _, r := range byCottage[c.ID] {
			months[monthKey(r.CheckOut)]++
			we, wd := splitNights(r.CheckIn, r.CheckOut)
			weekend += we
			weekday += wd
		}
		out.ReservationsPerMonth = append(out.ReservationsPerMonth, models.MonthlyReservations{
			CottageID:   c.ID,
			CottageName: c.Name,
			Months:      months,
		})
		out.WeekendVsWeekday = append(out.WeekendVsWeekday, models.WeekendSplit{
			CottageID:   c.ID,
			CottageName: c.Name,
			WeekendDays: weekend,
			WeekdayDays: weekday,
		})
	}
	return out, nil
}
