package booking

import (
	"fmt"
	"math"
	"time"

	"mountaincottage/models"
)

// Summer season months (May through August). A night's rate is the cottage's
// summer price when its calendar month falls in this window, the winter price
// otherwise.
const (
	summerStartMonth = time.May
	summerEndMonth   = time.August
)

// isSummerDay reports whether the night starting on d is charged at the
// summer rate.
func isSummerDay(d time.Time) bool {
	return d.Month() >= summerStartMonth && d.Month() <= summerEndMonth
}

// NightCount returns the stay length in whole days, rounding partial days up.
func NightCount(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// StayPrice walks each night in [checkIn, checkOut) and sums the seasonal
// nightly rate.
func StayPrice(cottage *models.Cottage, checkIn, checkOut time.Time) float64 {
	total := 0.0
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		if isSummerDay(d) {
			total += cottage.SummerPrice
		} else {
			total += cottage.WinterPrice
		}
	}
	return total
}

// overlapsConfirmed applies the inclusive-both-ends overlap test:
// existing.checkIn <= requestedCheckOut AND existing.checkOut >= requestedCheckIn.
// A checkout and a check-in on the same calendar day therefore conflict.
func overlapsConfirmed(existing models.Reservation, checkIn, checkOut time.Time) bool {
	if existing.Status != models.ReservationConfirmed {
		return false
	}
	return !existing.CheckIn.After(checkOut) && !existing.CheckOut.Before(checkIn)
}

// EvaluateAvailability decides whether a reservation may be created for the
// cottage and computes its price. It is a pure function of the cottage
// snapshot, the confirmed-reservations snapshot and the clock; pending
// reservations never block a request.
func EvaluateAvailability(
	cottage *models.Cottage,
	confirmed []models.Reservation,
	checkIn, checkOut time.Time,
	adults, children int,
	now time.Time,
) models.AvailabilityResult {
	if cottage.IsBlocked(now) {
		return models.AvailabilityResult{
			Available: false,
			Message:   "This cottage is temporarily blocked by the administrator. Please try again later.",
		}
	}

	totalGuests := adults + children
	if totalGuests > cottage.Capacity {
		return models.AvailabilityResult{
			Available: false,
			Message:   fmt.Sprintf("Cottage capacity is %d guests. You selected %d guests.", cottage.Capacity, totalGuests),
		}
	}

	if !checkIn.Before(checkOut) {
		return models.AvailabilityResult{
			Available: false,
			Message:   "Check-out date must be after check-in date.",
		}
	}
	if checkIn.Before(now) {
		return models.AvailabilityResult{
			Available: false,
			Message:   "Check-in date cannot be in the past.",
		}
	}

	for _, existing := range confirmed {
		if overlapsConfirmed(existing, checkIn, checkOut) {
			return models.AvailabilityResult{
				Available: false,
				Message:   "Cottage is not available for the selected dates. Please choose different dates.",
			}
		}
	}

	return models.AvailabilityResult{
		Available:   true,
		Message:     "Cottage is available!",
		Nights:      NightCount(checkIn, checkOut),
		TotalPrice:  StayPrice(cottage, checkIn, checkOut),
		SummerPrice: cottage.SummerPrice,
		WinterPrice: cottage.WinterPrice,
	}
}
