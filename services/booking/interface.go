package booking

import (
	"context"

	"mountaincottage/models"
)

// BookingService defines the reservation workflow: availability checks,
// reservation creation, the owner and tourist lifecycle transitions, and the
// dashboard listings.
type BookingService interface {
	// CheckAvailability evaluates a prospective stay without creating anything.
	// The returned result carries the verdict and, when available, the price.
	CheckAvailability(cottageID string, req models.AvailabilityRequest) (models.AvailabilityResult, error)

	// Reserve creates a pending reservation, re-running the availability check
	// inside a transaction so two tourists cannot take the same dates.
	Reserve(ctx context.Context, touristID, cottageID string, req models.ReservationRequest) (*models.Reservation, error)

	// Confirm flips a pending reservation to confirmed on behalf of the owner.
	Confirm(ctx context.Context, ownerID, reservationID string) (*models.Reservation, error)

	// Reject cancels a pending reservation with the owner's reason recorded
	// on the note.
	Reject(ownerID, reservationID, reason string) (*models.Reservation, error)

	// Cancel cancels the tourist's own reservation if check-in is more than a
	// day away.
	Cancel(touristID, reservationID string) (*models.Reservation, error)

	// TouristReservations lists the tourist's reservations split into current
	// and past, with rating info attached to past stays.
	TouristReservations(touristID string) (*models.TouristReservations, error)

	// OwnerReservations lists all reservations on the owner's cottages with
	// the pending subset split out.
	OwnerReservations(ownerID string) (*models.OwnerReservations, error)
}
