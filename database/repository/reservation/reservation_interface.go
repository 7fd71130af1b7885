package reservationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mountaincottage/models"
)

// ErrDateConflict signals that a confirmed reservation already occupies an
// overlapping date range.
var ErrDateConflict = errors.New("dates conflict with a confirmed reservation")

// ErrNotFound signals a missing reservation document.
var ErrNotFound = errors.New("reservation not found")

// StateError signals a transition attempted from the wrong status.
type StateError struct {
	Status string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("reservation is already %s", e.Status)
}

// ReservationRepository defines methods for reservation data access.
type ReservationRepository interface {
	// GetByID retrieves a reservation by its unique ID. Returns ErrNotFound
	// when absent.
	GetByID(id string) (*models.Reservation, error)
	// ListByTourist retrieves a tourist's reservations, latest check-in first.
	ListByTourist(touristID string) ([]models.Reservation, error)
	// ListByCottages retrieves all reservations on the given cottages,
	// latest check-in first.
	ListByCottages(cottageIDs []string) ([]models.Reservation, error)
	// FindConfirmedOverlapping returns confirmed reservations on the cottage
	// whose range overlaps [checkIn, checkOut] under inclusive bounds.
	FindConfirmedOverlapping(cottageID string, checkIn, checkOut time.Time) ([]models.Reservation, error)
	// ListCompletedConfirmed returns confirmed reservations on the cottages
	// with a check-out before the given time.
	ListCompletedConfirmed(cottageIDs []string, before time.Time) ([]models.Reservation, error)
	// CountActiveForCottage counts pending or confirmed reservations on the
	// cottage with a check-out at or after now.
	CountActiveForCottage(cottageID string, now time.Time) (int64, error)
	// CountCreatedSince counts non-cancelled reservations created since t.
	CountCreatedSince(t time.Time) (int64, error)
	// Update modifies an existing reservation record.
	Update(reservation *models.Reservation) error
	// CreatePendingGuarded re-runs the confirmed-overlap check and inserts the
	// pending reservation inside one transaction. Returns ErrDateConflict
	// when the range is taken.
	CreatePendingGuarded(ctx context.Context, reservation *models.Reservation) error
	// ConfirmGuarded re-runs the confirmed-overlap check and flips the
	// reservation to confirmed inside one transaction. Returns ErrNotFound,
	// a StateError for non-pending reservations, or ErrDateConflict when a
	// competing reservation was confirmed first.
	ConfirmGuarded(ctx context.Context, id string) (*models.Reservation, error)
}
