package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	reservationRepo "mountaincottage/database/repository/reservation"
	"mountaincottage/models"
	"mountaincottage/utils"
)

// cancellationNotice is the minimum lead time before check-in for a tourist
// cancellation.
const cancellationNotice = 24 * time.Hour

// cancellationGuard validates a tourist cancellation against the clock.
func cancellationGuard(reservation *models.Reservation, now time.Time) error {
	if reservation.Status == models.ReservationCancelled {
		return newConflictError("Reservation is already cancelled")
	}
	if !reservation.CheckIn.After(now.Add(cancellationNotice)) {
		return newValidationError("Cannot cancel reservation. Cancellation must be made at least 1 day before check-in.")
	}
	return nil
}

// rejectionGuard validates an owner rejection.
func rejectionGuard(reservation *models.Reservation, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return newValidationError("Rejection reason is required.")
	}
	if reservation.Status != models.ReservationPending {
		return newConflictError(fmt.Sprintf("Reservation is already %s", reservation.Status))
	}
	return nil
}

// loadForOwner fetches the reservation and verifies that ownerID owns the
// cottage it targets.
func (s *DefaultBookingService) loadForOwner(ownerID, reservationID string) (*models.Reservation, error) {
	reservation, err := s.ReservationRepo.GetByID(reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			return nil, newNotFoundError("Reservation not found")
		}
		return nil, err
	}

	cottage, err := s.CottageRepo.GetByID(reservation.CottageID)
	if err != nil {
		return nil, err
	}
	if cottage == nil || cottage.OwnerID != ownerID {
		return nil, newForbiddenError("You can only manage reservations for your own cottages.")
	}
	return reservation, nil
}

// Confirm flips a pending reservation to confirmed. The repository re-runs the
// overlap check in the same transaction as the status flip, so only one of
// two competing pending reservations can win the dates.
func (s *DefaultBookingService) Confirm(ctx context.Context, ownerID, reservationID string) (*models.Reservation, error) {
	if _, err := s.loadForOwner(ownerID, reservationID); err != nil {
		return nil, err
	}

	confirmed, err := s.ReservationRepo.ConfirmGuarded(ctx, reservationID)
	if err != nil {
		var stateErr *reservationRepo.StateError
		switch {
		case errors.Is(err, reservationRepo.ErrNotFound):
			return nil, newNotFoundError("Reservation not found")
		case errors.As(err, &stateErr):
			return nil, newConflictError(fmt.Sprintf("Reservation is already %s", stateErr.Status))
		case errors.Is(err, reservationRepo.ErrDateConflict):
			return nil, newConflictError("Cottage is no longer available for the selected dates. Please try again.")
		}
		return nil, err
	}

	s.Logger.Info("reservation confirmed",
		zap.String("reservationId", reservationID),
		zap.String("ownerId", ownerID))
	return confirmed, nil
}

// Reject cancels a pending reservation and records the owner's reason on the
// note.
func (s *DefaultBookingService) Reject(ownerID, reservationID, reason string) (*models.Reservation, error) {
	reservation, err := s.loadForOwner(ownerID, reservationID)
	if err != nil {
		return nil, err
	}
	if err := rejectionGuard(reservation, reason); err != nil {
		return nil, err
	}

	reservation.Status = models.ReservationCancelled
	reservation.Note = "Rejected by owner: " + utils.SanitizeString(strings.TrimSpace(reason))
	if err := s.ReservationRepo.Update(reservation); err != nil {
		return nil, err
	}

	s.Logger.Info("reservation rejected",
		zap.String("reservationId", reservationID),
		zap.String("ownerId", ownerID))
	return reservation, nil
}

// Cancel cancels the tourist's own reservation. Cancellation is allowed up to
// one day before check-in.
func (s *DefaultBookingService) Cancel(touristID, reservationID string) (*models.Reservation, error) {
	reservation, err := s.ReservationRepo.GetByID(reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			return nil, newNotFoundError("Reservation not found")
		}
		return nil, err
	}
	if reservation.TouristID != touristID {
		return nil, newForbiddenError("You can only cancel your own reservations.")
	}
	if err := cancellationGuard(reservation, s.now()); err != nil {
		return nil, err
	}

	reservation.Status = models.ReservationCancelled
	if err := s.ReservationRepo.Update(reservation); err != nil {
		return nil, err
	}

	s.Logger.Info("reservation cancelled",
		zap.String("reservationId", reservationID),
		zap.String("touristId", touristID))
	return reservation, nil
}
