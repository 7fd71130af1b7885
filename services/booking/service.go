package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	cottageRepo "mountaincottage/database/repository/cottage"
	ratingRepo "mountaincottage/database/repository/rating"
	reservationRepo "mountaincottage/database/repository/reservation"
	userRepo "mountaincottage/database/repository/user"
	"mountaincottage/models"
	"mountaincottage/utils"
)

// DefaultBookingService implements BookingService on the Mongo repositories.
type DefaultBookingService struct {
	ReservationRepo reservationRepo.ReservationRepository
	CottageRepo     cottageRepo.CottageRepository
	RatingRepo      ratingRepo.RatingRepository
	UserRepo        userRepo.UserRepository
	Logger          *zap.Logger

	now func() time.Time
}

// NewBookingService wires a booking service over the given repositories.
func NewBookingService(
	reservations reservationRepo.ReservationRepository,
	cottages cottageRepo.CottageRepository,
	ratings ratingRepo.RatingRepository,
	users userRepo.UserRepository,
	logger *zap.Logger,
) *DefaultBookingService {
	return &DefaultBookingService{
		ReservationRepo: reservations,
		CottageRepo:     cottages,
		RatingRepo:      ratings,
		UserRepo:        users,
		Logger:          logger,
		now:             time.Now,
	}
}

func (s *DefaultBookingService) parseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := utils.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, newValidationError("Invalid check-in date.")
	}
	out, err := utils.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, newValidationError("Invalid check-out date.")
	}
	return in, out, nil
}

// evaluate loads the cottage and its competing confirmed reservations and
// runs the availability evaluator against them.
func (s *DefaultBookingService) evaluate(cottageID string, checkIn, checkOut time.Time, adults, children int) (models.AvailabilityResult, error) {
	cottage, err := s.CottageRepo.GetByID(cottageID)
	if err != nil {
		return models.AvailabilityResult{}, err
	}
	if cottage == nil {
		return models.AvailabilityResult{}, newNotFoundError("Cottage not found")
	}

	confirmed, err := s.ReservationRepo.FindConfirmedOverlapping(cottageID, checkIn, checkOut)
	if err != nil {
		return models.AvailabilityResult{}, err
	}

	return EvaluateAvailability(cottage, confirmed, checkIn, checkOut, adults, children, s.now()), nil
}

// CheckAvailability evaluates a stay request against the live cottage and
// reservation state.
func (s *DefaultBookingService) CheckAvailability(cottageID string, req models.AvailabilityRequest) (models.AvailabilityResult, error) {
	checkIn, checkOut, err := s.parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return models.AvailabilityResult{}, err
	}
	return s.evaluate(cottageID, checkIn, checkOut, req.Adults, req.Children)
}

// Reserve evaluates the stay and, when available, inserts a pending
// reservation. The overlap check re-runs inside the insert transaction so a
// concurrent confirmation cannot slip in between evaluation and insert.
func (s *DefaultBookingService) Reserve(ctx context.Context, touristID, cottageID string, req models.ReservationRequest) (*models.Reservation, error) {
	checkIn, checkOut, err := s.parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	result, err := s.evaluate(cottageID, checkIn, checkOut, req.Adults, req.Children)
	if err != nil {
		return nil, err
	}
	if !result.Available {
		return nil, newConflictError(result.Message)
	}

	card := ""
	if req.CreditCard != "" {
		if v := utils.ValidateCreditCard(req.CreditCard); !v.Valid {
			return nil, newValidationError(v.Errors[0])
		}
		card = utils.StripCardNumber(req.CreditCard)
	}

	price := result.TotalPrice
	if req.TotalPrice > 0 {
		price = req.TotalPrice
	}

	reservation := &models.Reservation{
		ID:         uuid.NewString(),
		CottageID:  cottageID,
		TouristID:  touristID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Adults:     req.Adults,
		Children:   req.Children,
		TotalPrice: price,
		CreditCard: card,
		Note:       utils.SanitizeString(req.Note),
	}

	if err := s.ReservationRepo.CreatePendingGuarded(ctx, reservation); err != nil {
		if errors.Is(err, reservationRepo.ErrDateConflict) {
			return nil, newConflictError("Cottage is no longer available for the selected dates. Please try again.")
		}
		return nil, err
	}

	s.Logger.Info("reservation created",
		zap.String("reservationId", reservation.ID),
		zap.String("cottageId", cottageID),
		zap.String("touristId", touristID))
	return reservation, nil
}
