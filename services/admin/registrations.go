package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mountaincottage/models"
	"mountaincottage/services/storage"
)

// ListRegistrationRequests returns the pending requests awaiting review.
func (s *DefaultAdminService) ListRegistrationRequests() ([]models.RegistrationRequest, error) {
	return s.RegistrationRepo.ListPending()
}

func (s *DefaultAdminService) loadPendingRequest(id string) (*models.RegistrationRequest, error) {
	request, err := s.RegistrationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, newNotFoundError("Registration request not found")
	}
	if request.Status != models.RequestPending {
		return nil, newConflictError(fmt.Sprintf("Request is already %s", request.Status))
	}
	return request, nil
}

// ApproveRegistration turns a pending request into an active user account.
// The password hash carries over; the user logs in with the password they
// registered with.
func (s *DefaultAdminService) ApproveRegistration(id string) (*models.User, error) {
	request, err := s.loadPendingRequest(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:             uuid.New().String(),
		Username:       request.Username,
		PasswordHash:   request.PasswordHash,
		FirstName:      request.FirstName,
		LastName:       request.LastName,
		Gender:         request.Gender,
		Address:        request.Address,
		Phone:          request.Phone,
		Email:          request.Email,
		ProfilePicture: request.ProfilePicture,
		CreditCard:     request.CreditCard,
		Role:           request.Role,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	request.Status = models.RequestApproved
	request.ReviewedAt = &now
	if err := s.RegistrationRepo.Update(request); err != nil {
		return nil, err
	}

	s.Logger.Info("registration approved",
		zap.String("requestId", id),
		zap.String("userId", user.ID),
		zap.String("role", user.Role))
	return user, nil
}

// RejectRegistration marks a pending request rejected. The username and email
// stay blocked for future requests; the uploaded picture is removed.
func (s *DefaultAdminService) RejectRegistration(ctx context.Context, id string) (*models.RegistrationRequest, error) {
	request, err := s.loadPendingRequest(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	request.Status = models.RequestRejected
	request.ReviewedAt = &now
	if err := s.RegistrationRepo.Update(request); err != nil {
		return nil, err
	}

	if request.ProfilePicture != "" {
		if publicID := storage.PublicIDFromURL(request.ProfilePicture); publicID != "" {
			if err := s.Storage.DeleteImage(ctx, publicID); err != nil {
				s.Logger.Warn("failed to delete rejected profile picture",
					zap.String("requestId", id), zap.Error(err))
			}
		}
	}

	s.Logger.Info("registration rejected", zap.String("requestId", id))
	return request, nil
}
