package admin

import (
	"context"
	"time"

	"go.uber.org/zap"

	"mountaincottage/models"
	"mountaincottage/utils"
)

// ListUsers returns all owner and tourist accounts, newest first. Admin
// accounts are not shown.
func (s *DefaultAdminService) ListUsers() ([]models.User, error) {
	return s.UserRepo.ListByRoles([]string{models.RoleOwner, models.RoleTourist})
}

func (s *DefaultAdminService) GetUser(id string) (*models.User, error) {
	user, err := s.UserRepo.GetByID(id)
	if err != nil {
		return nil, newNotFoundError("User not found")
	}
	return user, nil
}

// UpdateUser edits a user's profile fields on their behalf. Role and password
// stay as they are.
func (s *DefaultAdminService) UpdateUser(id string, input models.ProfileUpdateInput) (*models.User, error) {
	user, err := s.UserRepo.GetByID(id)
	if err != nil {
		return nil, newNotFoundError("User not found")
	}

	v := utils.CombineValidationResults(
		utils.ValidateRequiredString(input.FirstName, "First name", 1, 100),
		utils.ValidateRequiredString(input.LastName, "Last name", 1, 100),
		utils.ValidateGender(input.Gender),
		utils.ValidateRequiredString(input.Address, "Address", 1, 200),
		utils.ValidatePhone(input.Phone),
		utils.ValidateEmail(input.Email),
	)
	if !v.Valid {
		return nil, newFieldErrors(v.Errors)
	}

	if input.Email != user.Email {
		inUse, err := s.UserRepo.EmailInUseByOther(input.Email, id)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, newConflictError("Email is already registered")
		}
	}

	user.FirstName = utils.SanitizeString(input.FirstName)
	user.LastName = utils.SanitizeString(input.LastName)
	user.Gender = input.Gender
	user.Address = utils.SanitizeString(input.Address)
	user.Phone = input.Phone
	user.Email = input.Email
	user.UpdatedAt = time.Now()

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	s.Logger.Info("user updated by admin", zap.String("userId", id))
	return user, nil
}

// Activate re-enables a deactivated account so the user can log in again.
func (s *DefaultAdminService) Activate(id string) (*models.User, error) {
	user, err := s.UserRepo.SetActive(id, true)
	if err != nil {
		return nil, newNotFoundError("User not found")
	}
	s.Logger.Info("user activated", zap.String("userId", id))
	return user, nil
}

// Deactivate disables an account. The cached session is revoked and the
// stored token hash cleared so the current token dies immediately.
func (s *DefaultAdminService) Deactivate(ctx context.Context, id string) (*models.User, error) {
	user, err := s.UserRepo.SetActive(id, false)
	if err != nil {
		return nil, newNotFoundError("User not found")
	}

	if err := s.Sessions.Revoke(ctx, id); err != nil {
		s.Logger.Warn("failed to revoke session", zap.String("userId", id), zap.Error(err))
	}
	user.TokenHash = ""
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}

	s.Logger.Info("user deactivated", zap.String("userId", id))
	return user, nil
}

// DeleteUser removes an account and revokes its session.
func (s *DefaultAdminService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.UserRepo.GetByID(id); err != nil {
		return newNotFoundError("User not found")
	}

	if err := s.Sessions.Revoke(ctx, id); err != nil {
		s.Logger.Warn("failed to revoke session", zap.String("userId", id), zap.Error(err))
	}
	if err := s.UserRepo.Delete(id); err != nil {
		return err
	}

	s.Logger.Info("user deleted", zap.String("userId", id))
	return nil
}
