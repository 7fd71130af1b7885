package auth

import (
	"bytes"
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"mountaincottage/models"
	"mountaincottage/services/storage"
	"mountaincottage/utils"
)

// GetProfile returns the user's own account.
func (s *DefaultAuthService) GetProfile(userID string) (*models.User, error) {
	user, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return nil, newNotFoundError("User not found")
	}
	return user, nil
}

// ChangePassword verifies the old password and applies the policy to the new
// one before replacing it.
func (s *DefaultAuthService) ChangePassword(userID, oldPassword, newPassword string) error {
	user, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return newNotFoundError("User not found")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return newValidationError("Old password is incorrect")
	}
	if oldPassword == newPassword {
		return newValidationError("New password must be different from the old password")
	}
	if v := utils.ValidatePassword(newPassword); !v.Valid {
		return newFieldErrors(v.Errors)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		s.Logger.Error("failed to hash password", zap.Error(err))
		return newValidationError("Password change failed, please try again")
	}

	user.PasswordHash = string(hashed)
	user.UpdatedAt = time.Now()
	if err := s.UserRepo.Update(user); err != nil {
		return err
	}
	s.Logger.Info("password changed", zap.String("userId", userID))
	return nil
}

// UpdateProfile edits the user's own profile fields. A new picture replaces
// the old one, which is deleted from storage after the update sticks.
func (s *DefaultAuthService) UpdateProfile(ctx context.Context, userID string, input models.ProfileUpdateInput, picture []byte) (*models.User, error) {
	user, err := s.UserRepo.GetByID(userID)
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
		inUse, err := s.UserRepo.EmailInUseByOther(input.Email, userID)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, newConflictError("Email is already registered")
		}
	}

	oldPicture := ""
	if len(picture) > 0 {
		if err := storage.ValidateImage(picture); err != nil {
			return nil, newValidationError(err.Error())
		}
		uploaded, err := s.Storage.UploadImage(ctx, bytes.NewReader(picture), storage.FolderProfiles)
		if err != nil {
			s.Logger.Error("failed to upload profile picture", zap.Error(err))
			return nil, newValidationError("Failed to store profile picture, please try again")
		}
		oldPicture = user.ProfilePicture
		user.ProfilePicture = uploaded.URL
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

	if oldPicture != "" {
		if id := storage.PublicIDFromURL(oldPicture); id != "" {
			if err := s.Storage.DeleteImage(ctx, id); err != nil {
				s.Logger.Warn("failed to delete old profile picture", zap.String("userId", userID), zap.Error(err))
			}
		}
	}

	return user, nil
}
