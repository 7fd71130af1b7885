package auth

import (
	"bytes"
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"mountaincottage/models"
	"mountaincottage/services/storage"
	"mountaincottage/utils"
)

func validateRegistration(input models.RegisterInput) utils.ValidationResult {
	results := []utils.ValidationResult{
		utils.ValidateUsername(input.Username),
		utils.ValidatePassword(input.Password),
		utils.ValidateRequiredString(input.FirstName, "First name", 1, 100),
		utils.ValidateRequiredString(input.LastName, "Last name", 1, 100),
		utils.ValidateGender(input.Gender),
		utils.ValidateRequiredString(input.Address, "Address", 1, 200),
		utils.ValidatePhone(input.Phone),
		utils.ValidateEmail(input.Email),
		utils.ValidateCreditCard(input.CreditCard),
		utils.ValidateRole(input.Role),
	}
	return utils.CombineValidationResults(results...)
}

// Register validates the form, rejects duplicates and permanently blocked
// identities, stores the profile picture and files a pending request for
// admin review. No user account exists until an admin approves.
func (s *DefaultAuthService) Register(ctx context.Context, input models.RegisterInput, picture []byte) (*models.RegistrationRequest, error) {
	if v := validateRegistration(input); !v.Valid {
		return nil, newFieldErrors(v.Errors)
	}
	if input.Role == models.RoleAdmin {
		return nil, newFieldErrors([]string{"User type must be tourist or owner"})
	}

	if existing, err := s.UserRepo.GetByUsername(input.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, newConflictError("Username is already taken")
	}
	if existing, err := s.UserRepo.GetByEmail(input.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, newConflictError("Email is already registered")
	}

	if pending, err := s.RegistrationRepo.HasWithStatus(input.Username, input.Email, models.RequestPending); err != nil {
		return nil, err
	} else if pending {
		return nil, newConflictError("A registration request for this username or email is already pending.")
	}
	if rejected, err := s.RegistrationRepo.HasWithStatus(input.Username, input.Email, models.RequestRejected); err != nil {
		return nil, err
	} else if rejected {
		return nil, newForbiddenError("Registration for this username or email has been rejected.")
	}

	pictureURL := ""
	if len(picture) > 0 {
		if err := storage.ValidateImage(picture); err != nil {
			return nil, newValidationError(err.Error())
		}
		uploaded, err := s.Storage.UploadImage(ctx, bytes.NewReader(picture), storage.FolderProfiles)
		if err != nil {
			s.Logger.Error("failed to upload profile picture", zap.Error(err))
			return nil, newValidationError("Failed to store profile picture, please try again")
		}
		pictureURL = uploaded.URL
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.Logger.Error("failed to hash password", zap.Error(err))
		return nil, newValidationError("Registration failed, please try again")
	}

	request := &models.RegistrationRequest{
		ID:             uuid.New().String(),
		Username:       input.Username,
		PasswordHash:   string(hashed),
		FirstName:      utils.SanitizeString(input.FirstName),
		LastName:       utils.SanitizeString(input.LastName),
		Gender:         input.Gender,
		Address:        utils.SanitizeString(input.Address),
		Phone:          input.Phone,
		Email:          input.Email,
		ProfilePicture: pictureURL,
		CreditCard:     utils.StripCardNumber(input.CreditCard),
		Role:           input.Role,
		Status:         models.RequestPending,
		CreatedAt:      time.Now(),
	}

	if err := s.RegistrationRepo.Create(request); err != nil {
		if pictureURL != "" {
			if id := storage.PublicIDFromURL(pictureURL); id != "" {
				_ = s.Storage.DeleteImage(ctx, id)
			}
		}
		s.Logger.Error("failed to create registration request", zap.Error(err))
		return nil, err
	}

	s.Logger.Info("registration request filed",
		zap.String("requestId", request.ID),
		zap.String("username", request.Username),
		zap.String("role", request.Role))
	return request, nil
}
