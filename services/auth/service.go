package auth

import (
	"context"
	"time"

	"go.uber.org/zap"

	registrationRepo "mountaincottage/database/repository/registration"
	userRepo "mountaincottage/database/repository/user"
	"mountaincottage/models"
	"mountaincottage/services/storage"
)

// tokenTTL is how long issued tokens stay valid.
const tokenTTL = 24 * time.Hour

// AuthSession is the login result: the bearer token and the authenticated user.
type AuthSession struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// AuthService covers login, registration and profile self-service.
type AuthService interface {
	// Login authenticates a tourist or owner by username and password.
	Login(ctx context.Context, username, password string) (*AuthSession, error)
	// AdminLogin authenticates an admin through the separate admin entry point.
	AdminLogin(ctx context.Context, username, password string) (*AuthSession, error)
	// Logout revokes the user's active token.
	Logout(ctx context.Context, userID string) error
	// Register files a registration request for admin review. The picture is
	// the raw profile image, nil when none was submitted.
	Register(ctx context.Context, input models.RegisterInput, picture []byte) (*models.RegistrationRequest, error)
	// GetProfile returns the user's own account.
	GetProfile(userID string) (*models.User, error)
	// UpdateProfile edits the user's own profile fields and optionally
	// replaces the profile picture.
	UpdateProfile(ctx context.Context, userID string, input models.ProfileUpdateInput, picture []byte) (*models.User, error)
	// ChangePassword replaces the user's password after verifying the old one.
	ChangePassword(userID, oldPassword, newPassword string) error
}

// DefaultAuthService implements AuthService on the Mongo repositories, the
// Redis session store and Cloudinary.
type DefaultAuthService struct {
	UserRepo         userRepo.UserRepository
	RegistrationRepo registrationRepo.RegistrationRepository
	Storage          storage.StorageService
	Sessions         SessionStore
	Logger           *zap.Logger
}

// NewAuthService wires an auth service over the given collaborators.
func NewAuthService(
	users userRepo.UserRepository,
	registrations registrationRepo.RegistrationRepository,
	store storage.StorageService,
	sessions SessionStore,
	logger *zap.Logger,
) *DefaultAuthService {
	return &DefaultAuthService{
		UserRepo:         users,
		RegistrationRepo: registrations,
		Storage:          store,
		Sessions:         sessions,
		Logger:           logger,
	}
}
