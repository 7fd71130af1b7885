package admin

import (
	"context"
	"time"

	"go.uber.org/zap"

	cottageRepo "mountaincottage/database/repository/cottage"
	ratingRepo "mountaincottage/database/repository/rating"
	registrationRepo "mountaincottage/database/repository/registration"
	userRepo "mountaincottage/database/repository/user"
	"mountaincottage/models"
	"mountaincottage/services/auth"
	"mountaincottage/services/storage"
)

// cottageBlockDuration is how long an admin block on a cottage lasts.
const cottageBlockDuration = 48 * time.Hour

// AdminService covers user administration, cottage moderation and
// registration request review.
type AdminService interface {
	// ListUsers returns all owner and tourist accounts, newest first.
	ListUsers() ([]models.User, error)
	// GetUser returns one account.
	GetUser(id string) (*models.User, error)
	// UpdateUser edits an account's profile fields. Role and password cannot
	// change here.
	UpdateUser(id string, input models.ProfileUpdateInput) (*models.User, error)
	// Activate re-enables a deactivated account.
	Activate(id string) (*models.User, error)
	// Deactivate disables an account and revokes its active session.
	Deactivate(ctx context.Context, id string) (*models.User, error)
	// DeleteUser removes an account.
	DeleteUser(ctx context.Context, id string) error

	// ListCottages returns every cottage with its rating analysis for the
	// moderation dashboard.
	ListCottages() ([]models.CottageModeration, error)
	// BlockCottage blocks new reservations on the cottage for 48 hours.
	BlockCottage(id string) (*models.Cottage, error)
	// UnblockCottage lifts an admin block early.
	UnblockCottage(id string) (*models.Cottage, error)

	// ListRegistrationRequests returns the pending registration requests.
	ListRegistrationRequests() ([]models.RegistrationRequest, error)
	// ApproveRegistration turns a pending request into an active account.
	ApproveRegistration(id string) (*models.User, error)
	// RejectRegistration marks a pending request rejected, permanently
	// blocking its username and email, and removes the uploaded picture.
	RejectRegistration(ctx context.Context, id string) (*models.RegistrationRequest, error)
}

// DefaultAdminService implements AdminService on the Mongo repositories.
type DefaultAdminService struct {
	UserRepo         userRepo.UserRepository
	CottageRepo      cottageRepo.CottageRepository
	RatingRepo       ratingRepo.RatingRepository
	RegistrationRepo registrationRepo.RegistrationRepository
	Storage          storage.StorageService
	Sessions         auth.SessionStore
	Logger           *zap.Logger

	now func() time.Time
}

// NewAdminService wires an admin service over the given collaborators.
func NewAdminService(
	users userRepo.UserRepository,
	cottages cottageRepo.CottageRepository,
	ratings ratingRepo.RatingRepository,
	registrations registrationRepo.RegistrationRepository,
	store storage.StorageService,
	sessions auth.SessionStore,
	logger *zap.Logger,
) *DefaultAdminService {
	return &DefaultAdminService{
		UserRepo:         users,
		CottageRepo:      cottages,
		RatingRepo:       ratings,
		RegistrationRepo: registrations,
		Storage:          store,
		Sessions:         sessions,
		Logger:           logger,
		now:              time.Now,
	}
}
