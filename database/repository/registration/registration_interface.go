package registrationRepo

import "mountaincottage/models"

// RegistrationRepository defines methods for registration request data access.
type RegistrationRepository interface {
	// GetByID retrieves a request by its unique ID. Returns nil when absent.
	GetByID(id string) (*models.RegistrationRequest, error)
	// ListPending retrieves all pending requests.
	ListPending() ([]models.RegistrationRequest, error)
	// HasWithStatus reports whether a request with the given status exists
	// for the username or email.
	HasWithStatus(username, email, status string) (bool, error)
	// Create inserts a new registration request.
	Create(request *models.RegistrationRequest) error
	// Update modifies an existing registration request.
	Update(request *models.RegistrationRequest) error
}
