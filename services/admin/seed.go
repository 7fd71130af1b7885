package admin

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"mountaincottage/config"
	userRepo "mountaincottage/database/repository/user"
	"mountaincottage/models"
)

// EnsureAdmin creates the seed admin account on first start. It does nothing
// when an account with the configured username already exists, and skips
// seeding entirely when no admin password is configured.
func EnsureAdmin(users userRepo.UserRepository, logger *zap.Logger) error {
	cfg := config.AppConfig
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		logger.Warn("admin seed skipped, ADMIN_USERNAME/ADMIN_PASSWORD not configured")
		return nil
	}

	existing, err := users.GetByUsername(cfg.AdminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	adminUser := &models.User{
		ID:           uuid.New().String(),
		Username:     cfg.AdminUsername,
		PasswordHash: string(hashed),
		FirstName:    "System",
		LastName:     "Administrator",
		Email:        cfg.AdminEmail,
		Role:         models.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(adminUser); err != nil {
		return err
	}

	logger.Info("seed admin created", zap.String("username", cfg.AdminUsername))
	return nil
}
