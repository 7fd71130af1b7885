package auth

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"mountaincottage/models"
	"mountaincottage/utils"
)

// issueSession generates a token, persists its hash on the user record and
// caches it for fast middleware checks. A cache failure is logged but does
// not block the login; the middleware falls back to the stored hash.
func (s *DefaultAuthService) issueSession(ctx context.Context, user *models.User) (*AuthSession, error) {
	token, err := utils.GenerateToken(user.ID, user.Role, tokenTTL)
	if err != nil {
		s.Logger.Error("failed to generate auth token", zap.Error(err))
		return nil, newValidationError("Login failed, please try again")
	}

	user.TokenHash = utils.HashToken(token)
	if err := s.UserRepo.Update(user); err != nil {
		s.Logger.Error("failed to store token hash", zap.Error(err))
		return nil, newValidationError("Login failed, please try again")
	}

	if err := s.Sessions.Save(ctx, user.ID, user.TokenHash, tokenTTL); err != nil {
		s.Logger.Warn("failed to cache session", zap.String("userId", user.ID), zap.Error(err))
	}

	return &AuthSession{Token: token, User: user}, nil
}

// Login authenticates a tourist or owner. Admins must use AdminLogin.
func (s *DefaultAuthService) Login(ctx context.Context, username, password string) (*AuthSession, error) {
	user, err := s.UserRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, newUnauthorizedError("Invalid username or password")
	}
	if user.Role == models.RoleAdmin {
		return nil, newForbiddenError("Please use the admin login page")
	}
	if !user.Active {
		return nil, newForbiddenError("Account is not active. Waiting for administrator approval.")
	}

	session, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("user logged in", zap.String("userId", user.ID), zap.String("role", user.Role))
	return session, nil
}

// AdminLogin authenticates through the separate admin entry point. Non-admin
// accounts get the same error as bad credentials.
func (s *DefaultAuthService) AdminLogin(ctx context.Context, username, password string) (*AuthSession, error) {
	user, err := s.UserRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != models.RoleAdmin ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, newUnauthorizedError("Invalid admin credentials")
	}
	if !user.Active {
		return nil, newForbiddenError("Account is not active.")
	}

	session, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("admin logged in", zap.String("userId", user.ID))
	return session, nil
}

// Logout revokes the cached session and clears the stored token hash so the
// token fails validation everywhere.
func (s *DefaultAuthService) Logout(ctx context.Context, userID string) error {
	if err := s.Sessions.Revoke(ctx, userID); err != nil {
		s.Logger.Warn("failed to revoke cached session", zap.String("userId", userID), zap.Error(err))
	}

	user, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return err
	}
	user.TokenHash = ""
	return s.UserRepo.Update(user)
}
