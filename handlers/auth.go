package handlers

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"mountaincottage/middleware"
	"mountaincottage/models"
	"mountaincottage/services/auth"
	"mountaincottage/utils"
)

// readUpload reads an optional multipart file field. A missing field returns
// nil bytes without error.
func readUpload(c *gin.Context, field string) ([]byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, err
	}
	return readFileHeader(fileHeader)
}

func readFileHeader(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// Login handles POST /api/auth/login.
func Login(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Username and password are required", err.Error())
			return
		}

		session, err := svc.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// AdminLogin handles POST /api/auth/admin/login.
func AdminLogin(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Username and password are required", err.Error())
			return
		}

		session, err := svc.AdminLogin(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// Logout handles POST /api/auth/logout.
func Logout(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.ContextUserID)
		if err := svc.Logout(c.Request.Context(), userID); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// Register handles POST /api/auth/register (multipart form with an optional
// profilePicture file).
func Register(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.RegisterInput
		if err := c.ShouldBind(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid registration form", err.Error())
			return
		}

		picture, err := readUpload(c, "profilePicture")
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Failed to read profile picture", err.Error())
			return
		}

		request, err := svc.Register(c.Request.Context(), input, picture)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Registration request submitted. Waiting for administrator approval.",
			"request": request,
		})
	}
}

// Profile handles GET /api/auth/profile.
func Profile(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.GetProfile(c.GetString(middleware.ContextUserID))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdateProfile handles PUT /api/auth/profile (multipart form with an
// optional replacement profilePicture).
func UpdateProfile(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.ProfileUpdateInput
		if err := c.ShouldBind(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid profile form", err.Error())
			return
		}

		picture, err := readUpload(c, "profilePicture")
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Failed to read profile picture", err.Error())
			return
		}

		user, err := svc.UpdateProfile(c.Request.Context(), c.GetString(middleware.ContextUserID), input, picture)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// ChangePassword handles POST /api/auth/change-password.
func ChangePassword(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ChangePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Old and new passwords are required", err.Error())
			return
		}

		if err := svc.ChangePassword(c.GetString(middleware.ContextUserID), req.OldPassword, req.NewPassword); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
	}
}
