package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mountaincottage/models"
	"mountaincottage/services/admin"
	"mountaincottage/utils"
)

// AdminListUsers handles GET /api/admin/users.
func AdminListUsers(svc admin.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.ListUsers()
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// AdminGetUser handles GET /api/admin/users/:id.
func AdminGetUser(svc admin.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.GetUser(c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// AdminUpdateUser handles PUT /api/admin/users/:id. Role and password cannot
// be changed through this endpoint.
func AdminUpdateUser(svc admin.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.ProfileUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid user payload", err.Error())
			return
		}

		user, err := svc.UpdateUser(c.Param("id"), input)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// AdminActivateUser handles POST /api/admin/users/:id/activate.
func AdminActivateUser(svc admin.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.Activate(c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// AdminDeactivateUser handles POST /api/admin/users/:id/deactivate.
func AdminDeactivateUser(svc admin.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.Deactivate(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// AdminDeleteUser handles DELETE /api/admin/users/:id.
func AdminDeleteUser(svc admin.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}

// AdminListCottages handles GET /api/admin/cottages.
func AdminListCottages(svc admin.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cottages, err := svc.ListCottages()
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, cottages)
	}
}

// AdminBlockCottage handles POST /api/admin/cottages/:id/block.
func AdminBlockCottage(svc admin.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blocked, err := svc.BlockCottage(c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, blocked)
	}
}

// AdminUnblockCottage handles POST /api/admin/cottages/:id/unblock.
func AdminUnblockCottage(svc admin.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		unblocked, err := svc.UnblockCottage(c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, unblocked)
	}
}

// AdminListRegistrations handles GET /api/admin/registration-requests.
func AdminListRegistrations(svc admin.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		requests, err := svc.ListRegistrationRequests()
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, requests)
	}
}

// AdminApproveRegistration handles POST /api/admin/registration-requests/:id/approve.
func AdminApproveRegistration(svc admin.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.ApproveRegistration(c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Registration approved", "user": user})
	}
}

// AdminRejectRegistration handles POST /api/admin/registration-requests/:id/reject.
func AdminRejectRegistration(svc admin.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		request, err := svc.RejectRegistration(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Registration rejected", "request": request})
	}
}
