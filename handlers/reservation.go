package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mountaincottage/middleware"
	"mountaincottage/models"
	"mountaincottage/services/booking"
	"mountaincottage/utils"
)

// CheckAvailability handles POST /api/cottages/:id/check-availability. The
// verdict rides in the body either way; a rejection is a 400.
func CheckAvailability(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AvailabilityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Check-in and check-out dates are required", err.Error())
			return
		}

		result, err := svc.CheckAvailability(c.Param("id"), req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if !result.Available {
			c.JSON(http.StatusBadRequest, result)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// Reserve handles POST /api/cottages/:id/reserve.
func Reserve(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ReservationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid reservation request", err.Error())
			return
		}

		reservation, err := svc.Reserve(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id"), req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, reservation)
	}
}

// TouristReservations handles GET /api/reservations.
func TouristReservations(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.TouristReservations(c.GetString(middleware.ContextUserID))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// OwnerReservations handles GET /api/reservations/owner.
func OwnerReservations(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.OwnerReservations(c.GetString(middleware.ContextUserID))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// ConfirmReservation handles POST /api/reservations/:id/confirm.
func ConfirmReservation(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reservation, err := svc.Confirm(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, reservation)
	}
}

// RejectReservation handles POST /api/reservations/:id/reject.
func RejectReservation(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RejectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Rejection reason is required", err.Error())
			return
		}

		reservation, err := svc.Reject(c.GetString(middleware.ContextUserID), c.Param("id"), req.RejectionReason)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, reservation)
	}
}

// CancelReservation handles POST /api/reservations/:id/cancel.
func CancelReservation(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reservation, err := svc.Cancel(c.GetString(middleware.ContextUserID), c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, reservation)
	}
}
