package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mountaincottage/services/admin"
	"mountaincottage/services/auth"
	"mountaincottage/services/booking"
	"mountaincottage/services/cottage"
	"mountaincottage/utils"
)

// statusForCode maps a service error code to an HTTP status. Conflicts are
// 400s like plain validation failures; the message tells them apart.
func statusForCode(code string) int {
	switch code {
	case auth.CodeUnauthorized:
		return http.StatusUnauthorized
	case auth.CodeForbidden:
		return http.StatusForbidden
	case auth.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func respondCoded(c *gin.Context, code, message string, fields []string) {
	if len(fields) > 0 {
		utils.JSONValidationError(c, fields)
		return
	}
	utils.JSONError(c, statusForCode(code), message, "")
}

// respondServiceError translates service errors into HTTP responses. Unknown
// errors become a generic 500 so internals never leak.
func respondServiceError(c *gin.Context, err error) {
	var authErr *auth.AuthError
	var cottageErr *cottage.CottageError
	var adminErr *admin.AdminError
	var bookingErr *booking.BookingError

	switch {
	case errors.As(err, &authErr):
		respondCoded(c, authErr.Code, authErr.Message, authErr.Fields)
	case errors.As(err, &cottageErr):
		respondCoded(c, cottageErr.Code, cottageErr.Message, cottageErr.Fields)
	case errors.As(err, &adminErr):
		respondCoded(c, adminErr.Code, adminErr.Message, adminErr.Fields)
	case errors.As(err, &bookingErr):
		respondCoded(c, bookingErr.Code, bookingErr.Message, nil)
	default:
		utils.GetLogger().Error("unhandled service error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
	}
}
