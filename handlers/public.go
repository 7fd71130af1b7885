package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cottageRepo "mountaincottage/database/repository/cottage"
	"mountaincottage/services/cottage"
	"mountaincottage/services/stats"
)

// PublicStatistics handles GET /api/public/statistics.
func PublicStatistics(svc stats.StatsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.PublicStatistics(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// ListCottages handles GET /api/cottages with optional name/location filters
// and sortBy/sortOrder.
func ListCottages(svc cottage.CottageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := cottageRepo.ListFilter{
			Name:      c.Query("name"),
			Location:  c.Query("location"),
			SortBy:    c.Query("sortBy"),
			SortOrder: c.Query("sortOrder"),
		}

		cottages, err := svc.List(filter)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, cottages)
	}
}

// CottageDetail handles GET /api/cottages/:id.
func CottageDetail(svc cottage.CottageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := svc.GetDetail(c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}
