package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mountaincottage/middleware"
	"mountaincottage/models"
	"mountaincottage/services/cottage"
	"mountaincottage/utils"
)

// readImageUploads reads every file under the "images" multipart field.
func readImageUploads(c *gin.Context) ([][]byte, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	headers := form.File["images"]
	images := make([][]byte, 0, len(headers))
	for _, h := range headers {
		data, err := readFileHeader(h)
		if err != nil {
			return nil, err
		}
		images = append(images, data)
	}
	return images, nil
}

// RateCottage handles POST /api/cottages/:id/rate.
func RateCottage(svc cottage.CottageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Rating and comment are required", err.Error())
			return
		}

		rating, err := svc.Rate(c.GetString(middleware.ContextUserID), c.Param("id"), req.Rating, req.Comment)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, rating)
	}
}

// OwnerCottages handles GET /api/owner/cottages.
func OwnerCottages(svc cottage.CottageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cottages, err := svc.ListByOwner(c.GetString(middleware.ContextUserID))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, cottages)
	}
}

// CreateCottage handles POST /api/owner/cottages (multipart form, images as
// files under "images").
func CreateCottage(svc cottage.CottageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CottageInput
		if err := c.ShouldBind(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid cottage form", err.Error())
			return
		}

		images, err := readImageUploads(c)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Failed to read cottage images", err.Error())
			return
		}

		created, err := svc.Create(c.Request.Context(), c.GetString(middleware.ContextUserID), input, images)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// ImportCottage handles POST /api/owner/cottages/import with a JSON document
// under the "file" field.
func ImportCottage(svc cottage.CottageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "A JSON file is required", err.Error())
			return
		}
		data, err := readFileHeader(fileHeader)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Failed to read uploaded file", err.Error())
			return
		}

		created, err := svc.ImportJSON(c.Request.Context(), c.GetString(middleware.ContextUserID), data)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// UpdateCottage handles PUT /api/owner/cottages/:id. Existing image URLs to
// keep ride in the repeated "keepImages" form field; new images under
// "images".
func UpdateCottage(svc cottage.CottageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CottageInput
		if err := c.ShouldBind(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid cottage form", err.Error())
			return
		}

		keep := c.PostFormArray("keepImages")
		images, err := readImageUploads(c)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Failed to read cottage images", err.Error())
			return
		}

		updated, err := svc.Update(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id"), input, keep, images)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteCottage handles DELETE /api/owner/cottages/:id.
func DeleteCottage(svc cottage.CottageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cottage deleted"})
	}
}

// OwnerStatistics handles GET /api/owner/cottages/statistics.
func OwnerStatistics(svc cottage.CottageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Statistics(c.GetString(middleware.ContextUserID))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
