package cottage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mountaincottage/models"
	"mountaincottage/services/storage"
	"mountaincottage/utils"
)

func validateCottageInput(input models.CottageInput) utils.ValidationResult {
	results := []utils.ValidationResult{
		utils.ValidateRequiredString(input.Name, "Name", 1, 100),
		utils.ValidateRequiredString(input.Location, "Location", 1, 200),
	}
	if input.SummerPrice <= 0 {
		results = append(results, utils.ValidationResult{Errors: []string{"Summer price must be greater than zero"}})
	}
	if input.WinterPrice <= 0 {
		results = append(results, utils.ValidationResult{Errors: []string{"Winter price must be greater than zero"}})
	}
	if input.SummerPrice > 0 && input.SummerPrice == input.WinterPrice {
		results = append(results, utils.ValidationResult{Errors: []string{"Summer and winter prices must be different."}})
	}
	if input.Capacity < 1 {
		results = append(results, utils.ValidationResult{Errors: []string{"Capacity must be at least 1"}})
	}
	if input.Phone != "" {
		results = append(results, utils.ValidatePhone(input.Phone))
	}
	return utils.CombineValidationResults(results...)
}

// uploadImages validates and stores each image. When a later upload fails the
// earlier ones are deleted so nothing is left orphaned.
func (s *DefaultCottageService) uploadImages(ctx context.Context, images [][]byte) ([]string, error) {
	urls := make([]string, 0, len(images))
	for i, data := range images {
		if err := storage.ValidateImage(data); err != nil {
			s.cleanupImages(ctx, urls)
			return nil, newValidationError(fmt.Sprintf("Image %d: %s", i+1, err.Error()))
		}
		uploaded, err := s.Storage.UploadImage(ctx, bytes.NewReader(data), storage.FolderCottages)
		if err != nil {
			s.Logger.Error("failed to upload cottage image", zap.Error(err))
			s.cleanupImages(ctx, urls)
			return nil, newValidationError("Failed to store cottage images, please try again")
		}
		urls = append(urls, uploaded.URL)
	}
	return urls, nil
}

func (s *DefaultCottageService) cleanupImages(ctx context.Context, urls []string) {
	for _, url := range urls {
		if id := storage.PublicIDFromURL(url); id != "" {
			if err := s.Storage.DeleteImage(ctx, id); err != nil {
				s.Logger.Warn("failed to delete cottage image", zap.String("url", url), zap.Error(err))
			}
		}
	}
}

// ListByOwner returns the owner's cottages with rating aggregates.
func (s *DefaultCottageService) ListByOwner(ownerID string) ([]models.CottageWithRating, error) {
	cottages, err := s.CottageRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]models.CottageWithRating, 0, len(cottages))
	for _, c := range cottages {
		view, _ := s.withRating(c, false)
		out = append(out, view)
	}
	return out, nil
}

func (s *DefaultCottageService) create(ctx context.Context, ownerID string, input models.CottageInput, imageURLs []string) (*models.Cottage, error) {
	now := time.Now()
	c := &models.Cottage{
		ID:          uuid.New().String(),
		Name:        utils.SanitizeString(input.Name),
		Location:    utils.SanitizeString(input.Location),
		OwnerID:     ownerID,
		Description: utils.SanitizeString(input.Description),
		SummerPrice: input.SummerPrice,
		WinterPrice: input.WinterPrice,
		Capacity:    input.Capacity,
		Amenities:   input.Amenities,
		Images:      imageURLs,
		Phone:       input.Phone,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.CottageRepo.Create(c); err != nil {
		s.cleanupImages(ctx, imageURLs)
		return nil, err
	}
	s.Logger.Info("cottage created", zap.String("cottageId", c.ID), zap.String("ownerId", ownerID))
	return c, nil
}

// Create adds a cottage for the owner with up to ten validated images.
func (s *DefaultCottageService) Create(ctx context.Context, ownerID string, input models.CottageInput, images [][]byte) (*models.Cottage, error) {
	if v := validateCottageInput(input); !v.Valid {
		return nil, newFieldErrors(v.Errors)
	}
	if len(images) > maxCottageImages {
		return nil, newValidationError(fmt.Sprintf("A cottage can have at most %d images", maxCottageImages))
	}

	urls, err := s.uploadImages(ctx, images)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, ownerID, input, urls)
}

// ImportJSON creates a cottage from an uploaded JSON document. Images cannot
// ride along in the document; they are added through a later update.
func (s *DefaultCottageService) ImportJSON(ctx context.Context, ownerID string, data []byte) (*models.Cottage, error) {
	var input models.CottageInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, newValidationError("Invalid cottage JSON file")
	}
	if v := validateCottageInput(input); !v.Valid {
		return nil, newFieldErrors(v.Errors)
	}
	return s.create(ctx, ownerID, input, nil)
}

// loadOwned fetches the cottage and verifies it belongs to ownerID.
func (s *DefaultCottageService) loadOwned(ownerID, cottageID string) (*models.Cottage, error) {
	c, err := s.CottageRepo.GetByID(cottageID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, newNotFoundError("Cottage not found")
	}
	if c.OwnerID != ownerID {
		return nil, newForbiddenError("You can only manage your own cottages.")
	}
	return c, nil
}

// Update edits the owner's cottage. Existing images not listed in keepImages
// are removed from storage; newImages are validated, uploaded and appended.
func (s *DefaultCottageService) Update(ctx context.Context, ownerID, cottageID string, input models.CottageInput, keepImages []string, newImages [][]byte) (*models.Cottage, error) {
	c, err := s.loadOwned(ownerID, cottageID)
	if err != nil {
		return nil, err
	}
	if v := validateCottageInput(input); !v.Valid {
		return nil, newFieldErrors(v.Errors)
	}

	existing := map[string]bool{}
	for _, url := range c.Images {
		existing[url] = true
	}
	kept := make([]string, 0, len(keepImages))
	for _, url := range keepImages {
		if existing[url] {
			kept = append(kept, url)
			existing[url] = false
		}
	}
	var removed []string
	for url, gone := range existing {
		if gone {
			removed = append(removed, url)
		}
	}

	if len(kept)+len(newImages) > maxCottageImages {
		return nil, newValidationError(fmt.Sprintf("A cottage can have at most %d images", maxCottageImages))
	}

	uploaded, err := s.uploadImages(ctx, newImages)
	if err != nil {
		return nil, err
	}

	c.Name = utils.SanitizeString(input.Name)
	c.Location = utils.SanitizeString(input.Location)
	c.Description = utils.SanitizeString(input.Description)
	c.SummerPrice = input.SummerPrice
	c.WinterPrice = input.WinterPrice
	c.Capacity = input.Capacity
	c.Amenities = input.Amenities
	c.Phone = input.Phone
	c.Latitude = input.Latitude
	c.Longitude = input.Longitude
	c.Images = append(kept, uploaded...)
	c.UpdatedAt = time.Now()

	if err := s.CottageRepo.Update(c); err != nil {
		s.cleanupImages(ctx, uploaded)
		return nil, err
	}

	s.cleanupImages(ctx, removed)
	s.Logger.Info("cottage updated", zap.String("cottageId", cottageID), zap.String("ownerId", ownerID))
	return c, nil
}

// Delete removes the owner's cottage and its stored images. Blocked while
// pending or confirmed reservations with a future check-out exist.
func (s *DefaultCottageService) Delete(ctx context.Context, ownerID, cottageID string) error {
	c, err := s.loadOwned(ownerID, cottageID)
	if err != nil {
		return err
	}

	active, err := s.ReservationRepo.CountActiveForCottage(cottageID, s.now())
	if err != nil {
		return err
	}
	if active > 0 {
		return newConflictError("Cannot delete cottage with active reservations.")
	}

	if err := s.CottageRepo.Delete(cottageID); err != nil {
		return err
	}
	s.cleanupImages(ctx, c.Images)

	s.Logger.Info("cottage deleted", zap.String("cottageId", cottageID), zap.String("ownerId", ownerID))
	return nil
}
