package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"mountaincottage/config"
)

// Upload folders per asset kind.
const (
	FolderProfiles = "mountain-cottage/profiles"
	FolderCottages = "mountain-cottage/cottages"
)

// UploadedImage identifies a stored image. PublicID is needed to delete it
// later; URL is what clients render.
type UploadedImage struct {
	URL      string
	PublicID string
}

// StorageService stores and deletes user-supplied images.
type StorageService interface {
	// UploadImage stores the image under the given folder and returns its
	// URL and permanent identifier.
	UploadImage(ctx context.Context, r io.Reader, folder string) (*UploadedImage, error)
	// DeleteImage removes a previously uploaded image by its public ID.
	DeleteImage(ctx context.Context, publicID string) error
}

// CloudinaryStorage implements StorageService on Cloudinary.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage initializes the Cloudinary client from the app config.
func NewCloudinaryStorage() (*CloudinaryStorage, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

func (s *CloudinaryStorage) UploadImage(ctx context.Context, r io.Reader, folder string) (*UploadedImage, error) {
	result, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{Folder: folder})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("upload returned no public ID")
	}
	return &UploadedImage{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

func (s *CloudinaryStorage) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete image %s: %w", publicID, err)
	}
	return nil
}
