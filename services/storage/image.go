package storage

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"path"
	"strings"
)

// Accepted image dimensions in pixels, both axes.
const (
	MinImageDimension = 100
	MaxImageDimension = 300
)

var (
	ErrInvalidImage  = errors.New("Invalid image file")
	ErrImageTooSmall = errors.New("Image must be at least 100x100 pixels")
	ErrImageTooLarge = errors.New("Image must not exceed 300x300 pixels")
)

// ValidateImage decodes the image header and checks that both dimensions fall
// within the accepted range. JPEG and PNG are accepted.
func ValidateImage(data []byte) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ErrInvalidImage
	}
	if cfg.Width < MinImageDimension || cfg.Height < MinImageDimension {
		return ErrImageTooSmall
	}
	if cfg.Width > MaxImageDimension || cfg.Height > MaxImageDimension {
		return ErrImageTooLarge
	}
	return nil
}

// PublicIDFromURL recovers the Cloudinary public ID from a delivery URL so an
// image stored by URL can be deleted. Returns "" for URLs that are not
// Cloudinary uploads.
func PublicIDFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	// .../<resource_type>/upload/v<version>/<folder...>/<name>.<ext>
	uploadIdx := -1
	for i, p := range parts {
		if p == "upload" {
			uploadIdx = i
			break
		}
	}
	if uploadIdx < 0 || uploadIdx+1 >= len(parts) {
		return ""
	}
	rest := parts[uploadIdx+1:]
	if len(rest) > 0 && len(rest[0]) > 1 && rest[0][0] == 'v' && isDigits(rest[0][1:]) {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return ""
	}
	id := strings.Join(rest, "/")
	return strings.TrimSuffix(id, path.Ext(id))
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
