package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestValidateImageAcceptsInRange(t *testing.T) {
	assert.NoError(t, ValidateImage(pngBytes(t, 100, 100)))
	assert.NoError(t, ValidateImage(pngBytes(t, 300, 300)))
	assert.NoError(t, ValidateImage(pngBytes(t, 150, 220)))
}

func TestValidateImageRejectsTooSmall(t *testing.T) {
	assert.ErrorIs(t, ValidateImage(pngBytes(t, 99, 150)), ErrImageTooSmall)
	assert.ErrorIs(t, ValidateImage(pngBytes(t, 150, 99)), ErrImageTooSmall)
}

func TestValidateImageRejectsTooLarge(t *testing.T) {
	assert.ErrorIs(t, ValidateImage(pngBytes(t, 301, 200)), ErrImageTooLarge)
	assert.ErrorIs(t, ValidateImage(pngBytes(t, 200, 301)), ErrImageTooLarge)
}

func TestValidateImageRejectsGarbage(t *testing.T) {
	assert.ErrorIs(t, ValidateImage([]byte("not an image")), ErrInvalidImage)
}

func TestPublicIDFromURL(t *testing.T) {
	url := "https://res.cloudinary.com/demo/image/upload/v1712345678/mountain-cottage/profiles/abc123.png"
	assert.Equal(t, "mountain-cottage/profiles/abc123", PublicIDFromURL(url))
}

func TestPublicIDFromURLNonCloudinary(t *testing.T) {
	assert.Equal(t, "", PublicIDFromURL("https://example.com/images/pic.png"))
}
