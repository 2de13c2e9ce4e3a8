package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"
)

// Image is an uploaded product image.
type Image struct {
	// Filename is the client-supplied name of the upload.
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ImageStore persists product images.
type ImageStore interface {
	// Save stores the image and returns the path recorded on the product.
	Save(ctx context.Context, img Image) (string, error)
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// IsAllowedImage reports whether the declared content type is an accepted image.
func IsAllowedImage(contentType string) bool {
	return allowedImageTypes[strings.ToLower(strings.TrimSpace(contentType))]
}

// ObjectName builds the stored file name: an ISO-8601 UTC timestamp with ':'
// replaced by '-', a dash, then the base name of the upload.
func ObjectName(now time.Time, filename string) string {
	stamp := strings.ReplaceAll(now.UTC().Format("2006-01-02T15:04:05.000Z"), ":", "-")

	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" || base == ".." {
		base = "imagem"
	}

	return stamp + "-" + base
}
