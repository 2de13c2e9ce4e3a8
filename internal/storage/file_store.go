package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// fileStore implements ImageStore on the local file system.
type fileStore struct {
	dir    string
	now    func() time.Time
	logger zerolog.Logger
}

// NewFileStore creates a store writing into dir, which is created if missing.
// Returned paths are relative ("<dir>/<name>") so they match the public /uploads route.
func NewFileStore(dir string, logger zerolog.Logger) (ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}

	return &fileStore{
		dir:    dir,
		now:    time.Now,
		logger: logger.With().Str("component", "file-image-store").Logger(),
	}, nil
}

// Save writes the image to disk.
func (s *fileStore) Save(ctx context.Context, img Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := ObjectName(s.now(), img.Filename)
	target := filepath.Join(s.dir, name)

	file, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		s.logger.Error().Err(err).Str("file", target).Msg("failed to create image file")
		return "", fmt.Errorf("failed to create image file %s: %w", target, err)
	}

	written, err := io.Copy(file, img.Body)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(target)
		s.logger.Error().Err(err).Str("file", target).Msg("failed to write image file")
		return "", fmt.Errorf("failed to write image file %s: %w", target, err)
	}

	s.logger.Info().
		Str("file", target).
		Int64("bytes", written).
		Msg("image stored on local file system")

	return path.Join(filepath.ToSlash(s.dir), name), nil
}
