package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// fallbackStore tries the primary store first, then falls back to the secondary.
type fallbackStore struct {
	primary   ImageStore
	secondary ImageStore
	logger    zerolog.Logger
}

// NewFallbackStore creates a store that tries primary (S3) first and falls back to
// secondary (local file system). If primary is nil only secondary is used.
func NewFallbackStore(primary, secondary ImageStore, logger zerolog.Logger) ImageStore {
	return &fallbackStore{
		primary:   primary,
		secondary: secondary,
		logger:    logger.With().Str("component", "fallback-image-store").Logger(),
	}
}

// Save buffers the body so a failed primary attempt can be replayed on the secondary.
func (s *fallbackStore) Save(ctx context.Context, img Image) (string, error) {
	if s.primary == nil {
		return s.secondary.Save(ctx, img)
	}

	data, err := io.ReadAll(img.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image body: %w", err)
	}

	attempt := img
	attempt.Body = bytes.NewReader(data)

	location, err := s.primary.Save(ctx, attempt)
	if err == nil {
		return location, nil
	}

	s.logger.Warn().
		Err(err).
		Str("filename", img.Filename).
		Msg("failed to store image in primary store, falling back to local file system")

	attempt.Body = bytes.NewReader(data)
	return s.secondary.Save(ctx, attempt)
}
