package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3PutObjectAPI is the part of the S3 client used by s3Store.
type s3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3Store implements ImageStore on AWS S3.
type s3Store struct {
	client s3PutObjectAPI
	bucket string
	region string
	prefix string
	now    func() time.Time
	logger zerolog.Logger
}

// NewS3Store creates an S3-backed image store using the default AWS credential chain.
func NewS3Store(ctx context.Context, bucket, region, prefix string, logger zerolog.Logger) (ImageStore, error) {
	logger = logger.With().Str("component", "s3-image-store").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 image store initialised")

	return newS3Store(s3.NewFromConfig(cfg), bucket, region, prefix, logger), nil
}

func newS3Store(client s3PutObjectAPI, bucket, region, prefix string, logger zerolog.Logger) *s3Store {
	return &s3Store{
		client: client,
		bucket: bucket,
		region: region,
		prefix: prefix,
		now:    time.Now,
		logger: logger,
	}
}

// Save uploads the image and returns its public object URL.
func (s *s3Store) Save(ctx context.Context, img Image) (string, error) {
	key := s.prefix + ObjectName(s.now(), img.Filename)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        img.Body,
		ContentType: aws.String(img.ContentType),
	}
	if img.Size > 0 {
		input.ContentLength = aws.Int64(img.Size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to put object to S3")
		return "", fmt.Errorf("failed to put object to S3 (bucket=%s, key=%s): %w", s.bucket, key, err)
	}

	s.logger.Info().
		Str("bucket", s.bucket).
		Str("key", key).
		Msg("image stored in S3")

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
