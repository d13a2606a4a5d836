// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-meet/internal/config"
	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/utils"
	"github.com/MKhiriev/go-meet/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectClient is the part of *s3.Client used to store photos.
type ObjectClient interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3PhotoStorage uploads photos to an S3-compatible bucket.
type s3PhotoStorage struct {
	client    ObjectClient
	bucket    string
	publicURL string
	ids       utils.IDGenerator
	logger    *logger.Logger
}

// NewS3Client builds an S3 client from cfg. Static credentials are used
// when both keys are set, otherwise the default AWS credential chain.
func NewS3Client(ctx context.Context, cfg config.S3) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}

func NewS3PhotoStorage(client ObjectClient, bucket, publicURL string, ids utils.IDGenerator, logger *logger.Logger) PhotoStorage {
	logger.Debug().Str("bucket", bucket).Msg("creating s3 photo storage")
	return &s3PhotoStorage{
		client:    client,
		bucket:    bucket,
		publicURL: publicURL,
		ids:       ids,
		logger:    logger,
	}
}

// SavePhoto buffers the upload so its length is known before PutObject.
func (s *s3PhotoStorage) SavePhoto(ctx context.Context, photo models.Photo) (string, error) {
	log := logger.FromContext(ctx)

	key, contentType, err := photoKey(s.ids, photo)
	if err != nil {
		return "", err
	}

	body, err := io.ReadAll(io.LimitReader(photo.Content, MaxPhotoSize+1))
	if err != nil {
		return "", fmt.Errorf("error reading photo: %w", err)
	}
	if len(body) > MaxPhotoSize {
		return "", fmt.Errorf("%w: upload exceeds the limit", ErrUnsupportedPhoto)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		log.Err(err).
			Str("func", "*s3PhotoStorage.SavePhoto").
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("error uploading photo")
		return "", fmt.Errorf("error uploading photo: %w", err)
	}

	return publicPhotoURL(s.publicURL, key), nil
}

func (s *s3PhotoStorage) DeletePhoto(ctx context.Context, url string) error {
	key, ok := photoKeyFromURL(s.publicURL, url)
	if !ok {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*s3PhotoStorage.DeletePhoto").
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("error deleting photo")
		return fmt.Errorf("error deleting photo: %w", err)
	}
	return nil
}
