package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/booksmart-api/internal/config"
	"github.com/BruksfildServices01/booksmart-api/internal/domain/image"
)

var ErrUnsupportedImage = image.ErrUnsupported

// objectAPI is the subset of the S3 client used here.
type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3Host struct {
	client        objectAPI
	bucket        string
	publicBaseURL string
	maxDimension  int
}

func NewS3Host(cfg *config.Config) *S3Host {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	base := cfg.S3PublicBaseURL
	if base == "" {
		if cfg.S3Endpoint != "" {
			base = strings.TrimRight(cfg.S3Endpoint, "/") + "/" + cfg.S3Bucket
		} else {
			base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
		}
	}

	return newS3Host(s3.New(opts), cfg.S3Bucket, base, cfg.ImageMaxDimension)
}

func newS3Host(client objectAPI, bucket, publicBaseURL string, maxDim int) *S3Host {
	return &S3Host{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		maxDimension:  maxDim,
	}
}

func (h *S3Host) Upload(ctx context.Context, folder string, data []byte) (*image.Upload, error) {
	body, err := ToWebP(data, h.maxDimension)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s.webp", folder, uuid.NewString())

	_, err = h.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(h.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String("image/webp"),
		CacheControl: aws.String("public, max-age=31536000"),
	})
	if err != nil {
		return nil, fmt.Errorf("put object %s: %w", key, err)
	}

	return &image.Upload{
		URL:      h.publicBaseURL + "/" + key,
		PublicID: key,
	}, nil
}

func (h *S3Host) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	_, err := h.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(h.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", publicID, err)
	}
	return nil
}

// DisabledHost is used when no bucket is configured. Uploads fail, deletes
// succeed silently.
type DisabledHost struct{}

func (DisabledHost) Upload(context.Context, string, []byte) (*image.Upload, error) {
	return nil, image.ErrHostDisabled
}

func (DisabledHost) Delete(context.Context, string) error {
	return nil
}

var (
	_ image.Host = (*S3Host)(nil)
	_ image.Host = DisabledHost{}
)
