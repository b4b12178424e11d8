// Package blob stores uploaded images in an S3-compatible bucket and hands
// back publicly retrievable URLs.
package blob

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"backend/internal/config"
)

// MaxImageSize is 10MB; mobile photos can be large.
const MaxImageSize = 10 << 20

// uploadTimeout bounds a single upload round trip on slow connections.
const uploadTimeout = 60 * time.Second

var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

// SizeError reports an upload exceeding MaxImageSize.
type SizeError struct {
	Size int64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf(
		"image file is too large (%.2fMB), maximum allowed size is 10MB",
		float64(e.Size)/(1024*1024),
	)
}

// TypeError reports an upload with a content type outside the allowed set.
type TypeError struct {
	ContentType string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf(
		"invalid file type: %s, use JPEG, PNG, WebP or GIF images only",
		e.ContentType,
	)
}

// normalizeContentType lowercases the declared type. An empty content type
// is treated as JPEG, matching what browsers omit for camera uploads.
func normalizeContentType(contentType string) string {
	fileType := strings.ToLower(strings.TrimSpace(contentType))
	if fileType == "" {
		return "image/jpeg"
	}
	return fileType
}

// ValidateImage checks size and declared content type before any bytes are
// sent to storage.
func ValidateImage(contentType string, size int64) error {
	if size > MaxImageSize {
		return &SizeError{Size: size}
	}

	if _, ok := allowedTypes[normalizeContentType(contentType)]; !ok {
		return &TypeError{ContentType: contentType}
	}
	return nil
}

type Uploader struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewUploader(ctx context.Context, cfg config.Config) (*Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	publicBase := strings.TrimRight(cfg.S3PublicBaseURL, "/")
	if publicBase == "" {
		if cfg.S3Endpoint != "" {
			publicBase = strings.TrimRight(cfg.S3Endpoint, "/") + "/" + cfg.S3Bucket
		} else {
			publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
		}
	}

	return &Uploader{
		client:        client,
		bucket:        cfg.S3Bucket,
		publicBaseURL: publicBase,
	}, nil
}

// SaveImage validates the payload, uploads it under a random key and returns
// the public URL. The upload is aborted after uploadTimeout.
func (u *Uploader) SaveImage(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	if err := ValidateImage(contentType, size); err != nil {
		return "", err
	}

	fileType := normalizeContentType(contentType)

	key := storageKey(filename)

	uploadCtx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	_, err := u.client.PutObject(uploadCtx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          r,
		ContentType:   aws.String(fileType),
		ContentLength: aws.Int64(size),
		ACL:           types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		if uploadCtx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("upload timeout: the image may be too large or the connection too slow")
		}
		return "", err
	}

	return u.publicBaseURL + "/" + key, nil
}

func storageKey(filename string) string {
	return uuid.New().String() + "-" + sanitizeFilename(filename)
}

func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "image"
	}
	return b.String()
}
