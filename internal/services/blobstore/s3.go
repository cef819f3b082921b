package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/podhaven/ingest-api/pkg/config"
)

// S3Store implements Store on top of an S3-compatible bucket
type S3Store struct {
	client   *s3.S3
	bucket   string
	region   string
	endpoint string
	useSSL   bool
}

var _ Store = (*S3Store)(nil)

// NewS3Store creates a Store backed by the bucket described in cfg.
// A non-empty endpoint switches to path-style addressing (MinIO).
func NewS3Store(cfg config.StorageConfig) (*S3Store, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}

	if cfg.AccessKeyID != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)
	}

	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		if cfg.DisableSSL {
			awsConfig.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &S3Store{
		client:   s3.New(sess),
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: cfg.Endpoint,
		useSSL:   !cfg.DisableSSL,
	}, nil
}

func (s *S3Store) Put(ctx context.Context, key string, data io.Reader, contentType string) error {
	body, ok := data.(io.ReadSeeker)
	if !ok {
		buf, err := io.ReadAll(data)
		if err != nil {
			return fmt.Errorf("failed to read object body: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %w", key, err)
	}
	return nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

func (s *S3Store) List(ctx context.Context) ([]Object, error) {
	var objects []Object

	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
	}
	err := s.client.ListObjectsV2PagesWithContext(ctx, input,
		func(page *s3.ListObjectsV2Output, lastPage bool) bool {
			for _, obj := range page.Contents {
				objects = append(objects, Object{
					Key:          aws.StringValue(obj.Key),
					Size:         aws.Int64Value(obj.Size),
					LastModified: aws.TimeValue(obj.LastModified),
				})
			}
			return true
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list bucket %s: %w", s.bucket, err)
	}

	return objects, nil
}

// URLFor returns the public URL for key. Virtual-hosted style for AWS,
// path style when a custom endpoint is configured.
func (s *S3Store) URLFor(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpointBase(), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func (s *S3Store) OwnsURL(rawURL string) bool {
	_, err := s.KeyForURL(rawURL)
	return err == nil
}

func (s *S3Store) KeyForURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid object URL %q: %w", rawURL, err)
	}

	path := strings.TrimPrefix(u.Path, "/")

	if s.endpoint != "" {
		base, err := url.Parse(s.endpointBase())
		if err != nil || u.Host != base.Host {
			return "", fmt.Errorf("URL %q is not in bucket %s", rawURL, s.bucket)
		}
		key := strings.TrimPrefix(path, s.bucket+"/")
		if key == path || key == "" {
			return "", fmt.Errorf("URL %q is not in bucket %s", rawURL, s.bucket)
		}
		return key, nil
	}

	if u.Host != fmt.Sprintf("%s.s3.%s.amazonaws.com", s.bucket, s.region) || path == "" {
		return "", fmt.Errorf("URL %q is not in bucket %s", rawURL, s.bucket)
	}
	return path, nil
}

func (s *S3Store) endpointBase() string {
	endpoint := strings.TrimPrefix(s.endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")
	protocol := "https"
	if !s.useSSL {
		protocol = "http"
	}
	return fmt.Sprintf("%s://%s", protocol, endpoint)
}
