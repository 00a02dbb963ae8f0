package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// UploadTicket is a short-lived, pre-authorized upload slot for one photo.
type UploadTicket struct {
	UploadURL string    `json:"uploadUrl"`
	ObjectKey string    `json:"objectKey"`
	PublicURL string    `json:"publicUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// PhotoStore issues presigned PUT URLs against the photo bucket. The API
// never proxies image bytes; clients upload straight to object storage.
type PhotoStore struct {
	client *minio.Client
	bucket string
	ttl    time.Duration
	useSSL bool
}

// New connects a PhotoStore to a MinIO endpoint.
func New(endpoint, accessKey, secretKey string, useSSL bool, bucket string, ttl time.Duration) (*PhotoStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect object storage: %w", err)
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &PhotoStore{client: client, bucket: bucket, ttl: ttl, useSSL: useSSL}, nil
}

// EnsureBucket creates the photo bucket when it does not exist yet.
func (s *PhotoStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
}

// UploadURL reserves an object key under the POI's prefix and returns a
// presigned PUT URL for it.
func (s *PhotoStore) UploadURL(ctx context.Context, poiID, contentType string) (UploadTicket, error) {
	ext, err := extensionFor(contentType)
	if err != nil {
		return UploadTicket{}, err
	}
	objectKey := fmt.Sprintf("pois/%s/%s%s", poiID, uuid.NewString(), ext)

	presigned, err := s.client.PresignedPutObject(ctx, s.bucket, objectKey, s.ttl)
	if err != nil {
		return UploadTicket{}, err
	}
	return UploadTicket{
		UploadURL: presigned.String(),
		ObjectKey: objectKey,
		PublicURL: s.publicURL(objectKey),
		ExpiresAt: time.Now().UTC().Add(s.ttl),
	}, nil
}

func (s *PhotoStore) publicURL(objectKey string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	public := url.URL{
		Scheme: scheme,
		Host:   s.client.EndpointURL().Host,
		Path:   fmt.Sprintf("/%s/%s", s.bucket, objectKey),
	}
	return public.String()
}

func extensionFor(contentType string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/webp":
		return ".webp", nil
	default:
		return "", fmt.Errorf("unsupported photo content type: %s", contentType)
	}
}
