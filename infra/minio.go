package infra

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/minaamulhaq/updatedPortfolowithbackend/config"
)

// CV files live under a fixed logical folder inside the bucket.
const mediaFolder = "cv"

// Signed download links stay valid for ten minutes.
const signedURLExpiry = 10 * time.Minute

type MinioClient struct {
	Client    *minio.Client
	Bucket    string
	PublicURL string
	Endpoint  string
}

func InitMinioClient(cfg *config.EnvConfig) *MinioClient {
	endpoint := cfg.Minio.Endpoint
	if endpoint == "" {
		panic("MinIO endpoint is not configured")
	}

	accessKey := cfg.Minio.AccessKey
	if accessKey == "" {
		panic("MinIO access key is not configured")
	}

	secretKey := cfg.Minio.SecretKey
	if secretKey == "" {
		panic("MinIO secret key is not configured")
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO client: %v", err))
	}

	client := &MinioClient{
		Client:    minioClient,
		Bucket:    cfg.Minio.Bucket,
		PublicURL: cfg.Minio.PublicURL,
		Endpoint:  endpoint,
	}

	if err := client.ensureBucket(context.Background()); err != nil {
		panic(fmt.Sprintf("Failed to ensure MinIO bucket: %v", err))
	}

	return client
}

func (m *MinioClient) ensureBucket(ctx context.Context) error {
	exists, err := m.Client.BucketExists(ctx, m.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := m.Client.MakeBucket(ctx, m.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// Store uploads the file under the cv/ folder with a unique object key
// so repeated uploads of the same filename never collide.
func (m *MinioClient) Store(ctx context.Context, r io.Reader, size int64, filename, contentType string) (*StoredAsset, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	storageID := path.Join(mediaFolder, uuid.NewString()+"-"+path.Base(filename))

	info, err := m.Client.PutObject(ctx, m.Bucket, storageID, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object: %w", err)
	}

	return &StoredAsset{
		FileURL:   m.objectURL(storageID),
		StorageID: storageID,
		AssetID:   info.ETag,
	}, nil
}

func (m *MinioClient) Delete(ctx context.Context, storageID string) error {
	if storageID == "" {
		return fmt.Errorf("storageID cannot be empty")
	}
	if err := m.Client.RemoveObject(ctx, m.Bucket, storageID, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object: %w", err)
	}
	return nil
}

// SignedDownloadURL presigns a GET with an attachment disposition so
// the browser saves the file instead of rendering it.
func (m *MinioClient) SignedDownloadURL(ctx context.Context, storageID, filename string) (string, error) {
	if storageID == "" {
		return "", fmt.Errorf("storageID cannot be empty")
	}

	reqParams := make(url.Values)
	reqParams.Set("response-content-disposition", fmt.Sprintf(`attachment; filename="%s"`, path.Base(filename)))

	signed, err := m.Client.PresignedGetObject(ctx, m.Bucket, storageID, signedURLExpiry, reqParams)
	if err != nil {
		return "", fmt.Errorf("failed to presign download URL: %w", err)
	}
	return signed.String(), nil
}

func (m *MinioClient) objectURL(storageID string) string {
	if m.PublicURL != "" {
		return fmt.Sprintf("%s/%s/%s", m.PublicURL, m.Bucket, storageID)
	}
	scheme := "http"
	if m.Client.EndpointURL().Scheme == "https" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.Endpoint, m.Bucket, storageID)
}
