package images

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	domain "github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

// MinioStore keeps generated images as objects in a bucket, behind the same
// port as DiskStore.
type MinioStore struct {
	client     *minio.Client
	bucketName string
	region     string
}

// NewMinioStore buat koneksi MinIO
func NewMinioStore(ctx context.Context, endpoint, region, bucket, accessKey, secretKey string, useSSL bool) (*MinioStore, error) {
	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, err
	}

	// pastikan bucket ada
	exists, err := cli.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := cli.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return nil, err
		}
	}

	return &MinioStore{client: cli, bucketName: bucket, region: region}, nil
}

func (s *MinioStore) Save(ctx context.Context, id domain.ID, imgType domain.ImageType, data []byte) (string, error) {
	name := FileName(id, imgType)
	_, err := s.client.PutObject(ctx, s.bucketName, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "image/png"})
	if err != nil {
		return "", err
	}
	return name, nil
}

func (s *MinioStore) Open(ctx context.Context, relPath string) ([]byte, string, error) {
	key, err := cleanKey(relPath)
	if err != nil {
		return nil, "", err
	}
	obj, err := s.client.GetObject(ctx, s.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return nil, "", domain.ErrNotFound
		}
		return nil, "", err
	}
	return data, ContentTypeByExt(key), nil
}

func (s *MinioStore) Remove(ctx context.Context, relPath string) error {
	key, err := cleanKey(relPath)
	if err != nil {
		return err
	}
	return s.client.RemoveObject(ctx, s.bucketName, key, minio.RemoveObjectOptions{})
}

// cleanKey applies the same containment rule as the disk store: object keys
// may not climb out of the bucket namespace.
func cleanKey(relPath string) (string, error) {
	key := path.Clean("/" + relPath)
	if key == "/" || strings.Contains(relPath, "..") {
		return "", domain.ErrPathEscape
	}
	return strings.TrimPrefix(key, "/"), nil
}
