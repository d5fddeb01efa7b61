package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Minio stores images in an object-storage bucket instead of the local disk.
type Minio struct {
	Client *minio.Client
	Bucket string
}

// NewMinio connects to MinIO and ensures the bucket exists.
func NewMinio(endpoint, accessKey, secretKey, bucket string) (*Minio, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		log.Printf("Warning: failed to check bucket existence: %v", err)
	} else if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			log.Printf("Warning: failed to create bucket: %v", err)
		} else {
			log.Printf("Created bucket: %s", bucket)
		}
	}

	return &Minio{Client: client, Bucket: bucket}, nil
}

func (m *Minio) Save(ctx context.Context, name, contentType string, data []byte) (string, error) {
	stored := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(name))
	_, err := m.Client.PutObject(
		ctx,
		m.Bucket,
		stored,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return stored, nil
}
