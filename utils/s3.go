package utils

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// ObjectPutter is the subset of the S3 client used by the asset mirror
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// AssetMirror uploads the resolved asset directory to an S3 bucket
type AssetMirror struct {
	Client ObjectPutter
	Bucket string
	Prefix string
	Logger *zap.Logger
}

// NewS3AssetMirror loads the default AWS config for region and returns a mirror for bucket
func NewS3AssetMirror(ctx context.Context, region, bucket, prefix string, logger *zap.Logger) (*AssetMirror, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssetMirror{
		Client: s3.NewFromConfig(cfg),
		Bucket: bucket,
		Prefix: prefix,
		Logger: logger,
	}, nil
}

// ObjectKey returns the key an asset file is stored under
func (m *AssetMirror) ObjectKey(file string) string {
	return path.Join(m.Prefix, filepath.Base(file))
}

// MirrorDir uploads every regular file directly under dir and returns the uploaded keys.
// A failed upload is logged and does not stop the others.
func (m *AssetMirror) MirrorDir(ctx context.Context, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read asset dir: %w", err)
	}

	var keys []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		file := filepath.Join(dir, entry.Name())
		key, err := m.upload(ctx, file)
		if err != nil {
			m.Logger.Warn("asset upload failed", zap.String("path", file), zap.Error(err))
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (m *AssetMirror) upload(ctx context.Context, file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(file))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := m.ObjectKey(file)
	_, err = m.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.Bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}
	return key, nil
}
