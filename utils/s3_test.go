package utils

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePutter struct {
	objects map[string]string
	types   map[string]string
	failKey string
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	key := aws.ToString(in.Key)
	if key == f.failKey {
		return nil, errors.New("access denied")
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[key] = string(body)
	f.types[key] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func TestAssetMirrorMirrorDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.jpg"), []byte("A"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.png"), []byte("B"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	putter := &fakePutter{objects: map[string]string{}, types: map[string]string{}, failKey: "cards/b.png"}
	mirror := &AssetMirror{Client: putter, Bucket: "bucket", Prefix: "cards", Logger: zap.NewNop()}

	keys, err := mirror.MirrorDir(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"cards/a.jpg"}, keys)
	assert.Equal(t, "A", putter.objects["cards/a.jpg"])
	assert.Equal(t, "image/jpeg", putter.types["cards/a.jpg"])
}

func TestAssetMirrorMissingDir(t *testing.T) {
	mirror := &AssetMirror{Client: &fakePutter{}, Logger: zap.NewNop()}
	_, err := mirror.MirrorDir(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
