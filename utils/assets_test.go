package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raushankrgupta/product-card-splicer/models"
)

func writeAsset(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestNormalizeRef(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"./Product_files/a.jpg", "Product_files/a.jpg"},
		{"Product_files/a.jpg", "Product_files/a.jpg"},
		{"../a.jpg", "../a.jpg"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeRef(tt.ref), tt.ref)
	}
}

func TestAssetResolverCopiesIntoDestDir(t *testing.T) {
	base := t.TempDir()
	dest := filepath.Join(t.TempDir(), "product_images")
	writeAsset(t, base, "Product_files/shoe.jpg", "jpeg-bytes")

	resolved, err := NewAssetResolver().Resolve("./Product_files/shoe.jpg", base, dest)
	require.NoError(t, err)

	assert.Equal(t, filepath.ToSlash(filepath.Join(dest, "shoe.jpg")), resolved)
	data, err := os.ReadFile(filepath.Join(dest, "shoe.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}

func TestAssetResolverIsIdempotent(t *testing.T) {
	base := t.TempDir()
	dest := t.TempDir()
	writeAsset(t, base, "img/a.png", "png")

	resolver := NewAssetResolver()
	first, err := resolver.Resolve("img/a.png", base, dest)
	require.NoError(t, err)
	second, err := resolver.Resolve("img/a.png", base, dest)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAssetResolverMissingSource(t *testing.T) {
	_, err := NewAssetResolver().Resolve("./missing.jpg", t.TempDir(), t.TempDir())
	require.Error(t, err)

	var missing *models.MissingAssetError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "./missing.jpg", missing.Ref)
}

func TestAssetResolverSameBaseNameOverwrites(t *testing.T) {
	base := t.TempDir()
	dest := t.TempDir()
	writeAsset(t, base, "one/pic.jpg", "first")
	writeAsset(t, base, "two/pic.jpg", "second")

	resolver := NewAssetResolver()
	a, err := resolver.Resolve("one/pic.jpg", base, dest)
	require.NoError(t, err)
	b, err := resolver.Resolve("two/pic.jpg", base, dest)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	data, err := os.ReadFile(filepath.Join(dest, "pic.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestAssetResolverSourceAlreadyInDestDir(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "pic.jpg", "keep")

	_, err := NewAssetResolver().Resolve("pic.jpg", dir, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "pic.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}
