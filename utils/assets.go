package utils

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/raushankrgupta/product-card-splicer/models"
)

// relativeMarker prefixes image references in pages saved by a browser ("./Product_files/x.jpg")
const relativeMarker = "./"

// AssetResolver copies image files referenced by saved product pages into an asset directory
type AssetResolver struct{}

// NewAssetResolver creates a new AssetResolver instance
func NewAssetResolver() *AssetResolver {
	return &AssetResolver{}
}

// NormalizeRef strips the leading relative marker from an image reference
func NormalizeRef(ref string) string {
	return strings.TrimPrefix(ref, relativeMarker)
}

// Resolve copies baseDir/ref into destDir under its base name
// and returns the destination path to embed in the fragment.
// Files sharing a base name overwrite each other.
func (r *AssetResolver) Resolve(ref, baseDir, destDir string) (string, error) {
	normalized := NormalizeRef(ref)
	src := filepath.Join(baseDir, filepath.FromSlash(normalized))

	info, err := os.Stat(src)
	if err != nil || info.IsDir() {
		return "", &models.MissingAssetError{Ref: ref, Path: src}
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	dst := filepath.Join(destDir, filepath.Base(src))
	if samePath(src, dst) {
		return filepath.ToSlash(dst), nil
	}
	if err := copyFile(src, dst); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &models.MissingAssetError{Ref: ref, Path: src}
		}
		return "", fmt.Errorf("copy %s: %w", src, err)
	}

	return filepath.ToSlash(dst), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
