package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNoImages is returned when a product page has no gallery image element at all.
	ErrNoImages = errors.New("no gallery images found")

	// ErrNoValidImages is returned when every gallery image failed to resolve.
	ErrNoValidImages = errors.New("no gallery image could be resolved")

	// ErrContainerNotFound is returned when the host document lacks the content container.
	ErrContainerNotFound = errors.New("content container not found")
)

// MissingAssetError is returned when an image file is absent from the asset source root
type MissingAssetError struct {
	Ref  string // reference as written in the markup
	Path string // path that was looked up
}

func (e *MissingAssetError) Error() string {
	return fmt.Sprintf("missing asset %q (looked for %s)", e.Ref, e.Path)
}

// FileNotFoundError is returned when a local document does not exist
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// FetchError is returned when the host document cannot be fetched over HTTP
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: status code error: %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ExtractionError wraps any failure to build a ProductRecord from a product document
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
