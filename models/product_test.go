package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordBuilderDefaults(t *testing.T) {
	b := NewRecordBuilder("p.html")
	b.AddImage(ImageRef{SourcePath: "./a.jpg", ResolvedPath: "product_images/a.jpg"})

	record, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "p.html", record.SourcePath)
	assert.Equal(t, NoPriceText, record.PriceText)
	assert.Equal(t, 0.0, record.RatingStars)
	assert.Equal(t, NoReviewsText, record.ReviewCountText)
}

func TestRecordBuilderDedupesImages(t *testing.T) {
	b := NewRecordBuilder("p.html")
	assert.True(t, b.AddImage(ImageRef{SourcePath: "./a.jpg"}))
	assert.True(t, b.AddImage(ImageRef{SourcePath: "./b.jpg"}))
	assert.False(t, b.AddImage(ImageRef{SourcePath: "./a.jpg", ResolvedPath: "other"}))
	assert.Equal(t, 2, b.ImageCount())

	record, err := b.Build()
	require.NoError(t, err)
	require.Len(t, record.Images, 2)
	assert.Empty(t, record.Images[0].ResolvedPath)
}

func TestRecordBuilderRatingClamp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{4.5, 4.5},
		{-1, 0},
		{7, MaxRatingStars},
	}
	for _, tt := range tests {
		b := NewRecordBuilder("")
		b.AddImage(ImageRef{SourcePath: "x"})
		b.SetRating(tt.in)
		record, err := b.Build()
		require.NoError(t, err)
		assert.Equal(t, tt.want, record.RatingStars)
	}
}

func TestRecordBuilderExplicitFields(t *testing.T) {
	b := NewRecordBuilder("")
	b.AddImage(ImageRef{SourcePath: "x"})
	b.SetPrice("$10.00")
	b.SetReviewCount("12 ratings")

	record, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "$10.00", record.PriceText)
	assert.Equal(t, "12 ratings", record.ReviewCountText)
}

func TestRecordBuilderWithoutImages(t *testing.T) {
	_, err := NewRecordBuilder("p.html").Build()
	assert.True(t, errors.Is(err, ErrNoValidImages))
}

func TestImageRefSrc(t *testing.T) {
	assert.Equal(t, "product_images/a.jpg", ImageRef{SourcePath: "./a.jpg", ResolvedPath: "product_images/a.jpg"}.Src())
	assert.Equal(t, "./a.jpg", ImageRef{SourcePath: "./a.jpg"}.Src())
}

func TestErrorMessages(t *testing.T) {
	fetch := &FetchError{URL: "https://x", StatusCode: 503}
	assert.Contains(t, fetch.Error(), "503")

	wrapped := &ExtractionError{Path: "p.html", Err: ErrNoImages}
	assert.True(t, errors.Is(wrapped, ErrNoImages))
	assert.Contains(t, wrapped.Error(), "p.html")
}
