package models

import "fmt"

const (
	// NoPriceText is rendered when the product page has no price element
	NoPriceText = "No price found"
	// NoReviewsText is rendered when the product page has no review count element
	NoReviewsText = "0 reviews"
	// MaxRatingStars is the top of the star scale
	MaxRatingStars = 5.0
)

// ImageRef is one gallery image of a product page
type ImageRef struct {
	SourcePath   string `json:"source_path" bson:"source_path"`                         // src as found in the markup
	ResolvedPath string `json:"resolved_path,omitempty" bson:"resolved_path,omitempty"` // path inside the asset dir
}

// Src returns the path to embed in an <img src> attribute
func (r ImageRef) Src() string {
	if r.ResolvedPath != "" {
		return r.ResolvedPath
	}
	return r.SourcePath
}

// ProductRecord represents the product details extracted from one saved product page.
// It is built through RecordBuilder and is read-only afterwards.
type ProductRecord struct {
	SourcePath      string     `json:"source_path" bson:"source_path"`
	Images          []ImageRef `json:"images" bson:"images"`
	PriceText       string     `json:"price" bson:"price"`
	RatingStars     float64    `json:"rating_stars" bson:"rating_stars"`
	ReviewCountText string     `json:"review_count" bson:"review_count"`
}

// RecordBuilder collects the fields of a ProductRecord during one parse pass.
// Optional fields stay unset until found; Build applies the defaults.
type RecordBuilder struct {
	sourcePath string
	images     []ImageRef
	seen       map[string]bool
	price      *string
	rating     *float64
	reviews    *string
}

// NewRecordBuilder starts a record for the product document at sourcePath
func NewRecordBuilder(sourcePath string) *RecordBuilder {
	return &RecordBuilder{
		sourcePath: sourcePath,
		seen:       make(map[string]bool),
	}
}

// AddImage appends an image unless its SourcePath was already added
func (b *RecordBuilder) AddImage(ref ImageRef) bool {
	if b.seen[ref.SourcePath] {
		return false
	}
	b.seen[ref.SourcePath] = true
	b.images = append(b.images, ref)
	return true
}

// SetPrice records the price text
func (b *RecordBuilder) SetPrice(text string) {
	b.price = &text
}

// SetRating records the star rating, clamped to [0, MaxRatingStars]
func (b *RecordBuilder) SetRating(stars float64) {
	switch {
	case stars < 0:
		stars = 0
	case stars > MaxRatingStars:
		stars = MaxRatingStars
	}
	b.rating = &stars
}

// SetReviewCount records the review count text
func (b *RecordBuilder) SetReviewCount(text string) {
	b.reviews = &text
}

// ImageCount returns the number of images added so far
func (b *RecordBuilder) ImageCount() int {
	return len(b.images)
}

// Build assembles the record. It fails only when no image was added.
func (b *RecordBuilder) Build() (*ProductRecord, error) {
	if len(b.images) == 0 {
		return nil, fmt.Errorf("build record for %s: %w", b.sourcePath, ErrNoValidImages)
	}

	record := &ProductRecord{
		SourcePath:      b.sourcePath,
		Images:          append([]ImageRef(nil), b.images...),
		PriceText:       NoPriceText,
		ReviewCountText: NoReviewsText,
	}
	if b.price != nil {
		record.PriceText = *b.price
	}
	if b.rating != nil {
		record.RatingStars = *b.rating
	}
	if b.reviews != nil {
		record.ReviewCountText = *b.reviews
	}
	return record, nil
}

// Fragment is the rendered HTML block for one product
type Fragment string
