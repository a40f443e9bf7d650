package amazon

import (
	"math"
	"strconv"
	"strings"

	"github.com/raushankrgupta/product-card-splicer/models"
	"github.com/raushankrgupta/product-card-splicer/scrapers/base"
	"github.com/raushankrgupta/product-card-splicer/utils"
	"go.uber.org/zap"
)

// Selectors names the markers used to find product attributes on a saved Amazon page
type Selectors struct {
	GalleryClass   string // class on every <img> of the product gallery
	PriceClass     string // price block
	PriceTextClass string // child of the price block holding the canonical price text
	RatingClass    string // icon label, e.g. "4.5 out of 5 stars"
	ReviewCountID  string // e.g. "1,234 ratings"
}

// DefaultSelectors returns the markers of a product page saved from amazon.com
func DefaultSelectors() Selectors {
	return Selectors{
		GalleryClass:   "a-dynamic-image",
		PriceClass:     "a-price",
		PriceTextClass: "a-offscreen",
		RatingClass:    "a-icon-alt",
		ReviewCountID:  "acrCustomerReviewText",
	}
}

// AssetResolver copies an image reference into the asset directory
type AssetResolver interface {
	Resolve(ref, baseDir, destDir string) (string, error)
}

// Extractor builds product records from saved Amazon product pages
type Extractor struct {
	Selectors Selectors
	Assets    AssetResolver
	Logger    *zap.Logger
}

// NewExtractor creates an Extractor with the default selectors
func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		Selectors: DefaultSelectors(),
		Assets:    utils.NewAssetResolver(),
		Logger:    logger,
	}
}

// ExtractFile loads the product document at path and extracts it
func (e *Extractor) ExtractFile(path, baseDir, destDir string) (*models.ProductRecord, error) {
	doc, err := base.LoadDocumentFile(path)
	if err != nil {
		return nil, err
	}
	return e.extract(path, base.NewDocumentIndex(doc), baseDir, destDir)
}

// Extract builds a record from an indexed product document.
// Only a missing or fully unresolvable gallery fails; every other field falls back to its default.
func (e *Extractor) Extract(idx *base.DocumentIndex, baseDir, destDir string) (*models.ProductRecord, error) {
	return e.extract("", idx, baseDir, destDir)
}

func (e *Extractor) extract(path string, idx *base.DocumentIndex, baseDir, destDir string) (*models.ProductRecord, error) {
	builder := models.NewRecordBuilder(path)

	// 1. Images
	gallery := idx.FindAllByClass("img", e.Selectors.GalleryClass)
	if len(gallery) == 0 {
		return nil, &models.ExtractionError{Path: path, Err: models.ErrNoImages}
	}

	seen := make(map[string]bool)
	for _, img := range gallery {
		src, ok := img.Attr("src")
		if !ok || src == "" || seen[src] {
			continue
		}
		seen[src] = true

		resolved, err := e.Assets.Resolve(src, baseDir, destDir)
		if err != nil {
			e.Logger.Warn("dropping gallery image", zap.String("path", path), zap.String("src", src), zap.Error(err))
			continue
		}
		builder.AddImage(models.ImageRef{SourcePath: src, ResolvedPath: resolved})
	}

	// 2. Price
	if price, ok := e.price(idx); ok {
		builder.SetPrice(price)
	}

	// 3. Rating
	if stars, ok := e.rating(idx); ok {
		builder.SetRating(stars)
	}

	// 4. Review count
	if reviews, ok := idx.FindByID("span", e.Selectors.ReviewCountID); ok {
		builder.SetReviewCount(reviews.Text())
	}

	record, err := builder.Build()
	if err != nil {
		return nil, &models.ExtractionError{Path: path, Err: models.ErrNoValidImages}
	}
	return record, nil
}

func (e *Extractor) price(idx *base.DocumentIndex) (string, bool) {
	block, ok := idx.FindByClass("", e.Selectors.PriceClass)
	if !ok {
		return "", false
	}
	if e.Selectors.PriceTextClass != "" {
		if text, ok := block.FindByClass("", e.Selectors.PriceTextClass); ok && text.Text() != "" {
			return text.Text(), true
		}
	}
	return block.Text(), true
}

func (e *Extractor) rating(idx *base.DocumentIndex) (float64, bool) {
	label, ok := idx.FindByClass("span", e.Selectors.RatingClass)
	if !ok {
		return 0, false
	}
	return ParseStars(label.Text())
}

// ParseStars reads the leading number of a rating label such as "4.5 out of 5 stars"
func ParseStars(text string) (float64, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, false
	}
	stars, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || math.IsNaN(stars) {
		return 0, false
	}
	return stars, true
}
