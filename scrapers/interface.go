package scrapers

import "github.com/raushankrgupta/product-card-splicer/models"

// Extractor defines the interface for product page extractors
type Extractor interface {
	// ExtractFile builds a product record from a saved product page, copying its
	// gallery images from baseDir into destDir
	ExtractFile(path, baseDir, destDir string) (*models.ProductRecord, error)
}
