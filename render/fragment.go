// Package render turns product records into the HTML blocks spliced into articles.
//
// Extracted text is written verbatim, without HTML escaping, so the card matches the
// markup the product page produced.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/raushankrgupta/product-card-splicer/models"
)

// BuyButtonText labels the call-to-action link
const BuyButtonText = "Buy Now"

// Fragment renders record as a single product-container block linking to affiliateURL.
// The output depends only on its arguments.
func Fragment(record *models.ProductRecord, affiliateURL string) models.Fragment {
	var b strings.Builder
	stars := FormatStars(record.RatingStars)

	b.WriteString(`<div class="product-container">`)
	b.WriteString("\n")

	// Main image
	b.WriteString(`    <div class="product-main-image">` + "\n")
	if len(record.Images) > 0 {
		fmt.Fprintf(&b, `        <img src="%s" alt="Main Product Image" id="mainImage">`+"\n", record.Images[0].Src())
	}
	b.WriteString("    </div>\n")

	// Thumbnails
	b.WriteString(`    <div class="product-thumbnails">` + "\n")
	for _, img := range record.Images {
		src := img.Src()
		fmt.Fprintf(&b, `        <img src="%s" alt="Thumbnail" onclick="changeMainImage('%s')">`+"\n", src, src)
	}
	b.WriteString("    </div>\n")

	// Price
	b.WriteString(`    <div class="product-price">` + "\n")
	fmt.Fprintf(&b, "        <p>%s</p>\n", record.PriceText)
	b.WriteString("    </div>\n")

	// Rating
	b.WriteString(`    <div class="product-reviews">` + "\n")
	fmt.Fprintf(&b, `        <div class="stars" style="--rating: %s;" aria-label="Rating of %s out of 5"></div>`+"\n", stars, stars)
	fmt.Fprintf(&b, "        <p>%s</p>\n", record.ReviewCountText)
	b.WriteString("    </div>\n")

	// Call to action
	fmt.Fprintf(&b, `    <a class="product-buy-button" href="%s" target="_blank" rel="nofollow noopener">%s</a>`+"\n", affiliateURL, BuyButtonText)

	b.WriteString("</div>")
	return models.Fragment(b.String())
}

// FormatStars prints a rating in its shortest form: 4.5, 4, 0
func FormatStars(stars float64) string {
	return strconv.FormatFloat(stars, 'f', -1, 64)
}
