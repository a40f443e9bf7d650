package render

import (
	"fmt"

	"github.com/raushankrgupta/product-card-splicer/models"
)

// pageTemplate hosts a single fragment with the script and styles the card expects
// from the article it is normally spliced into.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Product preview</title>
<style>
.product-container { max-width: 480px; font-family: sans-serif; }
.product-main-image img { width: 100%%; }
.product-thumbnails img { width: 60px; margin: 4px; cursor: pointer; }
.stars { --percent: calc(var(--rating) / 5 * 100%%); display: inline-block; font-size: 20px; }
.stars::before { content: "★★★★★"; background: linear-gradient(90deg, #f5a623 var(--percent), #ccc var(--percent)); -webkit-background-clip: text; -webkit-text-fill-color: transparent; }
.product-buy-button { display: inline-block; padding: 8px 16px; background: #ff9900; color: #111; text-decoration: none; border-radius: 4px; }
</style>
<script>
function changeMainImage(src) { document.getElementById("mainImage").src = src; }
</script>
</head>
<body>
%s
</body>
</html>
`

// Page wraps a fragment into a standalone preview document
func Page(fragment models.Fragment) string {
	return fmt.Sprintf(pageTemplate, fragment)
}
