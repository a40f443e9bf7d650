package base

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/raushankrgupta/product-card-splicer/models"
)

// Fetch strategies for host documents served over HTTP(S)
const (
	StrategyHTTP     = "http"
	StrategyChromeDP = "chromedp"
	StrategySelenium = "selenium"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// BaseScraper loads host and product documents
type BaseScraper struct {
	Client           *http.Client
	Strategy         string
	ChromeDriverPath string
	SeleniumPort     int
}

// NewBaseScraper creates a new BaseScraper instance using plain HTTP
func NewBaseScraper() *BaseScraper {
	return &BaseScraper{
		Strategy: StrategyHTTP,
		Client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				ForceAttemptHTTP2:     false,
				TLSNextProto:          make(map[string]func(string, *tls.Conn) http.RoundTripper),
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}
}

// IsURL reports whether source names an HTTP(S) resource rather than a local file
func IsURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// LoadHostDocument fetches source when it is a URL and reads it from disk otherwise
func (b *BaseScraper) LoadHostDocument(ctx context.Context, source string) (*goquery.Document, error) {
	if !IsURL(source) {
		return LoadDocumentFile(source)
	}

	switch b.Strategy {
	case StrategyChromeDP:
		return b.FetchDocumentChromeDP(ctx, source)
	case StrategySelenium:
		return b.FetchDocumentSelenium(source)
	case StrategyHTTP, "":
		return b.FetchDocumentHTTP(ctx, source)
	default:
		return nil, fmt.Errorf("unknown fetch strategy %q", b.Strategy)
	}
}

// FetchDocumentHTTP fetches the URL with a blocking GET. Any non-2xx response is a FetchError.
func (b *BaseScraper) FetchDocumentHTTP(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &models.FetchError{URL: url, Err: err}
	}

	// Common headers to mimic a real browser
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	res, err := b.Client.Do(req)
	if err != nil {
		return nil, &models.FetchError{URL: url, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &models.FetchError{URL: url, StatusCode: res.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, &models.FetchError{URL: url, StatusCode: res.StatusCode, Err: err}
	}
	return doc, nil
}

// LoadDocumentFile parses the local HTML file at path
func LoadDocumentFile(path string) (*goquery.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &models.FileNotFoundError{Path: path}
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}
