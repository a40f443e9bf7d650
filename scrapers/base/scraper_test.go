package base

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raushankrgupta/product-card-splicer/models"
)

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com/post"))
	assert.True(t, IsURL("HTTP://example.com"))
	assert.False(t, IsURL("articles/post.html"))
	assert.False(t, IsURL("/tmp/https.html"))
}

func TestFetchDocumentHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		if r.URL.Path == "/gone" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`<html><body><div class="entry-content"><p>hello</p></div></body></html>`))
	}))
	defer server.Close()

	scraper := NewBaseScraper()

	doc, err := scraper.LoadHostDocument(context.Background(), server.URL+"/post")
	require.NoError(t, err)
	assert.Equal(t, "hello", doc.Find(".entry-content p").Text())

	_, err = scraper.LoadHostDocument(context.Background(), server.URL+"/gone")
	require.Error(t, err)
	var fetchErr *models.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
}

func TestFetchDocumentHTTPUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewBaseScraper().FetchDocumentHTTP(context.Background(), url)
	var fetchErr *models.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Error(t, fetchErr.Err)
}

func TestLoadHostDocumentFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.html")
	require.NoError(t, os.WriteFile(path, []byte(`<div class="entry-content"><a href="https://x/p">buy</a></div>`), 0644))

	doc, err := NewBaseScraper().LoadHostDocument(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "buy", doc.Find("a").Text())
}

func TestLoadDocumentFileMissing(t *testing.T) {
	_, err := LoadDocumentFile(filepath.Join(t.TempDir(), "missing.html"))

	var notFound *models.FileNotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestLoadHostDocumentUnknownStrategy(t *testing.T) {
	scraper := NewBaseScraper()
	scraper.Strategy = "carrier-pigeon"

	_, err := scraper.LoadHostDocument(context.Background(), "https://example.com")
	assert.ErrorContains(t, err, "unknown fetch strategy")
}
