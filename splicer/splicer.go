// Package splicer replaces product links inside an article with rendered product cards.
package splicer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/raushankrgupta/product-card-splicer/mapping"
	"github.com/raushankrgupta/product-card-splicer/models"
	"github.com/raushankrgupta/product-card-splicer/render"
	"github.com/raushankrgupta/product-card-splicer/scrapers"
	"github.com/raushankrgupta/product-card-splicer/scrapers/amazon"
	"go.uber.org/zap"
)

// Defaults for the article layout and asset directory
const (
	DefaultContainerClass = "entry-content"
	DefaultAssetDir       = "product_images"
)

// Skip reasons recorded for mapped links that were left untouched
const (
	ReasonMissingDocument = "local document not found"
	ReasonExtraction      = "extraction failed"
)

// DocumentLoader loads the host article from a URL or a local path
type DocumentLoader interface {
	LoadHostDocument(ctx context.Context, source string) (*goquery.Document, error)
}

// Splicer swaps mapped anchors in an article's content container for product cards
type Splicer struct {
	Extractor      scrapers.Extractor
	Loader         DocumentLoader
	Logger         *zap.Logger
	ContainerClass string
	AssetDir       string
	AffiliateURL   string // replaces every card's link target when set
}

// Result is the outcome of splicing one host document
type Result struct {
	Replacements int
	Skipped      []models.SkippedLink
	Products     []models.ProductRecord
	Output       string // inner HTML of the content container
}

type target struct {
	anchor   *goquery.Selection
	fragment models.Fragment
}

// NewSplicer creates a Splicer with the default container class and asset directory
func NewSplicer(loader DocumentLoader, logger *zap.Logger) *Splicer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Splicer{
		Extractor:      amazon.NewExtractor(logger),
		Loader:         loader,
		Logger:         logger,
		ContainerClass: DefaultContainerClass,
		AssetDir:       DefaultAssetDir,
	}
}

// Splice replaces every anchor in the content container whose href is mapped to an existing,
// extractable product document. Links that cannot be turned into a card are left as they are.
// Only a missing container is an error.
func (s *Splicer) Splice(hostDoc *goquery.Document, links models.LinkMapping, baseDir string) (*Result, error) {
	container := hostDoc.Find("." + s.ContainerClass).First()
	if container.Length() == 0 {
		return nil, fmt.Errorf("%w: .%s", models.ErrContainerNotFound, s.ContainerClass)
	}

	result := &Result{}
	var targets []target

	// Collect first so the tree is not mutated while it is walked
	container.Find("a[href]").Each(func(i int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		localPath, ok := mapping.Resolve(links, href)
		if !ok {
			return
		}

		fragment, record, reason, err := s.card(href, localPath, baseDir)
		if err != nil {
			s.Logger.Warn("skipping product link",
				zap.String("url", href),
				zap.String("path", localPath),
				zap.String("reason", reason),
				zap.Error(err))
			result.Skipped = append(result.Skipped, models.SkippedLink{URL: href, LocalPath: localPath, Reason: reason})
			return
		}

		targets = append(targets, target{anchor: a, fragment: fragment})
		result.Products = append(result.Products, *record)
	})

	for _, t := range targets {
		t.anchor.ReplaceWithHtml(string(t.fragment))
	}
	result.Replacements = len(targets)

	output, err := container.Html()
	if err != nil {
		return nil, fmt.Errorf("render container: %w", err)
	}
	result.Output = output

	s.Logger.Info("spliced product cards",
		zap.Int("replacements", result.Replacements),
		zap.Int("skipped", len(result.Skipped)))
	return result, nil
}

func (s *Splicer) card(href, localPath, baseDir string) (models.Fragment, *models.ProductRecord, string, error) {
	if _, err := os.Stat(localPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, ReasonMissingDocument, &models.FileNotFoundError{Path: localPath}
		}
		return "", nil, ReasonMissingDocument, err
	}

	record, err := s.Extractor.ExtractFile(localPath, baseDir, s.AssetDir)
	if err != nil {
		return "", nil, ReasonExtraction, err
	}

	affiliateURL := href
	if s.AffiliateURL != "" {
		affiliateURL = s.AffiliateURL
	}
	return render.Fragment(record, affiliateURL), record, "", nil
}

// Run loads the mapping and host document, splices, and writes the container markup to outputFile.
// Nothing is written when any structural step fails.
func (s *Splicer) Run(ctx context.Context, hostSource, mappingFile, baseDir, outputFile string) (*models.SpliceRun, error) {
	links, err := mapping.Load(mappingFile)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("loaded link mapping", zap.String("path", mappingFile), zap.Int("links", len(links)))

	doc, err := s.Loader.LoadHostDocument(ctx, hostSource)
	if err != nil {
		return nil, err
	}

	result, err := s.Splice(doc, links, baseDir)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(outputFile, []byte(result.Output), 0644); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}
	s.Logger.Info("wrote spliced content", zap.String("path", outputFile))

	return &models.SpliceRun{
		HostSource:     hostSource,
		OutputFile:     outputFile,
		ContainerClass: s.ContainerClass,
		Replacements:   result.Replacements,
		Skipped:        result.Skipped,
		Products:       result.Products,
		CreatedAt:      time.Now(),
	}, nil
}
