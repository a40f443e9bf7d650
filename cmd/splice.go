package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/raushankrgupta/product-card-splicer/config"
	"github.com/raushankrgupta/product-card-splicer/models"
	"github.com/raushankrgupta/product-card-splicer/scrapers/base"
	"github.com/raushankrgupta/product-card-splicer/splicer"
	"github.com/raushankrgupta/product-card-splicer/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSpliceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "splice",
		Short: "Splice product cards into an article",
		Example: `  # Splice a saved article using links.xlsx
  cardsplicer splice --host article.html

  # Fetch the article with headless Chrome and send buyers to one affiliate link
  cardsplicer splice --host https://blog.example.com/post --strategy chromedp --affiliate-url https://amzn.to/abc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			host := override(cmd, "host", config.HostSource)
			if host == "" {
				return fmt.Errorf("no host document: set --host or HOST_SOURCE")
			}

			scraper := base.NewBaseScraper()
			scraper.Strategy = override(cmd, "strategy", config.FetchStrategy)
			scraper.ChromeDriverPath = config.ChromeDriverPath
			scraper.SeleniumPort = config.SeleniumPort

			s := splicer.NewSplicer(scraper, logger)
			s.ContainerClass = override(cmd, "container", config.ContainerClass)
			s.AssetDir = override(cmd, "asset-dir", config.AssetDir)
			s.AffiliateURL = override(cmd, "affiliate-url", config.AffiliateURL)

			ctx := cmd.Context()
			run, err := s.Run(ctx, host,
				override(cmd, "mapping", config.MappingFile),
				override(cmd, "base-dir", config.AssetBaseDir),
				override(cmd, "output", config.OutputFile))
			if err != nil {
				logger.Error("splice failed", zap.String("host", host), zap.Error(err))
				return err
			}

			mirrorAssets(ctx, logger, s.AssetDir)
			recordRun(ctx, logger, run)

			fmt.Fprintf(cmd.OutOrStdout(), "Replaced %d product link(s), skipped %d. Output written to %s\n",
				run.Replacements, len(run.Skipped), run.OutputFile)
			return nil
		},
	}

	cmd.Flags().String("host", "", "URL or local path of the article (HOST_SOURCE)")
	cmd.Flags().String("mapping", "", "mapping spreadsheet or CSV (MAPPING_FILE)")
	cmd.Flags().String("base-dir", "", "directory product image paths are relative to (ASSET_BASE_DIR)")
	cmd.Flags().String("asset-dir", "", "directory product images are copied into (ASSET_DIR)")
	cmd.Flags().String("output", "", "file the spliced content is written to (OUTPUT_FILE)")
	cmd.Flags().String("container", "", "class of the article content element (CONTAINER_CLASS)")
	cmd.Flags().String("affiliate-url", "", "link every card to this URL instead of the original href (AFFILIATE_URL)")
	cmd.Flags().String("strategy", "", "fetch strategy for URL hosts: http, chromedp or selenium (FETCH_STRATEGY)")

	return cmd
}

// mirrorAssets uploads the asset directory when a bucket is configured. Failures are logged only.
func mirrorAssets(ctx context.Context, logger *zap.Logger, assetDir string) {
	if config.AWSBucketName == "" {
		return
	}
	mirror, err := utils.NewS3AssetMirror(ctx, config.AWSRegion, config.AWSBucketName, config.S3Prefix, logger)
	if err != nil {
		logger.Warn("S3 mirror unavailable", zap.Error(err))
		return
	}
	keys, err := mirror.MirrorDir(ctx, assetDir)
	if err != nil {
		logger.Warn("S3 mirror failed", zap.String("dir", assetDir), zap.Error(err))
		return
	}
	logger.Info("mirrored product images", zap.String("bucket", config.AWSBucketName), zap.Int("objects", len(keys)))
}

// recordRun stores the run summary when a Mongo URI is configured. Failures are logged only.
func recordRun(ctx context.Context, logger *zap.Logger, run *models.SpliceRun) {
	if config.MongoURI == "" {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	store, err := utils.ConnectMongo(ctx, config.MongoURI, config.MongoDatabase)
	if err != nil {
		logger.Warn("run store unavailable", zap.Error(err))
		return
	}
	defer store.Close(ctx)

	if err := store.SaveRun(ctx, run); err != nil {
		logger.Warn("failed to record run", zap.Error(err))
		return
	}
	logger.Info("recorded run", zap.String("id", run.ID.Hex()))
}
