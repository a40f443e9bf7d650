package cmd

import (
	"fmt"
	"os"

	"github.com/raushankrgupta/product-card-splicer/config"
	"github.com/raushankrgupta/product-card-splicer/render"
	"github.com/raushankrgupta/product-card-splicer/scrapers/amazon"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <product.html>",
		Short: "Render one saved product page as a standalone card preview",
		Example: `  cardsplicer render saved/Product.html --output preview.html`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			record, err := amazon.NewExtractor(logger).ExtractFile(args[0],
				override(cmd, "base-dir", config.AssetBaseDir),
				override(cmd, "asset-dir", config.AssetDir))
			if err != nil {
				logger.Error("extraction failed", zap.String("path", args[0]), zap.Error(err))
				return err
			}

			output := override(cmd, "output", config.SnippetFile)
			page := render.Page(render.Fragment(record, override(cmd, "affiliate-url", config.AffiliateURL)))
			if err := os.WriteFile(output, []byte(page), 0644); err != nil {
				return fmt.Errorf("write preview: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d image(s), price %q. Preview written to %s\n",
				len(record.Images), record.PriceText, output)
			return nil
		},
	}

	cmd.Flags().String("base-dir", "", "directory product image paths are relative to (ASSET_BASE_DIR)")
	cmd.Flags().String("asset-dir", "", "directory product images are copied into (ASSET_DIR)")
	cmd.Flags().String("output", "", "preview file (SNIPPET_FILE)")
	cmd.Flags().String("affiliate-url", "", "buy button target (AFFILIATE_URL)")

	return cmd
}
