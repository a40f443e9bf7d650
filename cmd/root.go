package cmd

import (
	"github.com/raushankrgupta/product-card-splicer/config"
	"github.com/raushankrgupta/product-card-splicer/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd builds the CLI. Running it without a subcommand splices the configured article.
func NewRootCmd() *cobra.Command {
	splice := newSpliceCmd()

	cmd := &cobra.Command{
		Use:   "cardsplicer",
		Short: "Replace product links in an article with product cards",
		Long: `Cardsplicer reads a mapping of affiliate URLs to saved product pages,
extracts images, price and rating from each page, and swaps the matching
links in an article's content for self-contained product cards.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadConfig()
		},
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         splice.RunE,
	}
	cmd.Flags().AddFlagSet(splice.Flags())

	cmd.AddCommand(splice)
	cmd.AddCommand(newRenderCmd())

	return cmd
}

func newLogger() (*zap.Logger, error) {
	return utils.NewLogger(config.LogLevel)
}

// override returns flag when it was set, otherwise the configured value
func override(cmd *cobra.Command, name, configured string) string {
	if cmd.Flags().Changed(name) {
		value, _ := cmd.Flags().GetString(name)
		return value
	}
	return configured
}
