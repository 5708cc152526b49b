// Package cmd - quote commands
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"agency-quote/core/output"
	"agency-quote/core/quote"
	"agency-quote/core/types"
)

var (
	outputFormat string

	webKind        string
	webPages       int
	webSeo         string
	webProductBand int
	webMaintenance bool
	webCycle       string

	mktGmb      int
	mktSocial   int
	mktBlog     int
	mktChannels []string
)

// quoteCmd groups the quoting subcommands
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Compute a quote from a service configuration",
}

// quoteWebsiteCmd computes a website-creation quote
var quoteWebsiteCmd = &cobra.Command{
	Use:   "website",
	Short: "Quote a website build",
	Long: `Quote a website build from its configuration.

Examples:
  agency-quote quote website --pages 5
  agency-quote quote website --kind ecommerce --pages 12 --seo advanced --products 1
  agency-quote quote website --pages 8 --maintenance --cycle yearly --format json`,
	RunE: runWebsiteQuote,
}

// quoteMarketingCmd computes a recurring marketing quote
var quoteMarketingCmd = &cobra.Command{
	Use:   "marketing",
	Short: "Quote a monthly marketing plan",
	Long: `Quote a recurring marketing plan. A module at 0 is off.

Examples:
  agency-quote quote marketing --gmb 4 --blog 2
  agency-quote quote marketing --social 8 --channels linkedin,pinterest`,
	RunE: runMarketingQuote,
}

// quotePackCmd quotes a preset pack
var quotePackCmd = &cobra.Command{
	Use:   "pack [name]",
	Short: "Quote a preset marketing pack",
	Args:  cobra.ExactArgs(1),
	RunE:  runPackQuote,
}

func init() {
	quoteCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "cli", "output format (cli, json)")

	quoteWebsiteCmd.Flags().StringVar(&webKind, "kind", "showcase", "site kind (showcase, ecommerce)")
	quoteWebsiteCmd.Flags().IntVar(&webPages, "pages", 5, "number of pages (1-50)")
	quoteWebsiteCmd.Flags().StringVar(&webSeo, "seo", "basic", "SEO tier (basic, advanced)")
	quoteWebsiteCmd.Flags().IntVar(&webProductBand, "products", 0, "product volume band index (ecommerce only)")
	quoteWebsiteCmd.Flags().BoolVar(&webMaintenance, "maintenance", false, "include the maintenance plan")
	quoteWebsiteCmd.Flags().StringVar(&webCycle, "cycle", "monthly", "maintenance billing cycle (monthly, yearly)")

	quoteMarketingCmd.Flags().IntVar(&mktGmb, "gmb", 0, "Google Business posts per month")
	quoteMarketingCmd.Flags().IntVar(&mktSocial, "social", 0, "social posts per month")
	quoteMarketingCmd.Flags().IntVar(&mktBlog, "blog", 0, "blog articles per month")
	quoteMarketingCmd.Flags().StringSliceVar(&mktChannels, "channels", nil, "social channels (facebook, instagram, linkedin, pinterest)")

	quoteCmd.AddCommand(quoteWebsiteCmd)
	quoteCmd.AddCommand(quoteMarketingCmd)
	quoteCmd.AddCommand(quotePackCmd)
}

func runWebsiteQuote(cmd *cobra.Command, args []string) error {
	engine, err := loadEngine()
	if err != nil {
		return err
	}

	if webPages < 1 || webPages > 50 {
		return fmt.Errorf("pages must be between 1 and 50")
	}

	cfg := types.WebsiteQuoteConfig{
		SiteKind:           types.SiteKind(webKind),
		PageCount:          webPages,
		SeoTier:            types.SeoTier(webSeo),
		ProductVolumeBand:  webProductBand,
		MaintenanceEnabled: webMaintenance,
		BillingCycle:       types.BillingCycle(webCycle),
	}

	return render(engine.WebsiteQuote(cfg))
}

func runMarketingQuote(cmd *cobra.Command, args []string) error {
	engine, err := loadEngine()
	if err != nil {
		return err
	}

	cfg := types.MarketingQuoteConfig{
		GmbPostsPerMonth:     mktGmb,
		SocialPostsPerMonth:  mktSocial,
		BlogArticlesPerMonth: mktBlog,
	}
	for _, ch := range mktChannels {
		cfg.SocialChannels = append(cfg.SocialChannels, types.Channel(ch))
	}

	return render(engine.MarketingQuote(cfg))
}

func runPackQuote(cmd *cobra.Command, args []string) error {
	engine, err := loadEngine()
	if err != nil {
		return err
	}

	pack, ok := quote.FindPack(args[0])
	if !ok {
		return fmt.Errorf("unknown pack: %s (available: starter, essential, performance)", args[0])
	}

	fmt.Printf("Pack: %s\n", pack.Name)
	return render(engine.MarketingQuote(pack.Config))
}

func render(result *types.QuoteResult) error {
	return output.New(output.Format(outputFormat)).Render(os.Stdout, result)
}
