// Package cmd provides the CLI commands for agency-quote.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	ratecardhcl "agency-quote/adapters/ratecard/hcl"
	"agency-quote/core/pricing"
	"agency-quote/core/quote"
	"agency-quote/internal/config"
	"agency-quote/internal/logging"
)

var (
	cfgFile      string
	rateCardFile string
	verbose      bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "agency-quote",
	Short: "Compute website and marketing subscription quotes",
	Long: `agency-quote is the pricing engine behind the agency's quoting surfaces.

It turns a service configuration (website build, recurring marketing plan)
into a deterministic quote with a line-item breakdown, validity checks and
installment eligibility.

Examples:
  agency-quote quote website --pages 12 --kind ecommerce --seo advanced
  agency-quote quote marketing --gmb 4 --social 4 --channels linkedin
  agency-quote quote pack essential
  agency-quote slots 2026-09-12`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.agency-quote.json)")
	rootCmd.PersistentFlags().StringVar(&rateCardFile, "ratecard", "", "HCL rate card overriding the default rates")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadEngine builds the quote engine with the effective rate card:
// --ratecard flag first, then the configured path, then defaults.
func loadEngine() (*quote.Engine, error) {
	path := rateCardFile
	if path == "" {
		path = config.Get().Pricing.RateCardPath
	}
	if path == "" {
		return quote.NewEngine(pricing.Default()), nil
	}

	card, err := ratecardhcl.Load(path)
	if err != nil {
		return nil, err
	}
	return quote.NewEngine(card), nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("agency-quote version 0.1.0")
	},
}

// configCmd prints the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(config.Get(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}
