// Package main - Entry point for the agency-quote API server
package main

import (
	"flag"
	"net/http"
	"time"

	"go.uber.org/zap"

	"agency-quote/adapters/ratecard/hcl"
	"agency-quote/adapters/workflow"
	"agency-quote/api"
	"agency-quote/core/pricing"
	"agency-quote/core/quote"
	"agency-quote/internal/config"
	"agency-quote/internal/logging"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", ":8080", "server address")
	cfgPath := flag.String("config", "", "config file path")
	flag.Parse()

	cfg := config.Get()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			logging.Fatal("failed to load config", zap.Error(err))
		}
		config.Set(loaded)
		cfg = loaded
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Warn("failed to reinitialize logging", zap.Error(err))
	}

	card := pricing.Default()
	if cfg.Pricing.RateCardPath != "" {
		loaded, err := hcl.Load(cfg.Pricing.RateCardPath)
		if err != nil {
			logging.Fatal("failed to load rate card", zap.Error(err))
		}
		card = loaded
		logging.Info("rate card loaded", zap.String("path", cfg.Pricing.RateCardPath))
	}

	wfConfig := workflow.DefaultConfig(workflow.Mode(cfg.Workflow.Mode))
	wfConfig.Endpoint = cfg.Workflow.Endpoint
	wfConfig.Secret = cfg.Workflow.Secret
	if cfg.Workflow.TimeoutSeconds > 0 {
		wfConfig.Timeout = time.Duration(cfg.Workflow.TimeoutSeconds) * time.Second
	}
	if cfg.Workflow.RetryCount > 0 {
		wfConfig.RetryCount = cfg.Workflow.RetryCount
	}

	server := api.NewServer(version, quote.NewEngine(card), workflow.New(wfConfig))

	logging.Info("agency-quote server listening",
		zap.String("addr", *addr),
		zap.String("version", version),
		zap.String("workflow_mode", cfg.Workflow.Mode))

	if err := http.ListenAndServe(*addr, server); err != nil {
		logging.Fatal("server stopped", zap.Error(err))
	}
}
