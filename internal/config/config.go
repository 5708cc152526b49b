// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"agency-quote/core/types"
	"agency-quote/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Pricing contains pricing configuration
	Pricing PricingConfig `json:"pricing"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Workflow contains quote submission configuration
	Workflow WorkflowConfig `json:"workflow"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// DefaultCurrency is the default currency
	DefaultCurrency types.Currency `json:"default_currency"`

	// RateCardPath is an optional HCL rate card overriding the defaults
	RateCardPath string `json:"ratecard_path,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows the full line-item breakdown
	ShowDetails bool `json:"show_details"`
}

// WorkflowConfig contains quote submission settings.
// Mode is explicit configuration, never ambient state read by the engine.
type WorkflowConfig struct {
	// Endpoint is the workflow webhook URL
	Endpoint string `json:"endpoint,omitempty"`

	// Secret signs outgoing payloads
	Secret string `json:"secret,omitempty"`

	// Mode selects demo or live delivery
	Mode string `json:"mode"`

	// TimeoutSeconds bounds one delivery attempt
	TimeoutSeconds int `json:"timeout_seconds"`

	// RetryCount is the number of retries after a failed delivery
	RetryCount int `json:"retry_count"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			DefaultCurrency: types.CurrencyEUR,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Workflow: WorkflowConfig{
			Mode:           "demo",
			TimeoutSeconds: 30,
			RetryCount:     3,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
