// Package workflow delivers finalized quotes to an automation endpoint.
// The quote engine never imports this package: it hands off a finalized
// amount and description and this adapter owns delivery, retries and
// signing. Demo-vs-live is an explicit mode on the config, never ambient
// state the engine could observe.
package workflow

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"agency-quote/core/types"
	"agency-quote/internal/errors"
	"agency-quote/internal/logging"
)

// Mode selects delivery behavior
type Mode string

const (
	// ModeDemo logs the payload and short-circuits without network I/O
	ModeDemo Mode = "demo"

	// ModeLive delivers the payload to the configured endpoint
	ModeLive Mode = "live"
)

// Config configures quote delivery
type Config struct {
	// Mode selects demo or live delivery
	Mode Mode `json:"mode"`

	// Endpoint is the workflow webhook URL
	Endpoint string `json:"endpoint"`

	// Secret signs payloads (HMAC-SHA256 over the body)
	Secret string `json:"secret"`

	// Timeout for one delivery attempt
	Timeout time.Duration `json:"timeout"`

	// RetryCount for failed deliveries
	RetryCount int `json:"retry_count"`

	// RetryDelay between retries
	RetryDelay time.Duration `json:"retry_delay"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig(mode Mode) *Config {
	return &Config{
		Mode:       mode,
		Timeout:    30 * time.Second,
		RetryCount: 3,
		RetryDelay: 1 * time.Second,
	}
}

// Payload is one finalized quote submission
type Payload struct {
	// Intent names the requested downstream action
	Intent string `json:"intent"`

	// QuoteID identifies this submission
	QuoteID string `json:"quote_id"`

	// Amount is the payable-now total, rounded to the currency minor unit
	Amount string `json:"amount"`

	// Currency of the amount
	Currency types.Currency `json:"currency"`

	// Description is the human-readable order summary
	Description string `json:"description"`

	// Installments requests the 4x payment option when true
	Installments bool `json:"installments,omitempty"`

	// Timestamp of submission
	Timestamp time.Time `json:"timestamp"`
}

// Adapter delivers quote payloads
type Adapter struct {
	config     *Config
	httpClient *http.Client
}

// New creates a new workflow adapter
func New(config *Config) *Adapter {
	return &Adapter{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Submit delivers a payload, retrying on failure.
// In demo mode nothing leaves the process.
func (a *Adapter) Submit(ctx context.Context, payload *Payload) error {
	if a.config.Mode == ModeDemo {
		logging.Info("demo mode: quote submission skipped",
			zap.String("quote_id", payload.QuoteID),
			zap.String("amount", payload.Amount),
			zap.String("description", payload.Description))
		return nil
	}

	if a.config.Endpoint == "" {
		return errors.New(errors.TypeConfig, "workflow endpoint not configured")
	}

	var lastErr error
	for attempt := 0; attempt <= a.config.RetryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(a.config.RetryDelay):
			}
		}

		if err := a.submitOnce(ctx, payload); err != nil {
			lastErr = err
			logging.Warn("quote submission attempt failed",
				zap.Int("attempt", attempt+1),
				zap.Error(err))
			continue
		}
		return nil
	}

	return errors.Submission("delivery failed after retries", lastErr).
		WithContext("attempts", a.config.RetryCount+1)
}

func (a *Adapter) submitOnce(ctx context.Context, payload *Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Internal("failed to encode payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Internal("failed to create request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if a.config.Secret != "" {
		req.Header.Set("X-Signature", "sha256="+a.sign(body))
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return errors.Submission("request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return errors.Newf(errors.TypeSubmission, "endpoint returned %d: %s",
			resp.StatusCode, string(respBody))
	}

	return nil
}

func (a *Adapter) sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(a.config.Secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
