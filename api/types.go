// Package api - Request and response types
package api

import (
	"time"

	"agency-quote/core/types"
	"agency-quote/internal/errors"
)

// WebsiteQuoteRequest is the wire form of a website configuration
type WebsiteQuoteRequest struct {
	SiteKind           string `json:"site_kind"`
	PageCount          int    `json:"page_count"`
	SeoTier            string `json:"seo_tier"`
	ProductVolumeBand  int    `json:"product_volume_band"`
	MaintenanceEnabled bool   `json:"maintenance_enabled"`
	BillingCycle       string `json:"billing_cycle"`
}

// MarketingQuoteRequest is the wire form of a marketing configuration
type MarketingQuoteRequest struct {
	GmbPostsPerMonth     int      `json:"gmb_posts_per_month"`
	SocialPostsPerMonth  int      `json:"social_posts_per_month"`
	BlogArticlesPerMonth int      `json:"blog_articles_per_month"`
	SocialChannels       []string `json:"social_channels,omitempty"`
}

// SubmitRequest finalizes a quote and hands it to the workflow collaborator
type SubmitRequest struct {
	// Kind selects which configuration is present (website, marketing)
	Kind string `json:"kind"`

	Website   *WebsiteQuoteRequest   `json:"website,omitempty"`
	Marketing *MarketingQuoteRequest `json:"marketing,omitempty"`

	// Installments requests the 4x payment option
	Installments bool `json:"installments,omitempty"`
}

// QuoteDTO is the wire form of a quote result.
// Amounts are strings rounded to the currency minor unit; full precision
// never crosses the API boundary.
type QuoteDTO struct {
	Currency              string        `json:"currency"`
	LineItems             []LineItemDTO `json:"line_items"`
	TotalOneTime          string        `json:"total_one_time"`
	TotalRecurringMonthly string        `json:"total_recurring_monthly"`
	TotalPayableNow       string        `json:"total_payable_now"`
	InstallmentEligible   bool          `json:"installment_eligible"`
	Valid                 bool          `json:"valid"`
	Violations            []string      `json:"violations,omitempty"`
	ManualQuoteRequired   bool          `json:"manual_quote_required,omitempty"`
}

// LineItemDTO is one breakdown entry on the wire
type LineItemDTO struct {
	Label    string `json:"label"`
	Quantity string `json:"quantity"`
	Rate     string `json:"rate"`
	Amount   string `json:"amount"`
}

// QuoteResponse wraps a quote with request metadata
type QuoteResponse struct {
	RequestID string           `json:"request_id"`
	Timestamp time.Time        `json:"timestamp"`
	Quote     *QuoteDTO        `json:"quote"`
	Metadata  ResponseMetadata `json:"metadata"`
}

// ResponseMetadata carries reproducibility context
type ResponseMetadata struct {
	// InputHash is a deterministic hash of the request body
	InputHash string `json:"input_hash"`

	// EngineVersion is the server version
	EngineVersion string `json:"engine_version"`

	// DurationMs is the processing time
	DurationMs int64 `json:"duration_ms"`
}

// SubmitResponse reports the collaborator outcome
type SubmitResponse struct {
	RequestID string    `json:"request_id"`
	QuoteID   string    `json:"quote_id"`
	Status    string    `json:"status"`
	Quote     *QuoteDTO `json:"quote"`
}

// SlotsResponse lists bookable slots for a date
type SlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// ErrorResponse is the uniform error envelope
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func validateWebsiteRequest(req *WebsiteQuoteRequest) error {
	switch req.SiteKind {
	case string(types.SiteShowcase), string(types.SiteEcommerce):
	default:
		return errors.Input("site_kind must be showcase or ecommerce")
	}
	if req.PageCount < 1 || req.PageCount > 50 {
		return errors.Input("page_count must be between 1 and 50")
	}
	switch req.SeoTier {
	case "", string(types.SeoBasic), string(types.SeoAdvanced):
	default:
		return errors.Input("seo_tier must be basic or advanced")
	}
	switch req.BillingCycle {
	case "", string(types.BillingMonthly), string(types.BillingYearly):
	default:
		return errors.Input("billing_cycle must be monthly or yearly")
	}
	return nil
}

func validateMarketingRequest(req *MarketingQuoteRequest) error {
	if req.GmbPostsPerMonth < 0 || req.SocialPostsPerMonth < 0 || req.BlogArticlesPerMonth < 0 {
		return errors.Input("module quantities must be non-negative")
	}
	for _, ch := range req.SocialChannels {
		switch types.Channel(ch) {
		case types.ChannelFacebook, types.ChannelInstagram, types.ChannelLinkedIn, types.ChannelPinterest:
		default:
			return errors.Newf(errors.TypeInput, "unknown social channel: %s", ch)
		}
	}
	return nil
}
