// Package pricing - Centralized pricing math
// Callers declare intent, not do math.
// All pricing logic flows through the rate card and these functions.
package pricing

import (
	"github.com/shopspring/decimal"

	"agency-quote/core/types"
)

// ProductBand is one product-volume band of the e-commerce option
type ProductBand struct {
	// Label is the display label for the band
	Label string `json:"label"`

	// UpTo is the upper product count of the band (0 = unbounded)
	UpTo int `json:"up_to"`

	// Surcharge is the flat additive price of the band
	Surcharge decimal.Decimal `json:"surcharge"`

	// Manual marks a band with no numeric price: the surcharge is 0 and
	// the quote must be routed to a manual estimate
	Manual bool `json:"manual,omitempty"`
}

// RateCard holds every billable constant of the quote engine.
// One card is one pricing truth shared by all quoting surfaces.
type RateCard struct {
	// Currency all rates are expressed in
	Currency types.Currency `json:"currency"`

	// PageTiers are the graduated per-page creation rates
	PageTiers []Tier `json:"page_tiers"`

	// PageCountMin and PageCountMax bound the page slider domain
	PageCountMin int `json:"page_count_min"`
	PageCountMax int `json:"page_count_max"`

	// EcommerceSetup is the flat e-commerce setup fee
	EcommerceSetup decimal.Decimal `json:"ecommerce_setup"`

	// ProductBands are the ordered product-volume bands
	ProductBands []ProductBand `json:"product_bands"`

	// SeoAdvancedPerPage is the advanced-SEO surcharge per page
	SeoAdvancedPerPage decimal.Decimal `json:"seo_advanced_per_page"`

	// MaintenanceShowcase and MaintenanceEcommerce are raw monthly rates
	MaintenanceShowcase  decimal.Decimal `json:"maintenance_showcase"`
	MaintenanceEcommerce decimal.Decimal `json:"maintenance_ecommerce"`

	// YearlyDiscount is applied to the monthly rate before annualizing
	YearlyDiscount decimal.Decimal `json:"yearly_discount"`

	// GmbPostRate, SocialPostRate and BlogArticleRate are marketing
	// per-unit monthly rates
	GmbPostRate     decimal.Decimal `json:"gmb_post_rate"`
	SocialPostRate  decimal.Decimal `json:"social_post_rate"`
	BlogArticleRate decimal.Decimal `json:"blog_article_rate"`

	// PremiumChannelFee is the flat monthly fee per premium social channel
	PremiumChannelFee decimal.Decimal `json:"premium_channel_fee"`

	// GmbMin, SocialMin and BlogMin are the per-module minimum quantities
	// for an enabled module
	GmbMin    int `json:"gmb_min"`
	SocialMin int `json:"social_min"`
	BlogMin   int `json:"blog_min"`

	// InstallmentLimit is the highest total eligible for 4x payment
	InstallmentLimit decimal.Decimal `json:"installment_limit"`
}

// Default returns the standard rate card
func Default() *RateCard {
	return &RateCard{
		Currency: types.CurrencyEUR,
		PageTiers: []Tier{
			{UpTo: 5, Rate: decimal.NewFromInt(225)},
			{UpTo: 10, Rate: decimal.NewFromInt(199)},
			{UpTo: 0, Rate: decimal.NewFromInt(179)},
		},
		PageCountMin:   1,
		PageCountMax:   50,
		EcommerceSetup: decimal.NewFromInt(199),
		ProductBands: []ProductBand{
			{Label: "1-49 products (included)", UpTo: 49, Surcharge: decimal.Zero},
			{Label: "50-99 products", UpTo: 99, Surcharge: decimal.NewFromInt(230)},
			{Label: "100-199 products", UpTo: 199, Surcharge: decimal.NewFromInt(440)},
			{Label: "200-499 products", UpTo: 499, Surcharge: decimal.NewFromInt(870)},
			{Label: "500+ products (manual quote)", UpTo: 0, Surcharge: decimal.Zero, Manual: true},
		},
		SeoAdvancedPerPage:   decimal.NewFromInt(79),
		MaintenanceShowcase:  decimal.NewFromInt(49),
		MaintenanceEcommerce: decimal.NewFromInt(72),
		YearlyDiscount:       decimal.NewFromFloat(0.10),
		GmbPostRate:          decimal.NewFromFloat(7.25),
		SocialPostRate:       decimal.NewFromFloat(12.25),
		BlogArticleRate:      decimal.NewFromFloat(12.25),
		PremiumChannelFee:    decimal.NewFromInt(29),
		GmbMin:               4,
		SocialMin:            4,
		BlogMin:              2,
		InstallmentLimit:     decimal.NewFromInt(2000),
	}
}

// ClampPageCount clamps a page count into the card's domain.
// Out-of-domain values are a caller error; the engine still never
// prices outside the domain.
func (rc *RateCard) ClampPageCount(pages int) int {
	if pages < rc.PageCountMin {
		return rc.PageCountMin
	}
	if pages > rc.PageCountMax {
		return rc.PageCountMax
	}
	return pages
}

// MaintenanceRate returns the raw monthly maintenance rate for a site kind
func (rc *RateCard) MaintenanceRate(kind types.SiteKind) decimal.Decimal {
	if kind == types.SiteEcommerce {
		return rc.MaintenanceEcommerce
	}
	return rc.MaintenanceShowcase
}
