// Package hcl loads rate card overrides from HCL files.
// An override file starts from the default card and replaces only what it
// declares, so a single diverging constant (a channel fee, a discount) can
// be corrected operationally without a code change.
package hcl

import (
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"agency-quote/core/pricing"
	"agency-quote/core/types"
	"agency-quote/internal/errors"
)

// fileSchema is the top-level HCL document
type fileSchema struct {
	Website   *websiteBlock   `hcl:"website,block"`
	Marketing *marketingBlock `hcl:"marketing,block"`
	Billing   *billingBlock   `hcl:"billing,block"`
}

type websiteBlock struct {
	PageTiers            []tierBlock        `hcl:"page_tier,block"`
	ProductBands         []productBandBlock `hcl:"product_band,block"`
	EcommerceSetup       *float64           `hcl:"ecommerce_setup,optional"`
	SeoAdvancedPerPage   *float64           `hcl:"seo_advanced_per_page,optional"`
	MaintenanceShowcase  *float64           `hcl:"maintenance_showcase,optional"`
	MaintenanceEcommerce *float64           `hcl:"maintenance_ecommerce,optional"`
}

type tierBlock struct {
	// UpTo 0 (or omitted) marks the unbounded tail tier
	UpTo int     `hcl:"up_to,optional"`
	Rate float64 `hcl:"rate"`
}

type productBandBlock struct {
	Label     string   `hcl:"label,optional"`
	UpTo      int      `hcl:"up_to,optional"`
	Surcharge *float64 `hcl:"surcharge,optional"`
	Manual    bool     `hcl:"manual,optional"`
}

type marketingBlock struct {
	GmbPostRate       *float64 `hcl:"gmb_post_rate,optional"`
	SocialPostRate    *float64 `hcl:"social_post_rate,optional"`
	BlogArticleRate   *float64 `hcl:"blog_article_rate,optional"`
	PremiumChannelFee *float64 `hcl:"premium_channel_fee,optional"`
	GmbMin            *int     `hcl:"gmb_min,optional"`
	SocialMin         *int     `hcl:"social_min,optional"`
	BlogMin           *int     `hcl:"blog_min,optional"`
}

type billingBlock struct {
	YearlyDiscount   *float64 `hcl:"yearly_discount,optional"`
	InstallmentLimit *float64 `hcl:"installment_limit,optional"`
	Currency         *string  `hcl:"currency,optional"`
}

// Load reads an HCL override file and applies it over the default card
func Load(path string) (*pricing.RateCard, error) {
	var doc fileSchema
	if err := hclsimple.DecodeFile(path, nil, &doc); err != nil {
		return nil, errors.RateCard("failed to parse rate card file", err).
			WithContext("path", path)
	}

	card := pricing.Default()
	applyWebsite(card, doc.Website)
	applyMarketing(card, doc.Marketing)
	applyBilling(card, doc.Billing)

	if err := validate(card); err != nil {
		return nil, err
	}
	return card, nil
}

func applyWebsite(card *pricing.RateCard, b *websiteBlock) {
	if b == nil {
		return
	}
	if len(b.PageTiers) > 0 {
		tiers := make([]pricing.Tier, 0, len(b.PageTiers))
		for _, t := range b.PageTiers {
			tiers = append(tiers, pricing.Tier{
				UpTo: t.UpTo,
				Rate: decimal.NewFromFloat(t.Rate),
			})
		}
		card.PageTiers = tiers
	}
	if len(b.ProductBands) > 0 {
		bands := make([]pricing.ProductBand, 0, len(b.ProductBands))
		for _, pb := range b.ProductBands {
			band := pricing.ProductBand{
				Label:     pb.Label,
				UpTo:      pb.UpTo,
				Surcharge: decimal.Zero,
				Manual:    pb.Manual,
			}
			if pb.Surcharge != nil && !pb.Manual {
				band.Surcharge = decimal.NewFromFloat(*pb.Surcharge)
			}
			bands = append(bands, band)
		}
		card.ProductBands = bands
	}
	setRate(&card.EcommerceSetup, b.EcommerceSetup)
	setRate(&card.SeoAdvancedPerPage, b.SeoAdvancedPerPage)
	setRate(&card.MaintenanceShowcase, b.MaintenanceShowcase)
	setRate(&card.MaintenanceEcommerce, b.MaintenanceEcommerce)
}

func applyMarketing(card *pricing.RateCard, b *marketingBlock) {
	if b == nil {
		return
	}
	setRate(&card.GmbPostRate, b.GmbPostRate)
	setRate(&card.SocialPostRate, b.SocialPostRate)
	setRate(&card.BlogArticleRate, b.BlogArticleRate)
	setRate(&card.PremiumChannelFee, b.PremiumChannelFee)
	setInt(&card.GmbMin, b.GmbMin)
	setInt(&card.SocialMin, b.SocialMin)
	setInt(&card.BlogMin, b.BlogMin)
}

func applyBilling(card *pricing.RateCard, b *billingBlock) {
	if b == nil {
		return
	}
	setRate(&card.YearlyDiscount, b.YearlyDiscount)
	setRate(&card.InstallmentLimit, b.InstallmentLimit)
	if b.Currency != nil {
		card.Currency = currencyFrom(*b.Currency)
	}
}

func currencyFrom(code string) types.Currency {
	switch strings.ToUpper(code) {
	case "USD":
		return types.CurrencyUSD
	case "GBP":
		return types.CurrencyGBP
	default:
		return types.CurrencyEUR
	}
}

func setRate(dst *decimal.Decimal, src *float64) {
	if src != nil {
		*dst = decimal.NewFromFloat(*src)
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func validate(card *pricing.RateCard) error {
	if len(card.PageTiers) == 0 {
		return errors.RateCard("rate card has no page tiers", nil)
	}
	previous := 0
	for i, t := range card.PageTiers {
		if t.Rate.IsNegative() {
			return errors.RateCard("page tier rate is negative", nil).
				WithContext("tier", i)
		}
		if t.UpTo == 0 {
			if i != len(card.PageTiers)-1 {
				return errors.RateCard("unbounded page tier must come last", nil).
					WithContext("tier", i)
			}
			continue
		}
		if t.UpTo <= previous {
			return errors.RateCard("page tiers must have increasing limits", nil).
				WithContext("tier", i)
		}
		previous = t.UpTo
	}
	if card.YearlyDiscount.IsNegative() || card.YearlyDiscount.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return errors.RateCard("yearly discount must be in [0, 1)", nil)
	}
	if !card.InstallmentLimit.IsPositive() {
		return errors.RateCard("installment limit must be positive", nil)
	}
	return nil
}
