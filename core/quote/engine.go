// Package quote - Quote aggregation
// One pricing truth used by every quoting surface: the engine composes the
// pricing functions into a QuoteResult with a stable line-item breakdown.
// It never mutates its input, performs no I/O and rounds nothing; rounding
// belongs to the presentation boundary.
package quote

import (
	"fmt"

	"github.com/shopspring/decimal"

	"agency-quote/core/pricing"
	"agency-quote/core/types"
)

// Engine computes quotes against a rate card
type Engine struct {
	rates *pricing.RateCard
}

// NewEngine creates an engine for a rate card.
// A nil card selects the default rates.
func NewEngine(rates *pricing.RateCard) *Engine {
	if rates == nil {
		rates = pricing.Default()
	}
	return &Engine{rates: rates}
}

// Rates returns the engine's rate card
func (e *Engine) Rates() *pricing.RateCard {
	return e.rates
}

// WebsiteQuote computes a website-creation quote.
// Line items appear in stable order: creation tiers, add-ons, recurring.
func (e *Engine) WebsiteQuote(cfg types.WebsiteQuoteConfig) *types.QuoteResult {
	rc := e.rates
	result := &types.QuoteResult{Currency: rc.Currency}

	pages := rc.ClampPageCount(cfg.PageCount)

	// Base creation cost over graduated page tiers
	creation := pricing.GraduatedCost(pages, rc.PageTiers)
	qty := decimal.NewFromInt(int64(pages))
	result.LineItems = append(result.LineItems, types.LineItem{
		Kind:     types.LineBase,
		Label:    fmt.Sprintf("Website creation (%d pages)", pages),
		Quantity: qty,
		Rate:     creation.Div(qty),
		Amount:   creation,
	})
	oneTime := creation

	// E-commerce add-ons
	if cfg.SiteKind == types.SiteEcommerce {
		result.LineItems = append(result.LineItems, types.LineItem{
			Kind:     types.LineAddon,
			Label:    "E-commerce setup",
			Quantity: decimal.NewFromInt(1),
			Rate:     rc.EcommerceSetup,
			Amount:   rc.EcommerceSetup,
		})
		oneTime = oneTime.Add(rc.EcommerceSetup)

		surcharge, manual := rc.ProductBandSurcharge(cfg.ProductVolumeBand)
		if manual {
			result.ManualQuoteRequired = true
		} else if surcharge.IsPositive() {
			result.LineItems = append(result.LineItems, types.LineItem{
				Kind:     types.LineAddon,
				Label:    bandLabel(rc, cfg.ProductVolumeBand),
				Quantity: decimal.NewFromInt(1),
				Rate:     surcharge,
				Amount:   surcharge,
			})
			oneTime = oneTime.Add(surcharge)
		}
	}

	// Advanced SEO add-on
	if seo := rc.SeoSurcharge(cfg.SeoTier, pages); seo.IsPositive() {
		result.LineItems = append(result.LineItems, types.LineItem{
			Kind:     types.LineAddon,
			Label:    fmt.Sprintf("Advanced SEO (%d pages)", pages),
			Quantity: qty,
			Rate:     rc.SeoAdvancedPerPage,
			Amount:   seo,
		})
		oneTime = oneTime.Add(seo)
	}

	result.TotalOneTime = oneTime
	payable := oneTime

	// Recurring maintenance
	if cfg.MaintenanceEnabled {
		charge := rc.Recurring(rc.MaintenanceRate(cfg.SiteKind), cfg.BillingCycle)
		result.LineItems = append(result.LineItems, types.LineItem{
			Kind:     types.LineRecurring,
			Label:    maintenanceLabel(cfg.SiteKind, cfg.BillingCycle),
			Quantity: decimal.NewFromInt(int64(charge.Months)),
			Rate:     charge.MonthlyRate,
			Amount:   charge.PayableNow,
		})
		result.TotalRecurringMonthly = charge.MonthlyRate
		payable = payable.Add(charge.PayableNow)
	} else {
		result.TotalRecurringMonthly = decimal.Zero
	}

	result.TotalPayableNow = payable
	result.Valid = payable.IsPositive()
	result.InstallmentEligible = InstallmentEligible(rc, payable)
	return result
}

// MarketingQuote computes a recurring marketing quote.
// Modules at quantity 0 are off: no line item, no minimum check.
func (e *Engine) MarketingQuote(cfg types.MarketingQuoteConfig) *types.QuoteResult {
	rc := e.rates
	result := &types.QuoteResult{Currency: rc.Currency}

	monthly := decimal.Zero

	if cfg.GmbPostsPerMonth > 0 {
		monthly = monthly.Add(appendModuleLine(result,
			fmt.Sprintf("Google Business posts (%d/month)", cfg.GmbPostsPerMonth),
			cfg.GmbPostsPerMonth, rc.GmbPostRate))
	}

	if cfg.SocialPostsPerMonth > 0 {
		monthly = monthly.Add(appendModuleLine(result,
			fmt.Sprintf("Social posts (%d/month)", cfg.SocialPostsPerMonth),
			cfg.SocialPostsPerMonth, rc.SocialPostRate))

		// Premium channel options, fixed order for determinism
		for _, ch := range []types.Channel{types.ChannelLinkedIn, types.ChannelPinterest} {
			if !cfg.HasChannel(ch) {
				continue
			}
			fee := rc.ChannelSurcharge(ch)
			result.LineItems = append(result.LineItems, types.LineItem{
				Kind:     types.LineAddon,
				Label:    channelLabel(ch),
				Quantity: decimal.NewFromInt(1),
				Rate:     fee,
				Amount:   fee,
			})
			monthly = monthly.Add(fee)
		}
	}

	if cfg.BlogArticlesPerMonth > 0 {
		monthly = monthly.Add(appendModuleLine(result,
			fmt.Sprintf("Blog articles (%d/month)", cfg.BlogArticlesPerMonth),
			cfg.BlogArticlesPerMonth, rc.BlogArticleRate))
	}

	result.TotalOneTime = decimal.Zero
	result.TotalRecurringMonthly = monthly
	result.TotalPayableNow = monthly

	result.Violations = MarketingViolations(rc, cfg)
	result.Valid = len(result.Violations) == 0 && monthly.IsPositive()
	result.InstallmentEligible = InstallmentEligible(rc, monthly)
	return result
}

func appendModuleLine(result *types.QuoteResult, label string, quantity int, rate decimal.Decimal) decimal.Decimal {
	qty := decimal.NewFromInt(int64(quantity))
	amount := rate.Mul(qty)
	result.LineItems = append(result.LineItems, types.LineItem{
		Kind:     types.LineRecurring,
		Label:    label,
		Quantity: qty,
		Rate:     rate,
		Amount:   amount,
	})
	return amount
}

func bandLabel(rc *pricing.RateCard, band int) string {
	if band < 0 {
		band = 0
	}
	if band >= len(rc.ProductBands) {
		band = len(rc.ProductBands) - 1
	}
	return "Product import: " + rc.ProductBands[band].Label
}

func maintenanceLabel(kind types.SiteKind, cycle types.BillingCycle) string {
	label := "Maintenance & hosting (showcase"
	if kind == types.SiteEcommerce {
		label = "Maintenance & hosting (e-commerce"
	}
	if cycle == types.BillingYearly {
		return label + ", yearly)"
	}
	return label + ", monthly)"
}

func channelLabel(ch types.Channel) string {
	switch ch {
	case types.ChannelLinkedIn:
		return "LinkedIn channel option"
	case types.ChannelPinterest:
		return "Pinterest channel option"
	default:
		return string(ch) + " channel option"
	}
}
