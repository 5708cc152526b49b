// Package quote - Validation and eligibility
package quote

import (
	"github.com/shopspring/decimal"

	"agency-quote/core/pricing"
	"agency-quote/core/types"
)

// Violation names surfaced in QuoteResult.Violations
const (
	ViolationGmbMinimum    = "gmb_minimum"
	ViolationSocialMinimum = "social_minimum"
	ViolationBlogMinimum   = "blog_minimum"
)

// MarketingViolations checks each enabled module against its minimum.
// A module at quantity 0 is off and always passes. The returned list is
// in fixed module order.
func MarketingViolations(rc *pricing.RateCard, cfg types.MarketingQuoteConfig) []string {
	var violations []string
	if cfg.GmbPostsPerMonth > 0 && cfg.GmbPostsPerMonth < rc.GmbMin {
		violations = append(violations, ViolationGmbMinimum)
	}
	if cfg.SocialPostsPerMonth > 0 && cfg.SocialPostsPerMonth < rc.SocialMin {
		violations = append(violations, ViolationSocialMinimum)
	}
	if cfg.BlogArticlesPerMonth > 0 && cfg.BlogArticlesPerMonth < rc.BlogMin {
		violations = append(violations, ViolationBlogMinimum)
	}
	return violations
}

// InstallmentEligible reports whether a total qualifies for the
// 4-installment option: positive and at most the card's limit.
// Independent of quote validity; callers gate the installment UI on both.
func InstallmentEligible(rc *pricing.RateCard, total decimal.Decimal) bool {
	return total.IsPositive() && total.LessThanOrEqual(rc.InstallmentLimit)
}
