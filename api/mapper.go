// Package api - Wire mapping
// The API never performs pricing logic; it only translates between wire
// types and the engine's value objects.
package api

import (
	"agency-quote/core/types"
)

func websiteConfigFrom(req *WebsiteQuoteRequest) types.WebsiteQuoteConfig {
	cfg := types.WebsiteQuoteConfig{
		SiteKind:           types.SiteKind(req.SiteKind),
		PageCount:          req.PageCount,
		SeoTier:            types.SeoTier(req.SeoTier),
		ProductVolumeBand:  req.ProductVolumeBand,
		MaintenanceEnabled: req.MaintenanceEnabled,
		BillingCycle:       types.BillingCycle(req.BillingCycle),
	}
	if cfg.SeoTier == "" {
		cfg.SeoTier = types.SeoBasic
	}
	if cfg.BillingCycle == "" {
		cfg.BillingCycle = types.BillingMonthly
	}
	return cfg
}

func marketingConfigFrom(req *MarketingQuoteRequest) types.MarketingQuoteConfig {
	cfg := types.MarketingQuoteConfig{
		GmbPostsPerMonth:     req.GmbPostsPerMonth,
		SocialPostsPerMonth:  req.SocialPostsPerMonth,
		BlogArticlesPerMonth: req.BlogArticlesPerMonth,
	}
	for _, ch := range req.SocialChannels {
		cfg.SocialChannels = append(cfg.SocialChannels, types.Channel(ch))
	}
	return cfg
}

func quoteDTO(result *types.QuoteResult) *QuoteDTO {
	places := result.Currency.MinorUnits()

	dto := &QuoteDTO{
		Currency:              result.Currency.String(),
		LineItems:             make([]LineItemDTO, 0, len(result.LineItems)),
		TotalOneTime:          result.TotalOneTime.Round(places).StringFixed(places),
		TotalRecurringMonthly: result.TotalRecurringMonthly.Round(places).StringFixed(places),
		TotalPayableNow:       result.RoundedTotal().StringFixed(places),
		InstallmentEligible:   result.InstallmentEligible,
		Valid:                 result.Valid,
		Violations:            result.Violations,
		ManualQuoteRequired:   result.ManualQuoteRequired,
	}

	for _, li := range result.LineItems {
		dto.LineItems = append(dto.LineItems, LineItemDTO{
			Label:    li.Label,
			Quantity: li.Quantity.String(),
			Rate:     li.Rate.Round(places).StringFixed(places),
			Amount:   li.Amount.Round(places).StringFixed(places),
		})
	}

	return dto
}
