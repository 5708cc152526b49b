// Package pricing - Add-on surcharges
// Each surcharge is independently computable; no ordering dependency.
package pricing

import (
	"github.com/shopspring/decimal"

	"agency-quote/core/types"
)

// ProductBandSurcharge resolves the product-volume surcharge for a band
// index. The boolean reports a manual-quote band: the returned amount is
// zero and the caller must surface a manual estimate, never a price of 0.
// An out-of-range index is clamped to the nearest band.
func (rc *RateCard) ProductBandSurcharge(band int) (decimal.Decimal, bool) {
	if len(rc.ProductBands) == 0 {
		return decimal.Zero, false
	}
	if band < 0 {
		band = 0
	}
	if band >= len(rc.ProductBands) {
		band = len(rc.ProductBands) - 1
	}
	b := rc.ProductBands[band]
	if b.Manual {
		return decimal.Zero, true
	}
	return b.Surcharge, false
}

// SeoSurcharge computes the advanced-SEO surcharge. Zero for the basic tier.
func (rc *RateCard) SeoSurcharge(tier types.SeoTier, pages int) decimal.Decimal {
	if tier != types.SeoAdvanced || pages <= 0 {
		return decimal.Zero
	}
	return rc.SeoAdvancedPerPage.Mul(decimal.NewFromInt(int64(pages)))
}

// ChannelSurcharge computes the flat fee for one selected channel.
// Included channels (facebook, instagram) cost nothing.
func (rc *RateCard) ChannelSurcharge(ch types.Channel) decimal.Decimal {
	if !ch.Premium() {
		return decimal.Zero
	}
	return rc.PremiumChannelFee
}
