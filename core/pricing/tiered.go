// Package pricing - Graduated tier pricing
package pricing

import "github.com/shopspring/decimal"

// Tier is one contiguous quantity band with its own unit rate
type Tier struct {
	// UpTo is the upper quantity limit of the band (0 = unbounded)
	UpTo int `json:"up_to"`

	// Rate is the per-unit price inside the band
	Rate decimal.Decimal `json:"rate"`
}

// GraduatedCost computes the cost of a quantity across graduated tiers.
// Each tier's rate applies only to the units falling inside it, so the
// result is monotonically non-decreasing in quantity and continuous across
// band boundaries.
func GraduatedCost(quantity int, tiers []Tier) decimal.Decimal {
	if quantity <= 0 || len(tiers) == 0 {
		return decimal.Zero
	}

	total := decimal.Zero
	remaining := quantity
	previousLimit := 0

	for _, tier := range tiers {
		if remaining <= 0 {
			break
		}

		if tier.UpTo == 0 {
			// Unbounded tier - all remaining units land here
			total = total.Add(tier.Rate.Mul(decimal.NewFromInt(int64(remaining))))
			remaining = 0
			continue
		}

		tierSize := tier.UpTo - previousLimit
		inTier := remaining
		if tierSize < inTier {
			inTier = tierSize
		}
		total = total.Add(tier.Rate.Mul(decimal.NewFromInt(int64(inTier))))
		remaining -= inTier
		previousLimit = tier.UpTo
	}

	return total
}
