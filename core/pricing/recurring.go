// Package pricing - Recurring billing
package pricing

import (
	"github.com/shopspring/decimal"

	"agency-quote/core/types"
)

// RecurringCharge is a raw monthly rate converted for a billing cycle
type RecurringCharge struct {
	// MonthlyRate is the displayed monthly rate, yearly discount applied
	MonthlyRate decimal.Decimal `json:"monthly_rate"`

	// PayableNow is the first payment for the chosen cycle
	PayableNow decimal.Decimal `json:"payable_now"`

	// Months is the number of months covered by PayableNow
	Months int `json:"months"`
}

// Recurring converts a raw monthly rate into a displayed monthly rate and
// a payable-now amount. On a yearly cycle the discount applies to the
// monthly rate BEFORE annualizing.
// Callers skip this entirely when the recurring module is disabled.
func (rc *RateCard) Recurring(rawMonthly decimal.Decimal, cycle types.BillingCycle) RecurringCharge {
	if cycle == types.BillingYearly {
		monthly := rawMonthly.Mul(decimal.NewFromInt(1).Sub(rc.YearlyDiscount))
		return RecurringCharge{
			MonthlyRate: monthly,
			PayableNow:  monthly.Mul(decimal.NewFromInt(12)),
			Months:      12,
		}
	}
	return RecurringCharge{
		MonthlyRate: rawMonthly,
		PayableNow:  rawMonthly,
		Months:      1,
	}
}
