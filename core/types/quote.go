// Package types - Quote value objects
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// MinorUnits returns the number of decimal places of the currency's minor unit
func (c Currency) MinorUnits() int32 {
	return 2
}

// LineItemKind orders line items within a quote: base charges first,
// then add-ons, then recurring charges.
type LineItemKind int

const (
	LineBase LineItemKind = iota
	LineAddon
	LineRecurring
)

// LineItem is a single human-auditable entry of a quote breakdown
type LineItem struct {
	// Kind determines the display group
	Kind LineItemKind `json:"kind"`

	// Label is a human-readable label
	Label string `json:"label"`

	// Quantity is the billed quantity (posts, pages, articles, months)
	Quantity decimal.Decimal `json:"quantity"`

	// Rate is the unit price at full precision
	Rate decimal.Decimal `json:"rate"`

	// Amount is the line total at full precision (Quantity * Rate unless flat)
	Amount decimal.Decimal `json:"amount"`
}

// QuoteResult is the complete outcome of one quote computation.
// It is a pure value: recomputing with an unchanged config yields an
// identical result.
type QuoteResult struct {
	// Currency is the quote currency
	Currency Currency `json:"currency"`

	// LineItems is the ordered breakdown; TotalPayableNow is always the
	// exact sum of these amounts
	LineItems []LineItem `json:"line_items"`

	// TotalOneTime is the sum of creation/setup charges
	TotalOneTime decimal.Decimal `json:"total_one_time"`

	// TotalRecurringMonthly is the displayed monthly recurring rate
	// (yearly discount already applied when relevant)
	TotalRecurringMonthly decimal.Decimal `json:"total_recurring_monthly"`

	// TotalPayableNow is one-time charges plus the first recurring payment
	// for the chosen billing cycle
	TotalPayableNow decimal.Decimal `json:"total_payable_now"`

	// InstallmentEligible reports whether the total qualifies for the
	// 4-installment payment option (0 < total <= limit). Independent of Valid.
	InstallmentEligible bool `json:"installment_eligible"`

	// Valid reports whether every enabled module meets its minimum and the
	// quote is purchasable (total > 0)
	Valid bool `json:"valid"`

	// Violations lists the constraint names that failed, empty when Valid
	Violations []string `json:"violations,omitempty"`

	// ManualQuoteRequired is set when a selection falls in a band that has
	// no numeric price; the numeric total excludes that band and the caller
	// must route to a manual quote instead of trusting the number
	ManualQuoteRequired bool `json:"manual_quote_required,omitempty"`
}

// Sum returns the exact sum of all line item amounts
func (q *QuoteResult) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, li := range q.LineItems {
		total = total.Add(li.Amount)
	}
	return total
}

// RoundedTotal returns TotalPayableNow rounded to the currency minor unit.
// Rounding happens only here, at the presentation boundary.
func (q *QuoteResult) RoundedTotal() decimal.Decimal {
	return q.TotalPayableNow.Round(q.Currency.MinorUnits())
}

// Installments splits the rounded total into n equal parts at currency
// precision, any remainder cents carried by the first installment.
func (q *QuoteResult) Installments(n int) []decimal.Decimal {
	if n <= 0 {
		return nil
	}
	total := q.RoundedTotal()
	places := q.Currency.MinorUnits()
	base := total.Div(decimal.NewFromInt(int64(n))).RoundDown(places)
	parts := make([]decimal.Decimal, n)
	for i := range parts {
		parts[i] = base
	}
	remainder := total.Sub(base.Mul(decimal.NewFromInt(int64(n))))
	parts[0] = parts[0].Add(remainder)
	return parts
}
