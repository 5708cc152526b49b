// Package output - JSON rendering
package output

import (
	"encoding/json"
	"io"

	"agency-quote/core/types"
)

// JSONFormatter renders a quote as machine-readable JSON.
// Amounts are emitted rounded to the currency minor unit; the full-precision
// values stay inside the engine.
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

type jsonLineItem struct {
	Label    string `json:"label"`
	Quantity string `json:"quantity"`
	Rate     string `json:"rate"`
	Amount   string `json:"amount"`
}

type jsonQuote struct {
	Currency            string         `json:"currency"`
	LineItems           []jsonLineItem `json:"line_items"`
	TotalOneTime        string         `json:"total_one_time"`
	TotalRecurring      string         `json:"total_recurring_monthly"`
	TotalPayableNow     string         `json:"total_payable_now"`
	InstallmentEligible bool           `json:"installment_eligible"`
	Valid               bool           `json:"valid"`
	Violations          []string       `json:"violations,omitempty"`
	ManualQuoteRequired bool           `json:"manual_quote_required,omitempty"`
}

// Render writes the quote as indented JSON
func (f *JSONFormatter) Render(w io.Writer, result *types.QuoteResult) error {
	places := result.Currency.MinorUnits()

	doc := jsonQuote{
		Currency:            result.Currency.String(),
		LineItems:           make([]jsonLineItem, 0, len(result.LineItems)),
		TotalOneTime:        result.TotalOneTime.Round(places).StringFixed(places),
		TotalRecurring:      result.TotalRecurringMonthly.Round(places).StringFixed(places),
		TotalPayableNow:     result.RoundedTotal().StringFixed(places),
		InstallmentEligible: result.InstallmentEligible,
		Valid:               result.Valid,
		Violations:          result.Violations,
		ManualQuoteRequired: result.ManualQuoteRequired,
	}

	for _, li := range result.LineItems {
		doc.LineItems = append(doc.LineItems, jsonLineItem{
			Label:    li.Label,
			Quantity: li.Quantity.String(),
			Rate:     li.Rate.Round(places).StringFixed(places),
			Amount:   li.Amount.Round(places).StringFixed(places),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
