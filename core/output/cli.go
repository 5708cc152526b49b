// Package output - Human-readable CLI rendering
package output

import (
	"fmt"
	"io"

	"agency-quote/core/quote"
	"agency-quote/core/types"
)

// CLIFormatter renders a quote as a fixed-width table
type CLIFormatter struct {
	// ShowDetails includes the full line-item breakdown
	ShowDetails bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the quote summary table
func (f *CLIFormatter) Render(w io.Writer, result *types.QuoteResult) error {
	cur := result.Currency.String()

	fmt.Fprintln(w, "┌──────────────────────────────────────────────────────────────────┐")
	fmt.Fprintln(w, "│                          QUOTE SUMMARY                           │")
	fmt.Fprintln(w, "├──────────────────────────────────────────────────────────────────┤")

	if f.ShowDetails {
		for _, li := range result.LineItems {
			amount := li.Amount.Round(result.Currency.MinorUnits())
			fmt.Fprintf(w, "│ %-44s %17s │\n",
				truncate(li.Label, 44),
				fmt.Sprintf("%s %s", amount.StringFixed(2), cur))
		}
		fmt.Fprintln(w, "├──────────────────────────────────────────────────────────────────┤")
	}

	if result.TotalOneTime.IsPositive() {
		fmt.Fprintf(w, "│ %-44s %17s │\n", "One-time charges",
			fmt.Sprintf("%s %s", result.TotalOneTime.Round(2).StringFixed(2), cur))
	}
	if result.TotalRecurringMonthly.IsPositive() {
		fmt.Fprintf(w, "│ %-44s %17s │\n", "Recurring (per month)",
			fmt.Sprintf("%s %s", result.TotalRecurringMonthly.Round(2).StringFixed(2), cur))
	}
	fmt.Fprintf(w, "│ %-44s %17s │\n", "TOTAL PAYABLE NOW",
		fmt.Sprintf("%s %s", result.RoundedTotal().StringFixed(2), cur))
	fmt.Fprintln(w, "└──────────────────────────────────────────────────────────────────┘")

	if result.ManualQuoteRequired {
		fmt.Fprintln(w, "Selected product volume requires a manual estimate; the total above excludes it.")
	}

	if result.Valid && result.InstallmentEligible {
		parts := result.Installments(4)
		fmt.Fprintf(w, "Eligible for 4 installments of %s %s (first %s %s)\n",
			parts[1].StringFixed(2), cur, parts[0].StringFixed(2), cur)
	}

	if !result.Valid {
		if len(result.Violations) == 0 {
			fmt.Fprintln(w, "Quote is empty: enable at least one module.")
		}
		for _, v := range result.Violations {
			fmt.Fprintf(w, "Constraint not met: %s\n", violationText(v))
		}
	}

	return nil
}

func violationText(name string) string {
	switch name {
	case quote.ViolationGmbMinimum:
		return "Google Business module is below its minimum monthly posts"
	case quote.ViolationSocialMinimum:
		return "social module is below its minimum monthly posts"
	case quote.ViolationBlogMinimum:
		return "blog module is below its minimum monthly articles"
	default:
		return name
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
