package quote

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"agency-quote/core/pricing"
	"agency-quote/core/types"
)

// TestWebsiteQuoteShowcase covers a plain showcase site: 5 pages, basic
// SEO, no maintenance.
func TestWebsiteQuoteShowcase(t *testing.T) {
	engine := NewEngine(nil)

	result := engine.WebsiteQuote(types.WebsiteQuoteConfig{
		SiteKind:  types.SiteShowcase,
		PageCount: 5,
		SeoTier:   types.SeoBasic,
	})

	wantOneTime := decimal.NewFromInt(5 * 225)
	if !result.TotalOneTime.Equal(wantOneTime) {
		t.Errorf("one-time = %s, want %s", result.TotalOneTime, wantOneTime)
	}
	if !result.TotalRecurringMonthly.IsZero() {
		t.Errorf("recurring = %s, want 0", result.TotalRecurringMonthly)
	}
	if !result.TotalPayableNow.Equal(wantOneTime) {
		t.Errorf("payable now = %s, want %s", result.TotalPayableNow, wantOneTime)
	}
	if !result.Valid {
		t.Error("expected valid quote")
	}
	if !result.InstallmentEligible {
		t.Error("1125 is below the installment limit, expected eligible")
	}
	if len(result.LineItems) != 1 {
		t.Fatalf("line items = %d, want 1", len(result.LineItems))
	}
}

// TestWebsiteQuoteFullEcommerce covers an e-commerce build with every
// add-on: 12 pages, advanced SEO, 80 products, yearly maintenance.
func TestWebsiteQuoteFullEcommerce(t *testing.T) {
	engine := NewEngine(nil)

	result := engine.WebsiteQuote(types.WebsiteQuoteConfig{
		SiteKind:           types.SiteEcommerce,
		PageCount:          12,
		SeoTier:            types.SeoAdvanced,
		ProductVolumeBand:  1, // 50-99 products
		MaintenanceEnabled: true,
		BillingCycle:       types.BillingYearly,
	})

	creation := decimal.NewFromInt(5*225 + 5*199 + 2*179)
	setup := decimal.NewFromInt(199)
	band := decimal.NewFromInt(230)
	seo := decimal.NewFromInt(12 * 79)
	wantOneTime := creation.Add(setup).Add(band).Add(seo)
	if !result.TotalOneTime.Equal(wantOneTime) {
		t.Errorf("one-time = %s, want %s", result.TotalOneTime, wantOneTime)
	}

	wantMonthly := decimal.NewFromInt(72).Mul(decimal.NewFromFloat(0.9))
	if !result.TotalRecurringMonthly.Equal(wantMonthly) {
		t.Errorf("recurring monthly = %s, want %s", result.TotalRecurringMonthly, wantMonthly)
	}

	wantPayable := wantOneTime.Add(wantMonthly.Mul(decimal.NewFromInt(12)))
	if !result.TotalPayableNow.Equal(wantPayable) {
		t.Errorf("payable now = %s, want %s", result.TotalPayableNow, wantPayable)
	}

	// Every line item sums to the total with zero rounding drift.
	if !result.Sum().Equal(result.TotalPayableNow) {
		t.Errorf("line item sum %s != payable now %s", result.Sum(), result.TotalPayableNow)
	}

	if result.InstallmentEligible {
		t.Errorf("%s exceeds the installment limit, expected not eligible", result.TotalPayableNow)
	}
	if result.ManualQuoteRequired {
		t.Error("band 1 has a numeric price, manual quote not expected")
	}
	if len(result.LineItems) != 5 {
		t.Fatalf("line items = %d, want 5", len(result.LineItems))
	}
}

// TestWebsiteQuoteManualBand verifies the manual-quote band contributes
// nothing numerically and flags the result instead.
func TestWebsiteQuoteManualBand(t *testing.T) {
	engine := NewEngine(nil)

	result := engine.WebsiteQuote(types.WebsiteQuoteConfig{
		SiteKind:          types.SiteEcommerce,
		PageCount:         5,
		SeoTier:           types.SeoBasic,
		ProductVolumeBand: 4, // 500+ products
	})

	if !result.ManualQuoteRequired {
		t.Fatal("expected manual quote flag")
	}

	// Total is creation + setup only; the manual band adds no line item.
	want := decimal.NewFromInt(5*225 + 199)
	if !result.TotalPayableNow.Equal(want) {
		t.Errorf("payable now = %s, want %s", result.TotalPayableNow, want)
	}
	for _, li := range result.LineItems {
		if li.Amount.IsZero() {
			t.Errorf("zero-amount line item leaked: %q", li.Label)
		}
	}
}

// TestWebsiteQuoteClampsPageCount verifies out-of-domain page counts are
// clamped into the domain rather than priced as given.
func TestWebsiteQuoteClampsPageCount(t *testing.T) {
	engine := NewEngine(nil)

	low := engine.WebsiteQuote(types.WebsiteQuoteConfig{SiteKind: types.SiteShowcase, PageCount: -7})
	if !low.TotalOneTime.Equal(decimal.NewFromInt(225)) {
		t.Errorf("clamped low = %s, want 225", low.TotalOneTime)
	}

	high := engine.WebsiteQuote(types.WebsiteQuoteConfig{SiteKind: types.SiteShowcase, PageCount: 500})
	capped := engine.WebsiteQuote(types.WebsiteQuoteConfig{SiteKind: types.SiteShowcase, PageCount: 50})
	if !high.TotalOneTime.Equal(capped.TotalOneTime) {
		t.Errorf("clamped high = %s, want %s", high.TotalOneTime, capped.TotalOneTime)
	}
}

// TestMarketingQuoteSocialOnly covers a social-only plan with one premium
// channel: gmb and blog are off and must not appear anywhere.
func TestMarketingQuoteSocialOnly(t *testing.T) {
	engine := NewEngine(nil)

	result := engine.MarketingQuote(types.MarketingQuoteConfig{
		SocialPostsPerMonth: 4,
		SocialChannels:      []types.Channel{types.ChannelFacebook, types.ChannelLinkedIn},
	})

	want := decimal.NewFromFloat(12.25).Mul(decimal.NewFromInt(4)).Add(decimal.NewFromInt(29))
	if !result.TotalPayableNow.Equal(want) {
		t.Errorf("payable now = %s, want %s", result.TotalPayableNow, want)
	}
	if len(result.LineItems) != 2 {
		t.Fatalf("line items = %d, want 2 (social base + linkedin)", len(result.LineItems))
	}
	if !result.Valid {
		t.Errorf("expected valid, violations: %v", result.Violations)
	}
	if len(result.Violations) != 0 {
		t.Errorf("modules at 0 must not be flagged, got %v", result.Violations)
	}
}

func TestMarketingQuoteMinimums(t *testing.T) {
	engine := NewEngine(nil)

	tests := []struct {
		name           string
		cfg            types.MarketingQuoteConfig
		wantValid      bool
		wantViolations []string
	}{
		{
			name:           "gmb below minimum",
			cfg:            types.MarketingQuoteConfig{GmbPostsPerMonth: 3},
			wantValid:      false,
			wantViolations: []string{ViolationGmbMinimum},
		},
		{
			name:      "gmb at minimum",
			cfg:       types.MarketingQuoteConfig{GmbPostsPerMonth: 4},
			wantValid: true,
		},
		{
			name:      "gmb off is not a violation",
			cfg:       types.MarketingQuoteConfig{GmbPostsPerMonth: 0, BlogArticlesPerMonth: 2},
			wantValid: true,
		},
		{
			name: "multiple violations in module order",
			cfg: types.MarketingQuoteConfig{
				GmbPostsPerMonth:     1,
				SocialPostsPerMonth:  2,
				BlogArticlesPerMonth: 1,
			},
			wantValid:      false,
			wantViolations: []string{ViolationGmbMinimum, ViolationSocialMinimum, ViolationBlogMinimum},
		},
		{
			name:      "all modules off is not purchasable",
			cfg:       types.MarketingQuoteConfig{},
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.MarketingQuote(tt.cfg)
			if result.Valid != tt.wantValid {
				t.Errorf("valid = %v, want %v", result.Valid, tt.wantValid)
			}
			if !reflect.DeepEqual(result.Violations, tt.wantViolations) {
				t.Errorf("violations = %v, want %v", result.Violations, tt.wantViolations)
			}
		})
	}
}

// TestMarketingQuotePremiumChannelsNeedSocial verifies premium channels are
// billed only while the social module is on.
func TestMarketingQuotePremiumChannelsNeedSocial(t *testing.T) {
	engine := NewEngine(nil)

	result := engine.MarketingQuote(types.MarketingQuoteConfig{
		GmbPostsPerMonth: 4,
		SocialChannels:   []types.Channel{types.ChannelLinkedIn, types.ChannelPinterest},
	})

	want := decimal.NewFromFloat(7.25).Mul(decimal.NewFromInt(4))
	if !result.TotalPayableNow.Equal(want) {
		t.Errorf("payable now = %s, want %s (channels must not bill with social off)", result.TotalPayableNow, want)
	}
}

// TestQuoteIdempotence verifies recomputing an unchanged config yields an
// identical result.
func TestQuoteIdempotence(t *testing.T) {
	engine := NewEngine(nil)

	webCfg := types.WebsiteQuoteConfig{
		SiteKind:           types.SiteEcommerce,
		PageCount:          17,
		SeoTier:            types.SeoAdvanced,
		ProductVolumeBand:  2,
		MaintenanceEnabled: true,
		BillingCycle:       types.BillingYearly,
	}
	if !reflect.DeepEqual(engine.WebsiteQuote(webCfg), engine.WebsiteQuote(webCfg)) {
		t.Error("website quote is not idempotent")
	}

	mktCfg := types.MarketingQuoteConfig{
		GmbPostsPerMonth:     8,
		SocialPostsPerMonth:  8,
		BlogArticlesPerMonth: 7,
		SocialChannels:       []types.Channel{types.ChannelLinkedIn, types.ChannelPinterest},
	}
	if !reflect.DeepEqual(engine.MarketingQuote(mktCfg), engine.MarketingQuote(mktCfg)) {
		t.Error("marketing quote is not idempotent")
	}
}

func TestInstallmentEligibleBoundary(t *testing.T) {
	rc := pricing.Default()

	tests := []struct {
		name  string
		total decimal.Decimal
		want  bool
	}{
		{name: "exactly at limit", total: decimal.NewFromFloat(2000.00), want: true},
		{name: "one cent over", total: decimal.NewFromFloat(2000.01), want: false},
		{name: "below limit", total: decimal.NewFromInt(1), want: true},
		{name: "zero total", total: decimal.Zero, want: false},
		{name: "negative total", total: decimal.NewFromInt(-5), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InstallmentEligible(rc, tt.total); got != tt.want {
				t.Errorf("InstallmentEligible(%s) = %v, want %v", tt.total, got, tt.want)
			}
		})
	}
}

// TestPackQuotes pins the preset pack prices to the published plan rates
func TestPackQuotes(t *testing.T) {
	engine := NewEngine(nil)

	tests := []struct {
		id   string
		want string
	}{
		{id: "starter", want: "53.50"},
		{id: "essential", want: "131.50"},
		{id: "performance", want: "299.75"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			pack, ok := FindPack(tt.id)
			if !ok {
				t.Fatalf("pack %s not found", tt.id)
			}
			result := engine.MarketingQuote(pack.Config)
			if !result.Valid {
				t.Errorf("pack %s invalid: %v", tt.id, result.Violations)
			}
			if got := result.RoundedTotal().StringFixed(2); got != tt.want {
				t.Errorf("pack %s total = %s, want %s", tt.id, got, tt.want)
			}
		})
	}
}

// TestInstallmentsSplit verifies the 4x split carries remainder cents on
// the first installment and sums back to the rounded total.
func TestInstallmentsSplit(t *testing.T) {
	result := &types.QuoteResult{
		Currency:        types.CurrencyEUR,
		TotalPayableNow: decimal.NewFromFloat(1125.50),
	}

	parts := result.Installments(4)
	if len(parts) != 4 {
		t.Fatalf("got %d parts, want 4", len(parts))
	}

	sum := decimal.Zero
	for _, p := range parts {
		sum = sum.Add(p)
	}
	if !sum.Equal(result.RoundedTotal()) {
		t.Errorf("parts sum to %s, want %s", sum, result.RoundedTotal())
	}
	if parts[0].LessThan(parts[1]) {
		t.Errorf("remainder must land on the first installment: %s < %s", parts[0], parts[1])
	}
}
