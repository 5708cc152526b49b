package hcl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"agency-quote/core/types"
	"agency-quote/internal/errors"
)

func writeCard(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rates.hcl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write rate card: %v", err)
	}
	return path
}

func TestLoadAppliesOverridesOverDefaults(t *testing.T) {
	path := writeCard(t, `
marketing {
  premium_channel_fee = 49
  social_min          = 6
}

billing {
  currency = "usd"
}
`)

	card, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !card.PremiumChannelFee.Equal(decimal.NewFromInt(49)) {
		t.Errorf("premium channel fee = %s, want 49", card.PremiumChannelFee)
	}
	if card.SocialMin != 6 {
		t.Errorf("social min = %d, want 6", card.SocialMin)
	}
	if card.Currency != types.CurrencyUSD {
		t.Errorf("currency = %s, want USD", card.Currency)
	}

	// Everything the file does not declare keeps its default.
	if !card.GmbPostRate.Equal(decimal.RequireFromString("7.25")) {
		t.Errorf("gmb rate = %s, want default 7.25", card.GmbPostRate)
	}
	if card.GmbMin != 4 {
		t.Errorf("gmb min = %d, want default 4", card.GmbMin)
	}
	if len(card.PageTiers) != 3 {
		t.Errorf("page tiers = %d, want default 3", len(card.PageTiers))
	}
}

func TestLoadReplacesPageTiers(t *testing.T) {
	path := writeCard(t, `
website {
  page_tier {
    up_to = 3
    rate  = 250
  }
  page_tier {
    rate = 200
  }

  ecommerce_setup = 249
}
`)

	card, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(card.PageTiers) != 2 {
		t.Fatalf("page tiers = %d, want 2", len(card.PageTiers))
	}
	if card.PageTiers[0].UpTo != 3 || !card.PageTiers[0].Rate.Equal(decimal.NewFromInt(250)) {
		t.Errorf("first tier = %+v", card.PageTiers[0])
	}
	if card.PageTiers[1].UpTo != 0 {
		t.Errorf("tail tier up_to = %d, want 0 (unbounded)", card.PageTiers[1].UpTo)
	}
	if !card.EcommerceSetup.Equal(decimal.NewFromInt(249)) {
		t.Errorf("ecommerce setup = %s, want 249", card.EcommerceSetup)
	}
}

func TestLoadReplacesProductBands(t *testing.T) {
	path := writeCard(t, `
website {
  product_band {
    label     = "0 - 100"
    up_to     = 100
    surcharge = 0
  }
  product_band {
    label  = "100+"
    manual = true
  }
}
`)

	card, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(card.ProductBands) != 2 {
		t.Fatalf("product bands = %d, want 2", len(card.ProductBands))
	}
	if !card.ProductBands[1].Manual {
		t.Error("last band should be manual")
	}
	if !card.ProductBands[1].Surcharge.IsZero() {
		t.Errorf("manual band surcharge = %s, want 0", card.ProductBands[1].Surcharge)
	}
}

func TestLoadRejectsInvalidCards(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "discount out of range",
			content: `
billing {
  yearly_discount = 1.5
}
`,
		},
		{
			name: "non-positive installment limit",
			content: `
billing {
  installment_limit = 0
}
`,
		},
		{
			name: "unbounded tier not last",
			content: `
website {
  page_tier {
    rate = 225
  }
  page_tier {
    up_to = 10
    rate  = 199
  }
}
`,
		},
		{
			name: "tier limits not increasing",
			content: `
website {
  page_tier {
    up_to = 10
    rate  = 225
  }
  page_tier {
    up_to = 5
    rate  = 199
  }
  page_tier {
    rate = 179
  }
}
`,
		},
		{
			name: "negative tier rate",
			content: `
website {
  page_tier {
    rate = -1
  }
}
`,
		},
		{
			name:    "not hcl at all",
			content: `{{{`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCard(t, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.IsType(err, errors.TypeRateCard) {
				t.Errorf("error type = %v, want rate card error", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	if err == nil {
		t.Fatal("expected error")
	}
}
