package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"agency-quote/core/types"
)

func TestProductBandSurcharge(t *testing.T) {
	rc := Default()

	tests := []struct {
		name       string
		band       int
		want       int64
		wantManual bool
	}{
		{name: "included band", band: 0, want: 0},
		{name: "second band", band: 1, want: 230},
		{name: "third band", band: 2, want: 440},
		{name: "fourth band", band: 3, want: 870},
		{name: "manual band has no numeric price", band: 4, want: 0, wantManual: true},
		{name: "negative index clamps to first band", band: -1, want: 0},
		{name: "overflow index clamps to last band", band: 99, want: 0, wantManual: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, manual := rc.ProductBandSurcharge(tt.band)
			if !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("surcharge = %s, want %d", got, tt.want)
			}
			if manual != tt.wantManual {
				t.Errorf("manual = %v, want %v", manual, tt.wantManual)
			}
		})
	}
}

func TestSeoSurcharge(t *testing.T) {
	rc := Default()

	if got := rc.SeoSurcharge(types.SeoBasic, 12); !got.IsZero() {
		t.Errorf("basic tier: got %s, want 0", got)
	}

	got := rc.SeoSurcharge(types.SeoAdvanced, 12)
	want := decimal.NewFromInt(12 * 79)
	if !got.Equal(want) {
		t.Errorf("advanced tier: got %s, want %s", got, want)
	}

	if got := rc.SeoSurcharge(types.SeoAdvanced, 0); !got.IsZero() {
		t.Errorf("zero pages: got %s, want 0", got)
	}
}

func TestChannelSurcharge(t *testing.T) {
	rc := Default()

	// Included channels cost nothing; both premium channels share one fee.
	for _, ch := range []types.Channel{types.ChannelFacebook, types.ChannelInstagram} {
		if got := rc.ChannelSurcharge(ch); !got.IsZero() {
			t.Errorf("%s: got %s, want 0", ch, got)
		}
	}
	for _, ch := range []types.Channel{types.ChannelLinkedIn, types.ChannelPinterest} {
		if got := rc.ChannelSurcharge(ch); !got.Equal(rc.PremiumChannelFee) {
			t.Errorf("%s: got %s, want %s", ch, got, rc.PremiumChannelFee)
		}
	}
}
