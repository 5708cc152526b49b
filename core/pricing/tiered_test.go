package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

// TestGraduatedCostBandContinuity verifies each band's rate applies only to
// the pages falling inside it.
func TestGraduatedCostBandContinuity(t *testing.T) {
	tiers := Default().PageTiers

	tests := []struct {
		name  string
		pages int
		want  int64
	}{
		{name: "last page of first band", pages: 5, want: 5 * 225},
		{name: "first page of second band", pages: 6, want: 5*225 + 199},
		{name: "last page of second band", pages: 10, want: 5*225 + 5*199},
		{name: "first page of third band", pages: 11, want: 5*225 + 5*199 + 179},
		{name: "two pages into third band", pages: 12, want: 5*225 + 5*199 + 2*179},
		{name: "maximum pages", pages: 50, want: 5*225 + 5*199 + 40*179},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GraduatedCost(tt.pages, tiers)
			want := decimal.NewFromInt(tt.want)
			if !got.Equal(want) {
				t.Errorf("GraduatedCost(%d) = %s, want %s", tt.pages, got, want)
			}
		})
	}
}

// TestGraduatedCostMonotonic verifies the cost never decreases as pages grow
func TestGraduatedCostMonotonic(t *testing.T) {
	tiers := Default().PageTiers

	previous := decimal.Zero
	for pages := 1; pages <= 50; pages++ {
		cost := GraduatedCost(pages, tiers)
		if cost.LessThan(previous) {
			t.Fatalf("cost decreased at %d pages: %s < %s", pages, cost, previous)
		}
		previous = cost
	}
}

func TestGraduatedCostDegenerate(t *testing.T) {
	tiers := Default().PageTiers

	if got := GraduatedCost(0, tiers); !got.IsZero() {
		t.Errorf("zero quantity: got %s, want 0", got)
	}
	if got := GraduatedCost(-3, tiers); !got.IsZero() {
		t.Errorf("negative quantity: got %s, want 0", got)
	}
	if got := GraduatedCost(10, nil); !got.IsZero() {
		t.Errorf("no tiers: got %s, want 0", got)
	}
}

// TestGraduatedCostBoundedTailOnly verifies quantities past every bounded
// tier land in the unbounded one.
func TestGraduatedCostBoundedTailOnly(t *testing.T) {
	tiers := []Tier{
		{UpTo: 2, Rate: decimal.NewFromInt(10)},
		{UpTo: 0, Rate: decimal.NewFromInt(1)},
	}

	got := GraduatedCost(100, tiers)
	want := decimal.NewFromInt(2*10 + 98*1)
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}
}
