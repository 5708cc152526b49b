// Package quote - Slider snapping
package quote

// SnapQuantity resolves a proposed module quantity from a continuous
// control so that no value between 1 and min-1 is ever committed.
// Crossing into the forbidden window from 0 snaps up to the minimum;
// crossing down from at-or-above the minimum snaps to 0 (module off).
// This is an input-acceptance policy, not error recovery: the pricing
// functions never call it.
func SnapQuantity(current, proposed, min int) int {
	if proposed <= 0 {
		return 0
	}
	if proposed >= min {
		return proposed
	}
	if current == 0 {
		return min
	}
	return 0
}
