package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/turfbook/turfbook/internal/pricing"
)

func TestApplyDiscountsIdentity(t *testing.T) {
	require.Equal(t, 100.0, pricing.ApplyDiscounts(100, 0, 0, 0))
	require.Equal(t, 0.0, pricing.ApplyDiscounts(0, 10, 20, 5))
}

func TestApplyDiscountsPromoAgainstOriginalSubtotal(t *testing.T) {
	// Promo is taken off the original subtotal, membership off the running
	// total: 100 - 10 - (90 * 0.10) = 81, not 80.
	require.InDelta(t, 81.0, pricing.ApplyDiscounts(100, 10, 10, 0), 1e-9)
}

func TestApplyDiscountsFullStack(t *testing.T) {
	// 200 -> promo 25% (off 200) = 150 -> membership 10% = 135 -> feedback 5% = 128.25
	require.InDelta(t, 128.25, pricing.ApplyDiscounts(200, 25, 10, 5), 1e-9)
}

func TestApplyDiscountsNeverNegative(t *testing.T) {
	cases := []struct {
		name                      string
		subtotal, promo, mem, fbk float64
	}{
		{"all max", 500, 100, 100, 100},
		{"promo max", 80, 100, 0, 0},
		{"tiny subtotal", 0.01, 99, 99, 99},
		{"over-range percents clamped", 100, 150, -20, 300},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			total := pricing.ApplyDiscounts(tc.subtotal, tc.promo, tc.mem, tc.fbk)
			require.GreaterOrEqual(t, total, 0.0)
			require.LessOrEqual(t, total, tc.subtotal)
		})
	}
}

func TestApplyDiscountsRangeSweep(t *testing.T) {
	// 0 <= total <= subtotal must hold across the whole percentage grid.
	for promo := 0.0; promo <= 100; promo += 20 {
		for mem := 0.0; mem <= 100; mem += 20 {
			for fbk := 0.0; fbk <= 100; fbk += 20 {
				total := pricing.ApplyDiscounts(60, promo, mem, fbk)
				require.GreaterOrEqual(t, total, 0.0)
				require.LessOrEqual(t, total, 60.0)
			}
		}
	}
}

func TestSubtotal(t *testing.T) {
	require.Equal(t, 60.0, pricing.Subtotal(20, 3))
	require.Equal(t, 0.0, pricing.Subtotal(20, 0))
	require.Equal(t, 0.0, pricing.Subtotal(-5, 3))
}

func TestQuoteScenario(t *testing.T) {
	// Ground at 20/hr, three slots booked (10:00-13:00): subtotal 60.
	// SAVE10 (10%) brings it to 54; toggling a 20% membership on re-derives
	// from the subtotal: 54 - 54*0.20 = 43.2.
	subtotal := pricing.Subtotal(20, 3)
	require.Equal(t, 60.0, subtotal)

	withPromo := pricing.ApplyDiscounts(subtotal, 10, 0, 0)
	require.InDelta(t, 54.0, withPromo, 1e-9)

	withMembership := pricing.ApplyDiscounts(subtotal, 10, 20, 0)
	require.InDelta(t, 43.2, withMembership, 1e-9)
}
