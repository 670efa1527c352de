package promo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNormalizeCode(t *testing.T) {
	require.Equal(t, "SUMMER10", NormalizeCode("  summer10 "))
	require.Equal(t, "SUMMER10", NormalizeCode("Summer10"))
}

func TestValidOn(t *testing.T) {
	p := PromoCode{
		Code:            "SUMMER10",
		DiscountPercent: 10,
		ValidFrom:       day("2026-06-01"),
		ValidUntil:      day("2026-08-31"),
		IsActive:        true,
	}

	require.False(t, p.ValidOn(day("2026-05-31")))
	require.True(t, p.ValidOn(day("2026-06-01")), "window start is inclusive")
	require.True(t, p.ValidOn(day("2026-07-15")))
	require.True(t, p.ValidOn(day("2026-08-31")), "window end is inclusive")
	require.False(t, p.ValidOn(day("2026-09-01")))

	p.IsActive = false
	require.False(t, p.ValidOn(day("2026-07-15")), "deactivated codes never validate")
}
