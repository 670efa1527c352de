// Package pricing holds the pure booking math: hourly slot generation,
// availability and adjacency checks, and discount stacking. It performs no I/O
// so every rule is unit-testable without a database.
package pricing

// ApplyDiscounts reduces subtotal by the three discount percentages in the
// fixed order promo -> membership -> feedback.
//
// The promo percentage is applied against the original subtotal, while
// membership and feedback are applied against the already-discounted running
// total. The asymmetry is intentional and must not be "fixed": stored bookings
// were priced this way.
func ApplyDiscounts(subtotal, promoPercent, membershipPercent, feedbackPercent float64) float64 {
	if subtotal <= 0 {
		return 0
	}

	promoPercent = clampPercent(promoPercent)
	membershipPercent = clampPercent(membershipPercent)
	feedbackPercent = clampPercent(feedbackPercent)

	running := subtotal
	running -= subtotal * promoPercent / 100
	running -= running * membershipPercent / 100
	running -= running * feedbackPercent / 100

	if running < 0 {
		running = 0
	}
	return running
}

// Subtotal is the undiscounted price: every slot costs the same hourly rate.
func Subtotal(hourlyRate float64, slotCount int) float64 {
	if hourlyRate < 0 || slotCount < 0 {
		return 0
	}
	return hourlyRate * float64(slotCount)
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
