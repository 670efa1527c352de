package promo

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ErrInvalidPromoCode covers unknown, inactive and out-of-window codes alike,
// so the API cannot be used to probe which codes exist.
var ErrInvalidPromoCode = errors.New("promo code is invalid or expired")

// PromoCode is a time-bounded percentage discount. Codes are stored upper-case
// and matched case-insensitively.
type PromoCode struct {
	gorm.Model
	Code            string    `gorm:"uniqueIndex;not null" json:"code"`
	DiscountPercent float64   `gorm:"not null" json:"discount_percent"`
	ValidFrom       time.Time `gorm:"not null" json:"valid_from"`
	ValidUntil      time.Time `gorm:"not null" json:"valid_until"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
}

// ValidOn reports whether the code can be redeemed on the given day.
func (p *PromoCode) ValidOn(t time.Time) bool {
	if !p.IsActive {
		return false
	}
	day := t.Truncate(24 * time.Hour)
	from := p.ValidFrom.Truncate(24 * time.Hour)
	until := p.ValidUntil.Truncate(24 * time.Hour)
	return !day.Before(from) && !day.After(until)
}

// NormalizeCode is the canonical storage and lookup form of a code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
