package membership

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrPlanNotFound       = errors.New("membership plan not found")
	ErrMembershipActive   = errors.New("user already has an active membership")
	ErrNoActiveMembership = errors.New("no active membership")
)

// MembershipPlan is a purchasable subscription granting a recurring
// percentage discount while active.
type MembershipPlan struct {
	gorm.Model
	Name            string  `gorm:"unique;not null" json:"name"`
	Price           float64 `gorm:"not null" json:"price"`
	DurationMonths  int     `gorm:"not null" json:"duration_months"`
	DiscountPercent float64 `gorm:"not null" json:"discount_percent"`
}

// UserMembership links a user to a plan. Active means today falls within
// [StartDate, EndDate].
type UserMembership struct {
	gorm.Model
	UserID    uint           `gorm:"index;not null" json:"user_id"`
	PlanID    uint           `gorm:"index;not null" json:"plan_id"`
	Plan      MembershipPlan `json:"plan"`
	StartDate time.Time      `gorm:"not null" json:"start_date"`
	EndDate   time.Time      `gorm:"not null" json:"end_date"`
}

// ActiveOn reports whether the membership covers the given day.
func (m *UserMembership) ActiveOn(t time.Time) bool {
	day := t.Truncate(24 * time.Hour)
	return !day.Before(m.StartDate.Truncate(24*time.Hour)) && !day.After(m.EndDate.Truncate(24*time.Hour))
}
