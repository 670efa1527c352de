package booking

import (
	"errors"

	"gorm.io/gorm"

	"github.com/turfbook/turfbook/internal/ground"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"

	PaymentPending = "pending"
	PaymentPaid    = "paid"

	PaymentMethodCard = "card"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrTermsNotAccepted  = errors.New("terms and conditions must be accepted")
	ErrGroundNotFound    = errors.New("ground not found")
	ErrGroundInactive    = errors.New("ground is not open for booking")
	ErrInvalidDate       = errors.New("booking date must be YYYY-MM-DD")
	ErrSlotUnavailable   = errors.New("one or more selected slots are no longer available")
	ErrNotBookingOwner   = errors.New("booking belongs to another user")
	ErrAlreadyPaid       = errors.New("booking is already paid")
	ErrUnknownStatus     = errors.New("unknown booking status")
	ErrInvalidTransition = errors.New("booking status transition not allowed")
)

// Booking reserves a contiguous [StartTime, EndTime) block on a ground for one
// date. Times are "HH:MM", the date is "YYYY-MM-DD".
type Booking struct {
	gorm.Model
	Reference         string        `gorm:"type:VARCHAR(36);uniqueIndex;not null" json:"reference"`
	UserID            uint          `gorm:"index;not null" json:"user_id"`
	GroundID          uint          `gorm:"not null;index:idx_bookings_ground_date,priority:1" json:"ground_id"`
	Ground            ground.Ground `json:"ground"`
	BookingDate       string        `gorm:"type:VARCHAR(10);not null;index:idx_bookings_ground_date,priority:2" json:"booking_date"`
	StartTime         string        `gorm:"type:VARCHAR(5);not null" json:"start_time"`
	EndTime           string        `gorm:"type:VARCHAR(5);not null" json:"end_time"`
	Status            string        `gorm:"type:VARCHAR(20);not null;default:'pending'" json:"status"`
	PaymentStatus     string        `gorm:"type:VARCHAR(20);not null;default:'pending'" json:"payment_status"`
	TotalAmount       float64       `gorm:"not null" json:"total_amount"`
	PromoCode         *string       `json:"promo_code"`
	MembershipApplied bool          `gorm:"default:false" json:"membership_applied"`
}

// allowedTransitions is the booking lifecycle. Cancelled and completed are
// terminal.
var allowedTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: {},
	StatusCompleted: {},
}

// ValidStatus reports whether s is one of the four booking statuses.
func ValidStatus(s string) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
