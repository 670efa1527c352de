package feedback

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrNotBookingOwner    = errors.New("feedback can only be left on your own bookings")
	ErrBookingNotFinished = errors.New("feedback can only be left on completed bookings")
	ErrAlreadyRated       = errors.New("booking has already been rated")
)

// BookingFeedback is a 1-5 rating a user leaves on a completed booking.
// Having at least one row is what unlocks the feedback discount.
type BookingFeedback struct {
	gorm.Model
	BookingID    uint      `gorm:"uniqueIndex;not null" json:"booking_id"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	Rating       int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	FeedbackDate time.Time `gorm:"not null" json:"feedback_date"`
}
