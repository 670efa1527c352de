package feedback

import (
	"errors"

	"gorm.io/gorm"
)

// bookingRow is the slice of the bookings table feedback cares about.
type bookingRow struct {
	ID     uint
	UserID uint
	Status string
}

type FeedbackRepository interface {
	Create(f *BookingFeedback) error
	GetByBookingID(bookingID uint) (*BookingFeedback, error)
	GetAll(page, pageSize int) ([]BookingFeedback, int64, error)

	// HasFeedbackFromUser reports whether the user has ever left feedback.
	// This is what qualifies them for the feedback discount.
	HasFeedbackFromUser(userID uint) (bool, error)

	// GetBookingForFeedback loads the owner and status of a booking so the
	// controller can enforce ownership and completion.
	GetBookingForFeedback(bookingID uint) (ownerID uint, status string, err error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(f *BookingFeedback) error {
	return r.db.Create(f).Error
}

func (r *feedbackRepository) GetByBookingID(bookingID uint) (*BookingFeedback, error) {
	var f BookingFeedback
	if err := r.db.Where("booking_id = ?", bookingID).First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *feedbackRepository) GetAll(page, pageSize int) ([]BookingFeedback, int64, error) {
	var feedbacks []BookingFeedback
	var total int64

	query := r.db.Model(&BookingFeedback{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&feedbacks).Error; err != nil {
		return nil, 0, err
	}
	return feedbacks, total, nil
}

func (r *feedbackRepository) HasFeedbackFromUser(userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&BookingFeedback{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *feedbackRepository) GetBookingForFeedback(bookingID uint) (uint, string, error) {
	var row bookingRow
	err := r.db.Table("bookings").
		Select("id, user_id, status").
		Where("id = ? AND deleted_at IS NULL", bookingID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, "", ErrBookingNotFound
		}
		return 0, "", err
	}
	return row.UserID, row.Status, nil
}
