package booking

import (
	"errors"

	"gorm.io/gorm"

	"github.com/turfbook/turfbook/internal/pricing"
)

// Filters narrows the admin booking listing.
type Filters struct {
	UserID   uint
	GroundID uint
	Status   string
	DateFrom string // "YYYY-MM-DD", inclusive
	DateTo   string // "YYYY-MM-DD", inclusive
}

// SportCount is the number of bookings made for grounds of one sport.
type SportCount struct {
	SportName string `json:"sport_name"`
	Count     int64  `json:"count"`
}

// WeekdayCount is the number of bookings per day of week, 0 = Sunday.
type WeekdayCount struct {
	Weekday int   `json:"weekday"`
	Count   int64 `json:"count"`
}

type BookingRepository interface {
	Create(b *Booking) error
	GetByID(id uint) (*Booking, error)
	GetUserBookings(userID uint, page, pageSize int) ([]Booking, int64, error)
	GetAll(page, pageSize int, filters Filters) ([]Booking, int64, error)
	Update(b *Booking) error

	// BookedRanges returns the time ranges already held by pending or
	// confirmed bookings for the ground on the given date.
	BookedRanges(groundID uint, date string) ([]pricing.TimeRange, error)

	CountBySport() ([]SportCount, error)
	CountByWeekday() ([]WeekdayCount, error)
	Revenue(dateFrom, dateTo string) (float64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(b *Booking) error {
	return r.db.Create(b).Error
}

func (r *bookingRepository) GetByID(id uint) (*Booking, error) {
	var b Booking
	if err := r.db.Preload("Ground").Preload("Ground.Sport").First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) GetUserBookings(userID uint, page, pageSize int) ([]Booking, int64, error) {
	var bookings []Booking
	var total int64

	query := r.db.Model(&Booking{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Ground").Preload("Ground.Sport").
		Order("booking_date DESC, start_time DESC").
		Offset(offset).Limit(pageSize).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *bookingRepository) GetAll(page, pageSize int, filters Filters) ([]Booking, int64, error) {
	var bookings []Booking
	var total int64

	query := r.db.Model(&Booking{})
	if filters.UserID != 0 {
		query = query.Where("user_id = ?", filters.UserID)
	}
	if filters.GroundID != 0 {
		query = query.Where("ground_id = ?", filters.GroundID)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.DateFrom != "" {
		query = query.Where("booking_date >= ?", filters.DateFrom)
	}
	if filters.DateTo != "" {
		query = query.Where("booking_date <= ?", filters.DateTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Ground").Preload("Ground.Sport").
		Order("created_at DESC").
		Offset(offset).Limit(pageSize).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *bookingRepository) Update(b *Booking) error {
	return r.db.Save(b).Error
}

func (r *bookingRepository) BookedRanges(groundID uint, date string) ([]pricing.TimeRange, error) {
	var ranges []pricing.TimeRange
	err := r.db.Model(&Booking{}).
		Select(`start_time AS "start", end_time AS "end"`).
		Where("ground_id = ? AND booking_date = ? AND status IN ?", groundID, date, []string{StatusPending, StatusConfirmed}).
		Scan(&ranges).Error
	if err != nil {
		return nil, err
	}
	return ranges, nil
}

func (r *bookingRepository) CountBySport() ([]SportCount, error) {
	var counts []SportCount
	err := r.db.Model(&Booking{}).
		Select("sports.name AS sport_name, COUNT(bookings.id) AS count").
		Joins("JOIN grounds ON grounds.id = bookings.ground_id").
		Joins("JOIN sports ON sports.id = grounds.sport_id").
		Where("bookings.status <> ?", StatusCancelled).
		Group("sports.name").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *bookingRepository) CountByWeekday() ([]WeekdayCount, error) {
	var counts []WeekdayCount
	err := r.db.Model(&Booking{}).
		Select("EXTRACT(DOW FROM booking_date::date)::int AS weekday, COUNT(id) AS count").
		Where("status <> ?", StatusCancelled).
		Group("weekday").
		Order("weekday ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *bookingRepository) Revenue(dateFrom, dateTo string) (float64, error) {
	var revenue float64
	query := r.db.Model(&Booking{}).
		Where("payment_status = ? AND status <> ?", PaymentPaid, StatusCancelled)
	if dateFrom != "" {
		query = query.Where("booking_date >= ?", dateFrom)
	}
	if dateTo != "" {
		query = query.Where("booking_date <= ?", dateTo)
	}
	err := query.Select("COALESCE(SUM(total_amount), 0)").Scan(&revenue).Error
	if err != nil {
		return 0, err
	}
	return revenue, nil
}
