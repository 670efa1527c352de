package membership

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type MembershipRepository interface {
	CreatePlan(plan *MembershipPlan) error
	GetPlanByID(id uint) (*MembershipPlan, error)
	GetAllPlans() ([]MembershipPlan, error)
	UpdatePlan(plan *MembershipPlan) error
	DeletePlan(id uint) error

	CreateUserMembership(m *UserMembership) error
	GetActiveMembership(userID uint, on time.Time) (*UserMembership, error)
	GetAllUserMemberships(page, pageSize int) ([]UserMembership, int64, error)

	// ActiveDiscountPercent is the discount granted by the user's active
	// membership on the given day, 0 when none is active.
	ActiveDiscountPercent(userID uint, on time.Time) (float64, error)
}

type membershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) CreatePlan(plan *MembershipPlan) error {
	return r.db.Create(plan).Error
}

func (r *membershipRepository) GetPlanByID(id uint) (*MembershipPlan, error) {
	var plan MembershipPlan
	if err := r.db.First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *membershipRepository) GetAllPlans() ([]MembershipPlan, error) {
	var plans []MembershipPlan
	if err := r.db.Order("price ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *membershipRepository) UpdatePlan(plan *MembershipPlan) error {
	return r.db.Save(plan).Error
}

func (r *membershipRepository) DeletePlan(id uint) error {
	return r.db.Delete(&MembershipPlan{}, id).Error
}

func (r *membershipRepository) CreateUserMembership(m *UserMembership) error {
	return r.db.Create(m).Error
}

func (r *membershipRepository) GetActiveMembership(userID uint, on time.Time) (*UserMembership, error) {
	var m UserMembership
	day := on.Truncate(24 * time.Hour)
	err := r.db.Preload("Plan").
		Where("user_id = ? AND start_date <= ? AND end_date >= ?", userID, day, day).
		Order("end_date DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *membershipRepository) GetAllUserMemberships(page, pageSize int) ([]UserMembership, int64, error) {
	var memberships []UserMembership
	var total int64

	query := r.db.Model(&UserMembership{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Preload("Plan").Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&memberships).Error; err != nil {
		return nil, 0, err
	}
	return memberships, total, nil
}

func (r *membershipRepository) ActiveDiscountPercent(userID uint, on time.Time) (float64, error) {
	m, err := r.GetActiveMembership(userID, on)
	if err != nil {
		return 0, err
	}
	if m == nil {
		return 0, nil
	}
	return m.Plan.DiscountPercent, nil
}
