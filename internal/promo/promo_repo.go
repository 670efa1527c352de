package promo

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type PromoRepository interface {
	CreatePromoCode(p *PromoCode) error
	GetPromoCodeByID(id uint) (*PromoCode, error)
	FindByCode(code string) (*PromoCode, error)
	GetAllPromoCodes(page, pageSize int) ([]PromoCode, int64, error)
	UpdatePromoCode(p *PromoCode) error
	DeletePromoCode(id uint) error

	// ResolveActivePercent returns the discount percentage for a code that is
	// active and inside its validity window on the given day.
	ResolveActivePercent(code string, on time.Time) (float64, error)
}

type promoRepository struct {
	db *gorm.DB
}

func NewPromoRepository(db *gorm.DB) PromoRepository {
	return &promoRepository{db: db}
}

func (r *promoRepository) CreatePromoCode(p *PromoCode) error {
	p.Code = NormalizeCode(p.Code)
	return r.db.Create(p).Error
}

func (r *promoRepository) GetPromoCodeByID(id uint) (*PromoCode, error) {
	var p PromoCode
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *promoRepository) FindByCode(code string) (*PromoCode, error) {
	var p PromoCode
	if err := r.db.Where("code = ?", NormalizeCode(code)).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *promoRepository) GetAllPromoCodes(page, pageSize int) ([]PromoCode, int64, error) {
	var codes []PromoCode
	var total int64

	query := r.db.Model(&PromoCode{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&codes).Error; err != nil {
		return nil, 0, err
	}
	return codes, total, nil
}

func (r *promoRepository) UpdatePromoCode(p *PromoCode) error {
	p.Code = NormalizeCode(p.Code)
	return r.db.Save(p).Error
}

func (r *promoRepository) DeletePromoCode(id uint) error {
	return r.db.Unscoped().Delete(&PromoCode{}, id).Error
}

func (r *promoRepository) ResolveActivePercent(code string, on time.Time) (float64, error) {
	p, err := r.FindByCode(code)
	if err != nil {
		return 0, err
	}
	if p == nil || !p.ValidOn(on) {
		return 0, ErrInvalidPromoCode
	}
	return p.DiscountPercent, nil
}
