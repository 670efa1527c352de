package contact

import (
	"errors"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(submission *ContactSubmission) error
	GetByID(id uint) (*ContactSubmission, error)
	GetAll(page, pageSize int) ([]ContactSubmission, int64, error)
	Delete(id uint) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(submission *ContactSubmission) error {
	return r.db.Create(submission).Error
}

func (r *contactRepository) GetByID(id uint) (*ContactSubmission, error) {
	var submission ContactSubmission
	if err := r.db.First(&submission, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &submission, nil
}

func (r *contactRepository) GetAll(page, pageSize int) ([]ContactSubmission, int64, error) {
	var submissions []ContactSubmission
	var total int64

	query := r.db.Model(&ContactSubmission{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&submissions).Error; err != nil {
		return nil, 0, err
	}
	return submissions, total, nil
}

func (r *contactRepository) Delete(id uint) error {
	return r.db.Delete(&ContactSubmission{}, id).Error
}
