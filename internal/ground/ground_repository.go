// ground/repository.go
package ground

import (
	"errors"

	"gorm.io/gorm"
)

// GroundRepository defines all database operations for ground management.
type GroundRepository interface {
	CreateGround(g *Ground) error
	GetGroundByID(id uint) (*Ground, error)
	GetAllGrounds(page, pageSize int, filters Filters) ([]Ground, int64, error)
	UpdateGround(g *Ground) error
	DeleteGround(id uint) error
}

// Filters narrows the ground listing.
type Filters struct {
	SportID  uint
	Search   string
	IsActive *bool
}

type groundRepository struct {
	db *gorm.DB
}

// NewGroundRepository creates a new ground repository.
func NewGroundRepository(db *gorm.DB) GroundRepository {
	return &groundRepository{db: db}
}

func (r *groundRepository) CreateGround(g *Ground) error {
	return r.db.Create(g).Error
}

func (r *groundRepository) GetGroundByID(id uint) (*Ground, error) {
	var g Ground
	if err := r.db.Preload("Sport").First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *groundRepository) GetAllGrounds(page, pageSize int, filters Filters) ([]Ground, int64, error) {
	var grounds []Ground
	var total int64

	query := r.db.Model(&Ground{})

	if filters.SportID != 0 {
		query = query.Where("sport_id = ?", filters.SportID)
	}
	if filters.Search != "" {
		query = query.Where("name ILIKE ? OR address ILIKE ?", "%"+filters.Search+"%", "%"+filters.Search+"%")
	}
	if filters.IsActive != nil {
		query = query.Where("is_active = ?", *filters.IsActive)
	} else {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Preload("Sport").Order("name ASC").Offset(offset).Limit(pageSize).Find(&grounds).Error; err != nil {
		return nil, 0, err
	}
	return grounds, total, nil
}

func (r *groundRepository) UpdateGround(g *Ground) error {
	return r.db.Save(g).Error
}

func (r *groundRepository) DeleteGround(id uint) error {
	return r.db.Delete(&Ground{}, id).Error
}
