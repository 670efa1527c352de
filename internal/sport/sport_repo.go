package sport

import (
	"errors"

	"gorm.io/gorm"
)

type SportRepository interface {
	CreateSport(sport *Sport) error
	GetSportByID(id uint) (*Sport, error)
	GetAllSports(page, pageSize int, searchTerm string) ([]Sport, int64, error)
	UpdateSport(sport *Sport) error
	DeleteSport(id uint) error
	FindSportByName(name string) (*Sport, error)
}

type sportRepository struct {
	db *gorm.DB
}

// NewSportRepository creates a new instance of SportRepository.
func NewSportRepository(db *gorm.DB) SportRepository {
	return &sportRepository{db: db}
}

func (r *sportRepository) CreateSport(sport *Sport) error {
	return r.db.Create(sport).Error
}

func (r *sportRepository) GetSportByID(id uint) (*Sport, error) {
	var sport Sport
	err := r.db.First(&sport, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Convention: return (nil, nil) if not found is not an "error" for the caller
		}
		return nil, err // Other database error
	}
	return &sport, nil
}

func (r *sportRepository) GetAllSports(page, pageSize int, searchTerm string) ([]Sport, int64, error) {
	var sports []Sport
	var total int64

	query := r.db.Model(&Sport{})

	if searchTerm != "" {
		query = query.Where("name ILIKE ? OR description ILIKE ?", "%"+searchTerm+"%", "%"+searchTerm+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("name ASC").Offset(offset).Limit(pageSize).Find(&sports).Error; err != nil {
		return nil, 0, err
	}
	return sports, total, nil
}

func (r *sportRepository) UpdateSport(sport *Sport) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: false}).Updates(sport).Error
}

func (r *sportRepository) DeleteSport(id uint) error {
	return r.db.Delete(&Sport{}, id).Error
}

func (r *sportRepository) FindSportByName(name string) (*Sport, error) {
	var sport Sport
	err := r.db.Where("name = ?", name).First(&sport).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sport, nil
}
