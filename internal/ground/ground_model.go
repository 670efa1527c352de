package ground

import (
	"gorm.io/gorm"

	"github.com/turfbook/turfbook/internal/models"
	"github.com/turfbook/turfbook/internal/sport"
)

// Ground is a bookable physical facility tied to one primary sport.
// Operating hours are stored as "HH:MM"; the bookable grid is one slot per
// whole hour between them.
type Ground struct {
	gorm.Model
	SportID      uint               `gorm:"index;not null" json:"sport_id"`
	Sport        sport.Sport        `json:"sport"`
	Name         string             `gorm:"not null" json:"name"`
	Address      string             `json:"address"`
	Capacity     int                `json:"capacity"`
	PricePerHour float64            `gorm:"not null" json:"price_per_hour"`
	OpeningTime  string             `gorm:"type:VARCHAR(5);not null;default:'08:00'" json:"opening_time"`
	ClosingTime  string             `gorm:"type:VARCHAR(5);not null;default:'22:00'" json:"closing_time"`
	Amenities    models.StringSlice `gorm:"type:jsonb" json:"amenities"`
	Images       models.StringSlice `gorm:"type:jsonb" json:"images"`
	IsActive     bool               `gorm:"default:true" json:"is_active"`
}
