// sport/model.go
package sport

import (
	"gorm.io/gorm"
)

// Sport represents a bookable category of activity (cricket, futsal, ...).
type Sport struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
