package contact

import "gorm.io/gorm"

// ContactSubmission is a message sent through the public contact form.
type ContactSubmission struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Subject string `gorm:"not null" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
}
