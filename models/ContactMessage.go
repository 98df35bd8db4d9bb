package models

import "gorm.io/gorm"

// ContactMessage is a general inquiry from the public contact form,
// unrelated to any particular property.
type ContactMessage struct {
	gorm.Model
	Name    string `json:"name"`
	Email   string `json:"email" gorm:"index"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" gorm:"size:200"`
	Message string `json:"message" gorm:"type:text;not null"`
}
