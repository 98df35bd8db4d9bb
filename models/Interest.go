package models

import "time"

// Interest is a buyer inquiry attached to a property. Rows are append-only:
// every submission inserts a new row, nothing in the API deletes or edits one.
type Interest struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	PropertyID uint      `json:"propertyID" gorm:"index;not null"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Message    string    `json:"message" gorm:"type:text"`
	CreatedAt  time.Time `json:"createdAt"`
}
