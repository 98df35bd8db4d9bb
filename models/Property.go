package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seller is the contact identity of the person who submitted the listing.
// It is written once at creation and never touched by update endpoints.
type Seller struct {
	Name    string `json:"name" gorm:"column:seller_name"`
	Phone   string `json:"phone" gorm:"column:seller_phone"`
	Email   string `json:"email" gorm:"column:seller_email"`
	Details string `json:"details" gorm:"column:seller_details;type:text"`
}

type Property struct {
	gorm.Model
	Title        string         `json:"title"`
	Description  string         `json:"description" gorm:"type:text"`
	Location     string         `json:"location" gorm:"index"`
	LandSize     float64        `json:"landSize"`
	LandSizeUnit string         `json:"landSizeUnit" gorm:"type:varchar(20);default:'sqft'"` // sqft, sqm, acres, hectares
	AskingPrice  float64        `json:"askingPrice" gorm:"index"`
	Images       datatypes.JSON `json:"images" gorm:"type:jsonb"` // JSON array of URLs
	YoutubeVideo string         `json:"youtubeVideo"`
	Status       string         `json:"status" gorm:"type:varchar(20);default:'pending';index"` // pending, approved, rejected
	ReviewNotes  string         `json:"reviewNotes" gorm:"type:text"`
	Seller       Seller         `json:"seller" gorm:"embedded"`
	Interests    []Interest     `json:"buyerInterests" gorm:"foreignKey:PropertyID;references:ID"`
}

// Custom JSON marshaling so Images always renders as an array, never null
func (p *Property) MarshalJSON() ([]byte, error) {
	type Alias Property
	aux := &struct {
		Images    []string   `json:"images"`
		Interests []Interest `json:"buyerInterests"`
		*Alias
	}{
		Images:    []string{},
		Interests: []Interest{},
		Alias:     (*Alias)(p),
	}

	if p.Images != nil {
		var images []string
		if err := json.Unmarshal(p.Images, &images); err == nil {
			aux.Images = images
		}
	}

	if p.Interests != nil {
		aux.Interests = p.Interests
	}

	return json.Marshal(aux)
}
