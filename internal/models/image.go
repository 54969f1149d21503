package models

import "time"

type Image struct {
	ID uint `gorm:"primaryKey" json:"id"`

	URL      string `gorm:"size:500;not null" json:"url"`
	PublicID string `gorm:"size:255;not null" json:"publicId"`

	BusinessID *uint `gorm:"index" json:"businessId,omitempty"`
	UserID     *uint `gorm:"index" json:"userId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
