package models

import "time"

type Employee struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Position string `gorm:"size:50;not null" json:"position"`

	BusinessID uint `gorm:"not null;index" json:"businessId"`

	UserID *uint `gorm:"index" json:"userId"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
