package models

import "time"

type Business struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Address      string `gorm:"size:200;not null" json:"address"`
	Description  string `gorm:"size:500;not null" json:"description"`
	WorkingHours string `gorm:"size:255;not null" json:"workingHours"`
	City         string `gorm:"size:100" json:"city"`
	ContactPhone string `gorm:"size:15" json:"contactPhone"`

	OwnerID uint  `gorm:"not null;index" json:"ownerId"`
	Owner   *User `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Employees    []Employee    `gorm:"foreignKey:BusinessID" json:"-"`
	ServiceTypes []ServiceType `gorm:"foreignKey:BusinessID" json:"-"`
	Image        *Image        `gorm:"foreignKey:BusinessID" json:"image,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
