package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ServiceType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string          `gorm:"size:100;not null;uniqueIndex:idx_service_types_business_name" json:"name"`
	Description string          `gorm:"size:500" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	BusinessID uint `gorm:"not null;uniqueIndex:idx_service_types_business_name" json:"businessId"`

	EmployeeID *uint     `gorm:"index" json:"employeeId"`
	Employee   *Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
