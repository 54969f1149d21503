package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID *uint  `gorm:"index" json:"userId"`
	Action string `gorm:"size:50;not null" json:"action"`

	Entity   string         `gorm:"size:50" json:"entity"`
	EntityID *uint          `json:"entityId"`
	Metadata datatypes.JSON `json:"metadata"`

	CreatedAt time.Time `json:"createdAt"`
}

// All lists every persisted model in migration order.
func All() []any {
	return []any{
		&User{},
		&Business{},
		&Employee{},
		&ServiceType{},
		&Appointment{},
		&Image{},
		&AuditLog{},
	}
}
