package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint  `gorm:"not null;index" json:"userId"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ServiceTypeID uint         `gorm:"not null;index" json:"serviceId"`
	ServiceType   *ServiceType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	EmployeeID uint      `gorm:"not null;index" json:"employeeId"`
	Employee   *Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	AppointmentTime time.Time `gorm:"not null;index" json:"appointmentTime"`

	// Version is bumped on every write and compared at write time.
	Version int `gorm:"not null;default:0" json:"version"`

	Status     string     `gorm:"size:20;not null;default:'SCHEDULED'" json:"status"`
	CanceledAt *time.Time `json:"canceledAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
