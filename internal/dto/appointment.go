package dto

import (
	"time"

	"github.com/BruksfildServices01/booksmart-api/internal/models"
)

type CreateAppointmentRequest struct {
	UserID          *uint      `json:"userId" binding:"required"`
	ServiceID       *uint      `json:"serviceId" binding:"required"`
	EmployeeID      *uint      `json:"employeeId" binding:"required"`
	AppointmentTime *time.Time `json:"appointmentTime" binding:"omitempty,future"`
}

// UpdateAppointmentRequest is a partial update. Nil fields are left alone.
// Version, when sent, must match the stored version.
type UpdateAppointmentRequest struct {
	UserID          *uint      `json:"userId"`
	ServiceID       *uint      `json:"serviceId"`
	EmployeeID      *uint      `json:"employeeId"`
	AppointmentTime *time.Time `json:"appointmentTime" binding:"omitempty,future"`
	Version         *int       `json:"version"`
}

type AppointmentResponse struct {
	ID              uint       `json:"id"`
	UserID          uint       `json:"userId"`
	ServiceID       uint       `json:"serviceId"`
	EmployeeID      uint       `json:"employeeId"`
	AppointmentTime time.Time  `json:"appointmentTime"`
	ServiceName     string     `json:"serviceName"`
	Version         int        `json:"version"`
	Status          string     `json:"status"`
	CanceledAt      *time.Time `json:"canceledAt"`
}

func FromAppointment(ap *models.Appointment) AppointmentResponse {
	out := AppointmentResponse{
		ID:              ap.ID,
		UserID:          ap.UserID,
		ServiceID:       ap.ServiceTypeID,
		EmployeeID:      ap.EmployeeID,
		AppointmentTime: ap.AppointmentTime,
		Version:         ap.Version,
		Status:          ap.Status,
		CanceledAt:      ap.CanceledAt,
	}
	if ap.ServiceType != nil {
		out.ServiceName = ap.ServiceType.Name
	}
	return out
}

func FromAppointments(aps []models.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(aps))
	for i := range aps {
		out = append(out, FromAppointment(&aps[i]))
	}
	return out
}
