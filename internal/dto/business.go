package dto

import (
	"github.com/BruksfildServices01/booksmart-api/internal/models"
)

type BusinessRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Address      string `json:"address" binding:"required,max=200"`
	Description  string `json:"description" binding:"required,max=500"`
	WorkingHours string `json:"workingHours" binding:"required"`
	City         string `json:"city" binding:"max=100"`
	ContactPhone string `json:"contactPhone" binding:"max=15"`
	OwnerID      *uint  `json:"ownerId" binding:"required"`
}

type BusinessResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Description  string `json:"description"`
	WorkingHours string `json:"workingHours"`
	City         string `json:"city"`
	ContactPhone string `json:"contactPhone"`
	OwnerID      uint   `json:"ownerId"`
	ImageURL     string `json:"imageUrl,omitempty"`

	EmployeeIDs    []uint `json:"employeeIds"`
	ServiceTypeIDs []uint `json:"serviceTypeIds"`
}

func FromBusiness(b *models.Business) BusinessResponse {
	out := BusinessResponse{
		ID:           b.ID,
		Name:         b.Name,
		Address:      b.Address,
		Description:  b.Description,
		WorkingHours: b.WorkingHours,
		City:         b.City,
		ContactPhone: b.ContactPhone,
		OwnerID:      b.OwnerID,

		EmployeeIDs:    make([]uint, 0, len(b.Employees)),
		ServiceTypeIDs: make([]uint, 0, len(b.ServiceTypes)),
	}
	for _, e := range b.Employees {
		out.EmployeeIDs = append(out.EmployeeIDs, e.ID)
	}
	for _, st := range b.ServiceTypes {
		out.ServiceTypeIDs = append(out.ServiceTypeIDs, st.ID)
	}
	if b.Image != nil {
		out.ImageURL = b.Image.URL
	}
	return out
}

func FromBusinesses(bs []models.Business) []BusinessResponse {
	out := make([]BusinessResponse, 0, len(bs))
	for i := range bs {
		out = append(out, FromBusiness(&bs[i]))
	}
	return out
}

// ApplyBusiness copies request fields onto b. The owner is only set when
// b is new.
func ApplyBusiness(b *models.Business, req BusinessRequest) {
	b.Name = req.Name
	b.Address = req.Address
	b.Description = req.Description
	b.WorkingHours = req.WorkingHours
	b.City = req.City
	b.ContactPhone = req.ContactPhone
	if b.ID == 0 && req.OwnerID != nil {
		b.OwnerID = *req.OwnerID
	}
}
