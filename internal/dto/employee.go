package dto

import "github.com/BruksfildServices01/booksmart-api/internal/models"

type EmployeeRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	Position   string `json:"position" binding:"required,max=50"`
	BusinessID *uint  `json:"businessId" binding:"required"`
	UserID     *uint  `json:"userId"`
}

type EmployeeResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	BusinessID uint   `json:"businessId"`
	UserID     *uint  `json:"userId"`
}

func FromEmployee(e *models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Position:   e.Position,
		BusinessID: e.BusinessID,
		UserID:     e.UserID,
	}
}

func FromEmployees(es []models.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(es))
	for i := range es {
		out = append(out, FromEmployee(&es[i]))
	}
	return out
}
