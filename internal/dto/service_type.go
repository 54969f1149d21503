package dto

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/booksmart-api/internal/models"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ServiceTypeRequest leaves presence checks to the catalog so create and
// update report them the same way.
type ServiceTypeRequest struct {
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	BusinessID  *uint            `json:"businessId"`
	EmployeeID  *uint            `json:"employeeId"`
}

type ServiceTypeResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	BusinessID  uint            `json:"businessId"`
	EmployeeID  *uint           `json:"employeeId"`
}

func FromServiceType(st *models.ServiceType) ServiceTypeResponse {
	return ServiceTypeResponse{
		ID:          st.ID,
		Name:        st.Name,
		Description: st.Description,
		Price:       st.Price,
		BusinessID:  st.BusinessID,
		EmployeeID:  st.EmployeeID,
	}
}

func FromServiceTypes(sts []models.ServiceType) []ServiceTypeResponse {
	out := make([]ServiceTypeResponse, 0, len(sts))
	for i := range sts {
		out = append(out, FromServiceType(&sts[i]))
	}
	return out
}
