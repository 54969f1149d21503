package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booksmart-api/internal/dto"
	"github.com/BruksfildServices01/booksmart-api/internal/httperr"
	"github.com/BruksfildServices01/booksmart-api/internal/httpresp"
	ucDeletion "github.com/BruksfildServices01/booksmart-api/internal/usecase/deletion"
	ucEmployee "github.com/BruksfildServices01/booksmart-api/internal/usecase/employee"
)

type EmployeeHandler struct {
	employees ucEmployee.Service
	deleteUC  *ucDeletion.DeleteEmployee
}

func NewEmployeeHandler(
	employees ucEmployee.Service,
	deleteUC *ucDeletion.DeleteEmployee,
) *EmployeeHandler {
	return &EmployeeHandler{
		employees: employees,
		deleteUC:  deleteUC,
	}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	out, err := h.employees.ListAll(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	out, err := h.employees.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *EmployeeHandler) ListByBusiness(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	out, err := h.employees.ListByBusiness(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.FromBinding(c, err)
		return
	}

	out, err := h.employees.Create(c.Request.Context(), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, out)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.FromBinding(c, err)
		return
	}

	out, err := h.employees.Update(c.Request.Context(), id, req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}
