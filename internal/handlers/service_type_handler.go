package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booksmart-api/internal/dto"
	"github.com/BruksfildServices01/booksmart-api/internal/httperr"
	"github.com/BruksfildServices01/booksmart-api/internal/httpresp"
	ucServiceType "github.com/BruksfildServices01/booksmart-api/internal/usecase/servicetype"
)

type ServiceTypeHandler struct {
	catalog ucServiceType.Service
}

func NewServiceTypeHandler(catalog ucServiceType.Service) *ServiceTypeHandler {
	return &ServiceTypeHandler{catalog: catalog}
}

func (h *ServiceTypeHandler) List(c *gin.Context) {
	out, err := h.catalog.ListAll(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *ServiceTypeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	out, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *ServiceTypeHandler) ListByBusiness(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	out, err := h.catalog.ListByBusiness(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *ServiceTypeHandler) Create(c *gin.Context) {
	var req dto.ServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.FromBinding(c, err)
		return
	}

	out, err := h.catalog.Create(c.Request.Context(), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, out)
}

func (h *ServiceTypeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.FromBinding(c, err)
		return
	}

	out, err := h.catalog.Update(c.Request.Context(), id, req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *ServiceTypeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}
