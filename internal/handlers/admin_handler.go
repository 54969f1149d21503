package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booksmart-api/internal/dto"
	"github.com/BruksfildServices01/booksmart-api/internal/httperr"
	"github.com/BruksfildServices01/booksmart-api/internal/httpresp"
	ucAdmin "github.com/BruksfildServices01/booksmart-api/internal/usecase/admin"
)

type AdminHandler struct {
	admin ucAdmin.Service
}

func NewAdminHandler(admin ucAdmin.Service) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	out, err := h.admin.ListUsers(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *AdminHandler) UpdateRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.FromBinding(c, err)
		return
	}

	out, err := h.admin.UpdateRole(c.Request.Context(), id, req.Role)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.admin.DeleteUser(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *AdminHandler) Stats(c *gin.Context) {
	out, err := h.admin.Stats(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}
