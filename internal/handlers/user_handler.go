package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booksmart-api/internal/apperr"
	"github.com/BruksfildServices01/booksmart-api/internal/dto"
	"github.com/BruksfildServices01/booksmart-api/internal/httperr"
	"github.com/BruksfildServices01/booksmart-api/internal/httpresp"
	ucUser "github.com/BruksfildServices01/booksmart-api/internal/usecase/user"
)

type UserHandler struct {
	users ucUser.Service
}

func NewUserHandler(users ucUser.Service) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	out, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.FromBinding(c, err)
		return
	}

	out, err := h.users.UpdateProfile(c.Request.Context(), id, req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *UserHandler) UploadProfileImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	file, err := formFile(c, "file")
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if file == nil {
		httperr.FromError(c, apperr.Validation("file_required", "Image file is required."))
		return
	}

	out, err := h.users.UploadProfileImage(c.Request.Context(), id, file)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}
