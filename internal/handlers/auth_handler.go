package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booksmart-api/internal/dto"
	"github.com/BruksfildServices01/booksmart-api/internal/httperr"
	"github.com/BruksfildServices01/booksmart-api/internal/httpresp"
	ucUser "github.com/BruksfildServices01/booksmart-api/internal/usecase/user"
)

type AuthHandler struct {
	users ucUser.Service
}

func NewAuthHandler(users ucUser.Service) *AuthHandler {
	return &AuthHandler{users: users}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.FromBinding(c, err)
		return
	}

	out, err := h.users.Login(c.Request.Context(), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.FromBinding(c, err)
		return
	}

	out, err := h.users.Register(c.Request.Context(), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, out)
}

func (h *AuthHandler) CheckUsername(c *gin.Context) {
	ok, err := h.users.UsernameAvailable(c.Request.Context(), c.Query("username"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.UsernameAvailability{Available: ok})
}
