package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/BruksfildServices01/booksmart-api/internal/dto"
	"github.com/BruksfildServices01/booksmart-api/internal/httperr"
	"github.com/BruksfildServices01/booksmart-api/internal/httpresp"
	ucBusiness "github.com/BruksfildServices01/booksmart-api/internal/usecase/business"
	ucDeletion "github.com/BruksfildServices01/booksmart-api/internal/usecase/deletion"
)

// ======================================================
// HANDLER
// ======================================================

type BusinessHandler struct {
	businesses ucBusiness.Service
	deleteUC   *ucDeletion.DeleteBusiness
}

func NewBusinessHandler(
	businesses ucBusiness.Service,
	deleteUC *ucDeletion.DeleteBusiness,
) *BusinessHandler {
	return &BusinessHandler{
		businesses: businesses,
		deleteUC:   deleteUC,
	}
}

// ======================================================
// READS
// ======================================================

func (h *BusinessHandler) Search(c *gin.Context) {
	page, ok := queryInt(c, "page", 0)
	if !ok {
		return
	}
	size, ok := queryInt(c, "size", 10)
	if !ok {
		return
	}

	out, err := h.businesses.Search(c.Request.Context(), c.Query("search"), page, size)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *BusinessHandler) List(c *gin.Context) {
	out, err := h.businesses.ListAll(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *BusinessHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	out, err := h.businesses.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *BusinessHandler) ListByOwner(c *gin.Context) {
	ownerID, ok := pathID(c, "ownerId")
	if !ok {
		return
	}

	out, err := h.businesses.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, out)
}

// ======================================================
// WRITES
// ======================================================

func (h *BusinessHandler) Create(c *gin.Context) {
	req, file, ok := bindBusiness(c)
	if !ok {
		return
	}

	out, err := h.businesses.Create(c.Request.Context(), req, file)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, out)
}

func (h *BusinessHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, file, ok := bindBusiness(c)
	if !ok {
		return
	}

	out, err := h.businesses.Update(c.Request.Context(), id, req, file)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *BusinessHandler) Delete(c *gin.Context) {
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

// bindBusiness accepts either a JSON body or a multipart form with a
// "business" JSON part and an optional "file" part.
func bindBusiness(c *gin.Context) (dto.BusinessRequest, []byte, bool) {
	var req dto.BusinessRequest

	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.FromBinding(c, err)
			return req, nil, false
		}
		return req, nil, true
	}

	raw := c.PostForm("business")
	if raw == "" {
		httperr.BadRequest(c, "business_part_required", "Multipart request must include a business part.")
		return req, nil, false
	}
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		httperr.FromBinding(c, err)
		return req, nil, false
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		httperr.FromBinding(c, err)
		return req, nil, false
	}

	file, err := formFile(c, "file")
	if err != nil {
		httperr.FromError(c, err)
		return req, nil, false
	}
	return req, file, true
}
