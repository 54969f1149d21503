package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booksmart-api/internal/domain/image"
	"github.com/BruksfildServices01/booksmart-api/internal/dto"
	"github.com/BruksfildServices01/booksmart-api/internal/httperr"
	"github.com/BruksfildServices01/booksmart-api/internal/httpresp"
	"github.com/BruksfildServices01/booksmart-api/internal/usecase"
)

type ImageHandler struct {
	host image.Host
}

func NewImageHandler(host image.Host) *ImageHandler {
	return &ImageHandler{host: host}
}

// Upload stores a standalone image. Nothing references it until a client
// sends the returned url with another request.
func (h *ImageHandler) Upload(c *gin.Context) {
	file, err := formFile(c, "file")
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	up, err := usecase.UploadImage(c.Request.Context(), h.host, image.FolderBusinessLogos, file)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.ImageResponse{URL: up.URL, PublicID: up.PublicID})
}
