package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/pizzeria/backend/internal/application/media"
)

// MediaHandler handles back-office image uploads
type MediaHandler struct {
	BaseHandler
	uploadService *media.UploadService
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(uploadService *media.UploadService) *MediaHandler {
	return &MediaHandler{uploadService: uploadService}
}

// Upload stores an image from a multipart form
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "Missing file field")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Cannot read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.InternalError(c, "Cannot read uploaded file")
		return
	}

	result, err := h.uploadService.UploadImage(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// Delete removes a stored image by its storage key
func (h *MediaHandler) Delete(c *gin.Context) {
	var req struct {
		StorageKey string `json:"storage_key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	if err := h.uploadService.DeleteImage(c.Request.Context(), req.StorageKey); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
