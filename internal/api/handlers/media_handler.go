package handlers

import (
	"net/http"

	"github.com/featherform/featherform/internal/application"
	"github.com/featherform/featherform/pkg/response"
	"github.com/gin-gonic/gin"
)

// maxUploadSize caps form media uploads at 16 MiB.
const maxUploadSize = 16 << 20

type MediaHandler struct {
	service *application.MediaService
}

func NewMediaHandler(service *application.MediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

// Upload stores a media file for a form and returns its public URL.
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, response.ErrorResponse{Error: "file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.service.Upload(c.Request.Context(), c.Param("id"), fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
