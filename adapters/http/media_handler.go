package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoangtran/portfolio-api/internal/application/usecase/media"
	"github.com/hoangtran/portfolio-api/pkg/apperror"
)

type MediaHandler struct {
	uploadMediaUseCase *media.UploadMediaUseCase
}

func NewMediaHandler(uc *media.UploadMediaUseCase) *MediaHandler {
	return &MediaHandler{uploadMediaUseCase: uc}
}

func (h *MediaHandler) UploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("cannot open uploaded file", err))
		return
	}
	defer file.Close()

	output, err := h.uploadMediaUseCase.Execute(c.Request.Context(), media.UploadMediaInput{
		File:     file,
		Filename: fileHeader.Filename,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": output.URL})
}
