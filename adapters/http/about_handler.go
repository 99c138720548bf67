package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	aboutUC "github.com/hoangtran/portfolio-api/internal/application/usecase/about"
	"github.com/hoangtran/portfolio-api/pkg/apperror"
)

type AboutHandler struct {
	aboutUseCase *aboutUC.AboutUseCase
}

func NewAboutHandler(uc *aboutUC.AboutUseCase) *AboutHandler {
	return &AboutHandler{aboutUseCase: uc}
}

// GetAbout returns the about-me record, or a null body when it was never
// written.
func (h *AboutHandler) GetAbout(c *gin.Context) {
	output, err := h.aboutUseCase.ExecuteGet(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"about_me": ToAboutMeDTO(output.AboutMe)})
}

func (h *AboutHandler) UpsertAbout(c *gin.Context) {
	var req UpsertAboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	output, err := h.aboutUseCase.ExecuteUpsert(c.Request.Context(), req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToAboutMeDTO(output.AboutMe))
}
