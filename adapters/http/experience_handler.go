package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	experienceUC "github.com/hoangtran/portfolio-api/internal/application/usecase/experience"
	"github.com/hoangtran/portfolio-api/pkg/apperror"
)

type ExperienceHandler struct {
	createExperienceUseCase *experienceUC.CreateExperienceUseCase
	listExperienceUseCase   *experienceUC.ListExperienceUseCase
	updateExperienceUseCase *experienceUC.UpdateExperienceUseCase
	deleteExperienceUseCase *experienceUC.DeleteExperienceUseCase
}

func NewExperienceHandler(
	createUC *experienceUC.CreateExperienceUseCase,
	listUC *experienceUC.ListExperienceUseCase,
	updateUC *experienceUC.UpdateExperienceUseCase,
	deleteUC *experienceUC.DeleteExperienceUseCase,
) *ExperienceHandler {
	return &ExperienceHandler{
		createExperienceUseCase: createUC,
		listExperienceUseCase:   listUC,
		updateExperienceUseCase: updateUC,
		deleteExperienceUseCase: deleteUC,
	}
}

func (h *ExperienceHandler) CreateExperience(c *gin.Context) {
	var req CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	output, err := h.createExperienceUseCase.Execute(c.Request.Context(), req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToExperienceDTO(output.Experience))
}

func (h *ExperienceHandler) ListExperience(c *gin.Context) {
	output, err := h.listExperienceUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"experience": ToExperienceDTOs(output.Experience)})
}

func (h *ExperienceHandler) UpdateExperience(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid experience id", err))
		return
	}

	var req UpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	output, err := h.updateExperienceUseCase.Execute(c.Request.Context(), req.ToInput(id))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToExperienceDTO(output.Experience))
}

func (h *ExperienceHandler) DeleteExperience(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid experience id", err))
		return
	}

	if err := h.deleteExperienceUseCase.Execute(c.Request.Context(), experienceUC.DeleteExperienceInput{ID: id}); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
