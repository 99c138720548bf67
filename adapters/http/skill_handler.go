package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	skillUC "github.com/hoangtran/portfolio-api/internal/application/usecase/skill"
	"github.com/hoangtran/portfolio-api/pkg/apperror"
)

type SkillHandler struct {
	createSkillUseCase *skillUC.CreateSkillUseCase
	listSkillsUseCase  *skillUC.ListSkillsUseCase
	updateSkillUseCase *skillUC.UpdateSkillUseCase
	deleteSkillUseCase *skillUC.DeleteSkillUseCase
}

func NewSkillHandler(
	createUC *skillUC.CreateSkillUseCase,
	listUC *skillUC.ListSkillsUseCase,
	updateUC *skillUC.UpdateSkillUseCase,
	deleteUC *skillUC.DeleteSkillUseCase,
) *SkillHandler {
	return &SkillHandler{
		createSkillUseCase: createUC,
		listSkillsUseCase:  listUC,
		updateSkillUseCase: updateUC,
		deleteSkillUseCase: deleteUC,
	}
}

func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	output, err := h.createSkillUseCase.Execute(c.Request.Context(), req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToSkillDTO(output.Skill))
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	output, err := h.listSkillsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"skills": ToSkillDTOs(output.Skills)})
}

func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid skill id", err))
		return
	}

	var req UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	output, err := h.updateSkillUseCase.Execute(c.Request.Context(), req.ToInput(id))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToSkillDTO(output.Skill))
}

func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid skill id", err))
		return
	}

	if err := h.deleteSkillUseCase.Execute(c.Request.Context(), skillUC.DeleteSkillInput{ID: id}); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
