package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contactUC "github.com/hoangtran/portfolio-api/internal/application/usecase/contact"
	"github.com/hoangtran/portfolio-api/pkg/apperror"
)

type ContactHandler struct {
	contactUseCase *contactUC.ContactUseCase
}

func NewContactHandler(uc *contactUC.ContactUseCase) *ContactHandler {
	return &ContactHandler{contactUseCase: uc}
}

func (h *ContactHandler) GetContact(c *gin.Context) {
	output, err := h.contactUseCase.ExecuteGet(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contact_info": ToContactInfoDTO(output.ContactInfo)})
}

func (h *ContactHandler) UpsertContact(c *gin.Context) {
	var req UpsertContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	output, err := h.contactUseCase.ExecuteUpsert(c.Request.Context(), req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToContactInfoDTO(output.ContactInfo))
}
