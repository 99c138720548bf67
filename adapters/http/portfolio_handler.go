package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoangtran/portfolio-api/internal/application/usecase/portfolio"
)

type PortfolioHandler struct {
	loadPortfolioUseCase *portfolio.LoadPortfolioUseCase
}

func NewPortfolioHandler(uc *portfolio.LoadPortfolioUseCase) *PortfolioHandler {
	return &PortfolioHandler{loadPortfolioUseCase: uc}
}

// GetPortfolio serves the aggregated snapshot. A degraded snapshot is still
// a 200: sections that could not be loaded come back empty and the payload
// carries degraded=true.
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	snap, err := h.loadPortfolioUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPortfolioDTO(snap))
}
