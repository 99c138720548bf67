package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoangtran/portfolio-api/pkg/logger"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Project    *ProjectHandler
	Experience *ExperienceHandler
	Skill      *SkillHandler
	About      *AboutHandler
	Contact    *ContactHandler
	Portfolio  *PortfolioHandler
	Media      *MediaHandler
}

// NewRouter builds the gin engine with all routes mounted. Reads are public;
// writes live under the same /api prefix and are expected to be protected at
// the gateway.
func NewRouter(h Handlers, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ErrorMiddleware(log))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.GET("/portfolio", h.Portfolio.GetPortfolio)

		projects := api.Group("/projects")
		{
			projects.GET("", h.Project.ListProjects)
			projects.POST("", h.Project.CreateProject)
			projects.PUT("/:id", h.Project.UpdateProject)
			projects.DELETE("/:id", h.Project.DeleteProject)
		}

		experience := api.Group("/experience")
		{
			experience.GET("", h.Experience.ListExperience)
			experience.POST("", h.Experience.CreateExperience)
			experience.PUT("/:id", h.Experience.UpdateExperience)
			experience.DELETE("/:id", h.Experience.DeleteExperience)
		}

		skills := api.Group("/skills")
		{
			skills.GET("", h.Skill.ListSkills)
			skills.POST("", h.Skill.CreateSkill)
			skills.PUT("/:id", h.Skill.UpdateSkill)
			skills.DELETE("/:id", h.Skill.DeleteSkill)
		}

		api.GET("/about", h.About.GetAbout)
		api.PUT("/about", h.About.UpsertAbout)

		api.GET("/contact", h.Contact.GetContact)
		api.PUT("/contact", h.Contact.UpsertContact)

		api.POST("/media", h.Media.UploadMedia)
	}

	return router
}
