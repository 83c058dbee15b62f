package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type RouterDeps struct {
	Config    config.Config
	Store     SessionStore
	Publisher service.EventPublisher
	Portfolio *PortfolioHandler
	AI        *AIHandler
	Health    *HealthHandler
	Logger    logger.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(
		RequestID(),
		Logger(deps.Logger),
		Recovery(deps.Logger),
		CORS(deps.Config.CORS.AllowedOrigins),
		ErrorHandler(deps.Logger),
	)

	session := Session(deps.Store, deps.Logger)

	router.GET("/healthz", deps.Health.Health)
	router.GET("/readyz", deps.Health.Ready)
	router.GET("/", session, deps.Portfolio.Root)

	v1 := router.Group("/api/v1")
	{
		health := v1.Group("/health")
		health.GET("", deps.Health.Health)
		health.GET("/detailed", deps.Health.Detailed)

		portfolio := v1.Group("/portfolio")
		portfolio.Use(session, ViewEvents(deps.Publisher, deps.Logger))
		{
			portfolio.GET("/profile", deps.Portfolio.GetProfile)
			portfolio.GET("/experience", deps.Portfolio.GetExperience)
			portfolio.GET("/projects", deps.Portfolio.GetProjects)
			portfolio.GET("/skills", deps.Portfolio.GetSkills)
		}

		ai := v1.Group("/ai")
		{
			ai.GET("/status", deps.AI.Status)
			ai.POST("/chat", deps.AI.Chat)
			ai.GET("/recommendations", deps.AI.Recommendations)
			ai.POST("/search", deps.AI.Search)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "message": "Resource not found"})
	})

	return router
}
