package v1

import (
	"net/http"

	"fractional-quest-backend/config"
	"fractional-quest-backend/internal/delivery/http/middleware"
	"fractional-quest-backend/internal/domain"
	"fractional-quest-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	OnboardingUC domain.OnboardingUsecase
	HealthUC     usecase.HealthUsecase
	MCPHandler   http.Handler // nil disables the MCP endpoint
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(deps.Config.RateLimitPerMinute)))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	NewSystemHandler(v1, deps.HealthUC, deps.OnboardingUC, deps.MCPHandler != nil)
	NewOnboardingHandler(v1, deps.OnboardingUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// MCP streamable HTTP transport for tool-calling drivers
	if deps.MCPHandler != nil {
		r.Any("/mcp", gin.WrapH(deps.MCPHandler))
	}

	return r
}
