package v1

import (
	"net/http"
	"os"

	"fractional-quest-backend/internal/delivery/http/response"
	"fractional-quest-backend/internal/domain"
	"fractional-quest-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	healthUC     usecase.HealthUsecase
	onboardingUC domain.OnboardingUsecase
	mcpEnabled   bool
}

func NewSystemHandler(r *gin.RouterGroup, healthUC usecase.HealthUsecase, onboardingUC domain.OnboardingUsecase, mcpEnabled bool) {
	handler := &SystemHandler{healthUC: healthUC, onboardingUC: onboardingUC, mcpEnabled: mcpEnabled}

	r.GET("/health", handler.Health)
	r.GET("/debug", handler.Debug)
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, "System operational", h.healthUC.Check(c))
}

// Debug godoc
// @Summary      Debug information
// @Description  Registered tools and presence of the relevant environment variables
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /debug [get]
func (h *SystemHandler) Debug(c *gin.Context) {
	tools := make([]domain.ToolName, 0, len(h.onboardingUC.Tools()))
	for _, t := range h.onboardingUC.Tools() {
		tools = append(tools, t.Name)
	}

	response.Success(c, http.StatusOK, "Debug info", gin.H{
		"tools":       tools,
		"mcp_enabled": h.mcpEnabled,
		"env_vars": gin.H{
			"GOOGLE_API_KEY": envState("GOOGLE_API_KEY"),
			"PORT":           os.Getenv("PORT"),
		},
	})
}

func envState(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "NOT SET"
}
