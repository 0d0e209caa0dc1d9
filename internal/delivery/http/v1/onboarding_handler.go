package v1

import (
	"errors"
	"io"
	"net/http"

	"fractional-quest-backend/internal/delivery/http/middleware"
	"fractional-quest-backend/internal/delivery/http/response"
	"fractional-quest-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type OnboardingHandler struct {
	onboardingUC domain.OnboardingUsecase
}

func NewOnboardingHandler(r *gin.RouterGroup, onboardingUC domain.OnboardingUsecase) {
	handler := &OnboardingHandler{onboardingUC: onboardingUC}

	onboarding := r.Group("/onboarding")
	{
		onboarding.GET("/tools", handler.ListTools)
		onboarding.POST("/tools/:tool", handler.CallTool)

		onboarding.POST("/sessions", handler.StartSession)

		session := onboarding.Group("/sessions/:id", middleware.SessionID())
		session.GET("", handler.GetSession)
		session.GET("/status", handler.GetStatus)
		session.PUT("/active-agent", handler.UpdateActiveAgent)
		session.POST("/tools/:tool", handler.CallSessionTool)
	}
}

// ListTools godoc
// @Summary      List onboarding tools
// @Description  Step tools in flow order with their required arguments
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.ToolDescriptor}
// @Router       /onboarding/tools [get]
func (h *OnboardingHandler) ListTools(c *gin.Context) {
	response.Success(c, http.StatusOK, "Onboarding tools", h.onboardingUC.Tools())
}

// CallTool godoc
// @Summary      Call a step tool
// @Description  Validate one onboarding step without storing anything. A rejected answer is returned as data with success=false.
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        tool     path      string            true  "Tool name, e.g. confirm_role_preference"
// @Param        request  body      domain.StepInput  false "Step arguments"
// @Success      200      {object}  response.Response{data=domain.StepResult}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /onboarding/tools/{tool} [post]
func (h *OnboardingHandler) CallTool(c *gin.Context) {
	input, ok := bindStepInput(c)
	if !ok {
		return
	}

	result, err := h.onboardingUC.CallTool(c, domain.ToolName(c.Param("tool")), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, result.Message, result)
}

// StartSession godoc
// @Summary      Start onboarding session
// @Description  Open a session positioned at the intro step
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        request  body      domain.StartSessionRequest  false  "User details"
// @Success      201      {object}  response.Response{data=domain.OnboardingSession}
// @Failure      400      {object}  response.Response
// @Router       /onboarding/sessions [post]
func (h *OnboardingHandler) StartSession(c *gin.Context) {
	var req domain.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	session, err := h.onboardingUC.StartSession(c, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Onboarding session started", session)
}

// GetSession godoc
// @Summary      Get onboarding session
// @Tags         onboarding
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.Response{data=domain.OnboardingSession}
// @Failure      404  {object}  response.Response
// @Router       /onboarding/sessions/{id} [get]
func (h *OnboardingHandler) GetSession(c *gin.Context) {
	session, err := h.onboardingUC.GetSession(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Onboarding session retrieved", session)
}

// GetStatus godoc
// @Summary      Get onboarding status
// @Description  Current step and completion flag of a session
// @Tags         onboarding
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.Response{data=domain.OnboardingStatus}
// @Failure      404  {object}  response.Response
// @Router       /onboarding/sessions/{id}/status [get]
func (h *OnboardingHandler) GetStatus(c *gin.Context) {
	status, err := h.onboardingUC.GetOnboardingStatus(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Onboarding status retrieved", status)
}

// UpdateActiveAgent godoc
// @Summary      Update active agent
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "Session ID"
// @Param        request  body      domain.UpdateActiveAgentRequest  true  "Agent"
// @Success      200      {object}  response.Response{data=domain.OnboardingSession}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /onboarding/sessions/{id}/active-agent [put]
func (h *OnboardingHandler) UpdateActiveAgent(c *gin.Context) {
	var req domain.UpdateActiveAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	session, err := h.onboardingUC.UpdateActiveAgent(c, c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Active agent updated", session)
}

// CallSessionTool godoc
// @Summary      Call a step tool for a session
// @Description  Validate one onboarding step and store the result in the session. The response carries a state_snapshot.
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        id       path      string            true   "Session ID"
// @Param        tool     path      string            true   "Tool name"
// @Param        request  body      domain.StepInput  false  "Step arguments"
// @Success      200      {object}  response.Response{data=domain.StepResult}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /onboarding/sessions/{id}/tools/{tool} [post]
func (h *OnboardingHandler) CallSessionTool(c *gin.Context) {
	input, ok := bindStepInput(c)
	if !ok {
		return
	}

	result, err := h.onboardingUC.CallSessionTool(c, c.Param("id"), domain.ToolName(c.Param("tool")), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, result.Message, result)
}

// bindStepInput decodes the optional JSON body of a tool call
func bindStepInput(c *gin.Context) (domain.StepInput, bool) {
	var input domain.StepInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return input, false
	}
	return input, true
}
