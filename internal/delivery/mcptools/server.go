// Package mcptools exposes the onboarding tools to LLM drivers over the Model Context Protocol.
package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"fractional-quest-backend/internal/domain"
	"fractional-quest-backend/pkg/apperror"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const instructions = `Fractional Quest onboarding tools. Guide the user through six steps in order:
intro, role_preference, trinity, experience, location, search_prefs. Call the confirm_* tool
matching the current step with the user's answer, follow next_step from the result, and
re-prompt with valid_options when success is false. Pass session_id to have progress stored.`

// maxYears bounds the years argument so the int conversion cannot overflow
const maxYears = 1 << 31

// Deps holds dependencies for the MCP server.
type Deps struct {
	OnboardingUC domain.OnboardingUsecase
	Name         string
	Version      string
}

// NewServer creates an MCP server with every onboarding tool registered.
func NewServer(deps Deps) *server.MCPServer {
	name := deps.Name
	if name == "" {
		name = "fractional_quest"
	}
	version := deps.Version
	if version == "" {
		version = "0.1.0"
	}

	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(instructions),
		server.WithRecovery(),
	)

	sessionOpt := mcp.WithString("session_id", mcp.Description("Onboarding session to store the result in (optional)"))

	s.AddTool(
		mcp.NewTool(string(domain.ToolConfirmRolePreference),
			mcp.WithDescription("Confirm the user's primary executive role preference."),
			mcp.WithString("role", mcp.Description("The role type (cto, cfo, cmo, coo, cro, cpo, chro, ciso, other)"), mcp.Required()),
			sessionOpt,
		),
		stepTool(deps, domain.ToolConfirmRolePreference),
	)

	s.AddTool(
		mcp.NewTool(string(domain.ToolConfirmTrinity),
			mcp.WithDescription("Confirm the user's preferred engagement type (the trinity)."),
			mcp.WithString("engagement_type", mcp.Description("fractional, interim, advisory, or all"), mcp.Required()),
			sessionOpt,
		),
		stepTool(deps, domain.ToolConfirmTrinity),
	)

	s.AddTool(
		mcp.NewTool(string(domain.ToolConfirmExperience),
			mcp.WithDescription("Confirm the user's experience level and industries."),
			mcp.WithNumber("years", mcp.Description("Years of executive experience"), mcp.Required()),
			mcp.WithArray("industries", mcp.Description("Industries they have experience in"), mcp.WithStringItems()),
			sessionOpt,
		),
		stepTool(deps, domain.ToolConfirmExperience),
	)

	s.AddTool(
		mcp.NewTool(string(domain.ToolConfirmLocation),
			mcp.WithDescription("Confirm the user's location and remote work preference."),
			mcp.WithString("location", mcp.Description("City, region, or country"), mcp.Required()),
			mcp.WithString("remote_preference", mcp.Description("remote, hybrid, onsite, or flexible"), mcp.Required()),
			sessionOpt,
		),
		stepTool(deps, domain.ToolConfirmLocation),
	)

	s.AddTool(
		mcp.NewTool(string(domain.ToolConfirmSearchPrefs),
			mcp.WithDescription("Confirm the user's search preferences (compensation, availability)."),
			mcp.WithString("target_compensation", mcp.Description(`Target compensation range (e.g. "$200-300k", "open")`)),
			mcp.WithString("availability", mcp.Description("When they can start (immediately, 2_weeks, 1_month, ...)"), mcp.Required()),
			sessionOpt,
		),
		stepTool(deps, domain.ToolConfirmSearchPrefs),
	)

	s.AddTool(
		mcp.NewTool(string(domain.ToolCompleteOnboarding),
			mcp.WithDescription("Mark onboarding as complete and summarise the user's profile."),
			sessionOpt,
		),
		stepTool(deps, domain.ToolCompleteOnboarding),
	)

	// Orchestrator tools
	s.AddTool(
		mcp.NewTool(string(domain.ToolGetOnboardingStatus),
			mcp.WithDescription("Check the current onboarding step and completion status."),
			mcp.WithString("session_id", mcp.Description("Onboarding session"), mcp.Required()),
		),
		getStatusTool(deps),
	)

	s.AddTool(
		mcp.NewTool(string(domain.ToolUpdateActiveAgent),
			mcp.WithDescription("Update which agent is currently active so the UI can show the right context."),
			mcp.WithString("session_id", mcp.Description("Onboarding session"), mcp.Required()),
			mcp.WithString("agent_name", mcp.Description("Name of the active agent"), mcp.Required()),
		),
		updateActiveAgentTool(deps),
	)

	return s
}

func stepTool(deps Deps, name domain.ToolName) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input, err := stepInput(req)
		if err != nil {
			return mcpError(err.Error()), nil
		}

		var result *domain.StepResult
		if sessionID := req.GetString("session_id", ""); sessionID != "" {
			result, err = deps.OnboardingUC.CallSessionTool(ctx, sessionID, name, input)
		} else {
			result, err = deps.OnboardingUC.CallTool(ctx, name, input)
		}
		if err != nil {
			return mcpError(errorMessage(err)), nil
		}

		return mcpJSON(result)
	}
}

func getStatusTool(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sessionID, err := req.RequireString("session_id")
		if err != nil {
			return mcpError("session_id is required"), nil
		}

		status, err := deps.OnboardingUC.GetOnboardingStatus(ctx, sessionID)
		if err != nil {
			return mcpError(errorMessage(err)), nil
		}

		return mcpJSON(status)
	}
}

func updateActiveAgentTool(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sessionID, err := req.RequireString("session_id")
		if err != nil {
			return mcpError("session_id is required"), nil
		}
		agentName, err := req.RequireString("agent_name")
		if err != nil {
			return mcpError("agent_name is required"), nil
		}

		session, err := deps.OnboardingUC.UpdateActiveAgent(ctx, sessionID, &domain.UpdateActiveAgentRequest{AgentName: agentName})
		if err != nil {
			return mcpError(errorMessage(err)), nil
		}

		return mcpJSON(map[string]string{"active_agent": session.ActiveAgent})
	}
}

// stepInput decodes tool arguments. Absent arguments stay zero so the
// step operations can report them as a failed result.
func stepInput(req mcp.CallToolRequest) (domain.StepInput, error) {
	args := req.GetArguments()

	in := domain.StepInput{
		Role:             req.GetString("role", ""),
		EngagementType:   req.GetString("engagement_type", ""),
		Location:         req.GetString("location", ""),
		RemotePreference: req.GetString("remote_preference", ""),
		Availability:     req.GetString("availability", ""),
		Industries:       req.GetStringSlice("industries", nil),
	}

	if _, ok := args["years"]; ok {
		years, err := req.RequireFloat("years")
		if err != nil {
			return in, fmt.Errorf("years must be a number")
		}
		if years != math.Trunc(years) || math.Abs(years) > maxYears {
			return in, fmt.Errorf("years must be a whole number")
		}
		y := int(years)
		in.Years = &y
	}

	if v, ok := args["target_compensation"]; ok && v != nil {
		comp := req.GetString("target_compensation", "")
		in.TargetCompensation = &comp
	}

	return in, nil
}

func errorMessage(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

func mcpJSON(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcpError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcpText(string(b)), nil
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: strings.TrimSpace(text)},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
