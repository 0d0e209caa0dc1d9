package mcptools

import (
	"context"
	"encoding/json"
	"testing"

	"fractional-quest-backend/internal/domain"
	"fractional-quest-backend/internal/repository/memory"
	"fractional-quest-backend/internal/usecase"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeps(t *testing.T) Deps {
	t.Helper()
	return Deps{
		OnboardingUC: usecase.NewOnboardingUsecase(memory.NewSessionRepository(), usecase.NewValidator()),
		Name:         "fractional_quest",
		Version:      "test",
	}
}

func makeCallToolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func toolText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	tc, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return tc.Text
}

func decodeResult(t *testing.T, result *mcp.CallToolResult) domain.StepResult {
	t.Helper()
	require.False(t, result.IsError, toolText(t, result))
	var r domain.StepResult
	require.NoError(t, json.Unmarshal([]byte(toolText(t, result)), &r))
	return r
}

func TestStepToolStateless(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	t.Run("Should validate a role", func(t *testing.T) {
		handler := stepTool(deps, domain.ToolConfirmRolePreference)
		result, err := handler(ctx, makeCallToolRequest("confirm_role_preference", map[string]interface{}{"role": " CFO "}))
		require.NoError(t, err)

		r := decodeResult(t, result)
		assert.True(t, r.Success)
		assert.Equal(t, domain.RoleCFO, r.RolePreference)
		assert.Equal(t, domain.StepTrinity, r.NextStep)
	})

	t.Run("Should return a rejected answer as a normal result", func(t *testing.T) {
		handler := stepTool(deps, domain.ToolConfirmLocation)
		result, err := handler(ctx, makeCallToolRequest("confirm_location", map[string]interface{}{
			"location":          "Paris",
			"remote_preference": "sometimes",
		}))
		require.NoError(t, err)

		r := decodeResult(t, result)
		assert.False(t, r.Success)
		assert.Equal(t, []string{"remote", "hybrid", "onsite", "flexible"}, r.ValidPreferences)
	})

	t.Run("Should decode years and industries", func(t *testing.T) {
		handler := stepTool(deps, domain.ToolConfirmExperience)
		result, err := handler(ctx, makeCallToolRequest("confirm_experience", map[string]interface{}{
			"years":      float64(15),
			"industries": []interface{}{"retail", "logistics"},
		}))
		require.NoError(t, err)

		r := decodeResult(t, result)
		require.True(t, r.Success)
		assert.Equal(t, 15, *r.YearsExperience)
		assert.Equal(t, []string{"retail", "logistics"}, r.Industries)
	})

	t.Run("Should report missing years", func(t *testing.T) {
		handler := stepTool(deps, domain.ToolConfirmExperience)
		result, err := handler(ctx, makeCallToolRequest("confirm_experience", map[string]interface{}{}))
		require.NoError(t, err)

		r := decodeResult(t, result)
		assert.False(t, r.Success)
		assert.Equal(t, domain.ErrKindMissingArgument, r.ErrorKind)
	})

	t.Run("Should flag non numeric years as a tool error", func(t *testing.T) {
		handler := stepTool(deps, domain.ToolConfirmExperience)
		result, err := handler(ctx, makeCallToolRequest("confirm_experience", map[string]interface{}{"years": []interface{}{1}}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})

	t.Run("Should reject fractional years", func(t *testing.T) {
		handler := stepTool(deps, domain.ToolConfirmExperience)
		for _, years := range []float64{-0.5, 3.9, 1e20} {
			result, err := handler(ctx, makeCallToolRequest("confirm_experience", map[string]interface{}{"years": years}))
			require.NoError(t, err)
			assert.True(t, result.IsError, "years %v", years)
			assert.Equal(t, "years must be a whole number", toolText(t, result))
		}
	})

	t.Run("Should report negative whole years as out of range", func(t *testing.T) {
		handler := stepTool(deps, domain.ToolConfirmExperience)
		result, err := handler(ctx, makeCallToolRequest("confirm_experience", map[string]interface{}{"years": float64(-2)}))
		require.NoError(t, err)

		r := decodeResult(t, result)
		assert.False(t, r.Success)
		assert.Equal(t, domain.ErrKindInvalidRange, r.ErrorKind)
	})

	t.Run("Should keep compensation absent when not given", func(t *testing.T) {
		handler := stepTool(deps, domain.ToolConfirmSearchPrefs)
		result, err := handler(ctx, makeCallToolRequest("confirm_search_prefs", map[string]interface{}{"availability": "immediately"}))
		require.NoError(t, err)

		r := decodeResult(t, result)
		assert.True(t, r.Success)
		assert.Contains(t, r.Message, "competitive compensation")
	})
}

func TestStepToolWithSession(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	session, err := deps.OnboardingUC.StartSession(ctx, &domain.StartSessionRequest{})
	require.NoError(t, err)

	result, err := stepTool(deps, domain.ToolConfirmRolePreference)(ctx, makeCallToolRequest("confirm_role_preference", map[string]interface{}{
		"role":       "cmo",
		"session_id": session.ID,
	}))
	require.NoError(t, err)

	r := decodeResult(t, result)
	require.NotNil(t, r.StateSnapshot)
	assert.Equal(t, domain.StepTrinity, r.StateSnapshot.CurrentStep)

	status, err := getStatusTool(deps)(ctx, makeCallToolRequest("get_onboarding_status", map[string]interface{}{"session_id": session.ID}))
	require.NoError(t, err)
	require.False(t, status.IsError)
	assert.Contains(t, toolText(t, status), `"current_step":"trinity"`)

	agent, err := updateActiveAgentTool(deps)(ctx, makeCallToolRequest("update_active_agent", map[string]interface{}{
		"session_id": session.ID,
		"agent_name": "coaching",
	}))
	require.NoError(t, err)
	require.False(t, agent.IsError)
	assert.JSONEq(t, `{"active_agent":"coaching"}`, toolText(t, agent))
}

func TestToolErrors(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	result, err := stepTool(deps, domain.ToolConfirmTrinity)(ctx, makeCallToolRequest("confirm_trinity", map[string]interface{}{
		"engagement_type": "interim",
		"session_id":      "7a1f4b52-3c0e-4a8d-9f3e-2b6c1d0e5a47",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "Onboarding session not found", toolText(t, result))

	status, err := getStatusTool(deps)(ctx, makeCallToolRequest("get_onboarding_status", map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, status.IsError)
}

func TestNewServerRegistersTools(t *testing.T) {
	s := NewServer(newTestDeps(t))

	resp := s.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	b, err := json.Marshal(resp)
	require.NoError(t, err)

	for _, name := range []domain.ToolName{
		domain.ToolConfirmRolePreference,
		domain.ToolConfirmTrinity,
		domain.ToolConfirmExperience,
		domain.ToolConfirmLocation,
		domain.ToolConfirmSearchPrefs,
		domain.ToolCompleteOnboarding,
		domain.ToolGetOnboardingStatus,
		domain.ToolUpdateActiveAgent,
	} {
		assert.Contains(t, string(b), `"name":"`+string(name)+`"`)
	}
}
