package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fractional-quest-backend/config"
	v1 "fractional-quest-backend/internal/delivery/http/v1"
	"fractional-quest-backend/internal/domain"
	"fractional-quest-backend/internal/repository/memory"
	"fractional-quest-backend/internal/usecase"
	"fractional-quest-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"request_id"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uc := usecase.NewOnboardingUsecase(memory.NewSessionRepository(), usecase.NewValidator())
	return v1.NewRouter(v1.RouterDeps{
		OnboardingUC: uc,
		HealthUC:     usecase.NewHealthUsecase("fractional_quest", ""),
		Config:       &config.Config{AllowedOrigins: []string{"https://app.example"}},
	})
}

func do(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func TestSystemRoutes(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodGet, "/v1/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, env.RequestID)
	assert.Equal(t, w.Header().Get("X-Request-ID"), env.RequestID)

	var health map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &health))
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, false, health["google_api_key_set"])
}

func TestStatelessToolCall(t *testing.T) {
	r := newTestRouter(t)

	t.Run("Should list tools in flow order", func(t *testing.T) {
		w, env := do(t, r, http.MethodGet, "/v1/onboarding/tools", "")
		require.Equal(t, http.StatusOK, w.Code)

		var tools []domain.ToolDescriptor
		require.NoError(t, json.Unmarshal(env.Data, &tools))
		require.Len(t, tools, 6)
		assert.Equal(t, domain.ToolConfirmRolePreference, tools[0].Name)
		assert.Equal(t, domain.ToolCompleteOnboarding, tools[5].Name)
	})

	t.Run("Should return a rejected answer as data", func(t *testing.T) {
		w, env := do(t, r, http.MethodPost, "/v1/onboarding/tools/confirm_role_preference", `{"role":"ceo"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var result domain.StepResult
		require.NoError(t, json.Unmarshal(env.Data, &result))
		assert.False(t, result.Success)
		assert.Equal(t, "ceo", result.Input)
		assert.Len(t, result.ValidRoles, 9)
		assert.Nil(t, result.StateSnapshot)
	})

	t.Run("Should report missing years", func(t *testing.T) {
		w, env := do(t, r, http.MethodPost, "/v1/onboarding/tools/confirm_experience", "")
		require.Equal(t, http.StatusOK, w.Code)

		var result domain.StepResult
		require.NoError(t, json.Unmarshal(env.Data, &result))
		assert.False(t, result.Success)
		assert.Equal(t, domain.ErrKindMissingArgument, result.ErrorKind)
	})

	t.Run("Should 404 an unknown tool", func(t *testing.T) {
		w, env := do(t, r, http.MethodPost, "/v1/onboarding/tools/confirm_salary", `{}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, env.Success)
	})

	t.Run("Should 400 a malformed body", func(t *testing.T) {
		w, _ := do(t, r, http.MethodPost, "/v1/onboarding/tools/confirm_experience", `{"years":"many"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSessionFlow(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodPost, "/v1/onboarding/sessions", `{"name":"Ada Lovelace","email":"ada@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var session domain.OnboardingSession
	require.NoError(t, json.Unmarshal(env.Data, &session))
	require.NotEmpty(t, session.ID)
	assert.Equal(t, domain.StepIntro, session.Onboarding.CurrentStep)

	base := "/v1/onboarding/sessions/" + session.ID
	steps := []struct {
		tool string
		body string
		next domain.Step
	}{
		{"confirm_role_preference", `{"role":"CTO"}`, domain.StepTrinity},
		{"confirm_trinity", `{"engagement_type":"Fractional"}`, domain.StepExperience},
		{"confirm_experience", `{"years":12,"industries":["fintech","saas"]}`, domain.StepLocation},
		{"confirm_location", `{"location":"Austin, TX","remote_preference":"Hybrid"}`, domain.StepSearchPrefs},
		{"confirm_search_prefs", `{"target_compensation":"$200-300k","availability":"2_weeks"}`, domain.StepCompleted},
		{"complete_onboarding", ``, domain.StepCompleted},
	}

	for _, s := range steps {
		w, env := do(t, r, http.MethodPost, base+"/tools/"+s.tool, s.body)
		require.Equal(t, http.StatusOK, w.Code, s.tool)

		var result domain.StepResult
		require.NoError(t, json.Unmarshal(env.Data, &result))
		require.True(t, result.Success, "%s: %s", s.tool, result.Error)
		assert.Equal(t, result.Message, env.Message)
		require.NotNil(t, result.StateSnapshot)
		assert.Equal(t, s.next, result.StateSnapshot.CurrentStep, s.tool)
	}

	w, env = do(t, r, http.MethodGet, base+"/status", "")
	require.Equal(t, http.StatusOK, w.Code)

	var status domain.OnboardingStatus
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.True(t, status.Completed)
	assert.Equal(t, domain.RoleCTO, status.RolePreference)
	assert.Equal(t, "Austin, TX", status.Location)

	w, env = do(t, r, http.MethodPut, base+"/active-agent", `{"agent_name":"job_search"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, "job_search", session.ActiveAgent)

	w, _ = do(t, r, http.MethodPut, base+"/active-agent", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionRequestsLogSessionID(t *testing.T) {
	var logs bytes.Buffer
	logger.InitWithWriter(&logs, "info")
	t.Cleanup(func() { logger.Init("info") })

	r := newTestRouter(t)
	w, env := do(t, r, http.MethodPost, "/v1/onboarding/sessions", `{}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var session domain.OnboardingSession
	require.NoError(t, json.Unmarshal(env.Data, &session))

	logs.Reset()
	w, _ = do(t, r, http.MethodGet, "/v1/onboarding/sessions/"+session.ID+"/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, logs.String(), `"session_id":"`+session.ID+`"`)

	logs.Reset()
	do(t, r, http.MethodGet, "/v1/onboarding/tools", "")
	assert.NotContains(t, logs.String(), `"session_id"`)
}

func TestSessionErrors(t *testing.T) {
	r := newTestRouter(t)

	w, _ := do(t, r, http.MethodGet, "/v1/onboarding/sessions/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodGet, "/v1/onboarding/sessions/7a1f4b52-3c0e-4a8d-9f3e-2b6c1d0e5a47/status", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, r, http.MethodPost, "/v1/onboarding/sessions", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/onboarding/tools", nil)
	req.Header.Set("Origin", "https://app.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/v1/onboarding/tools", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
