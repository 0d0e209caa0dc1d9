package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fractional-quest-backend/internal/domain"
	"fractional-quest-backend/pkg/apperror"
	"fractional-quest-backend/pkg/logger"
	"fractional-quest-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type onboardingUsecase struct {
	repo     domain.SessionRepository
	validate *validator.Validate
	now      func() time.Time
}

func NewOnboardingUsecase(repo domain.SessionRepository, validate *validator.Validate) domain.OnboardingUsecase {
	return &onboardingUsecase{
		repo:     repo,
		validate: validate,
		now:      time.Now,
	}
}

// NewValidator returns a validator with the onboarding enum tags registered
func NewValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)

	steps := make([]string, 0, len(domain.OnboardingSteps()))
	for _, s := range domain.OnboardingSteps() {
		steps = append(steps, string(s))
	}

	mustRegisterEnum(v, "executive_role", roleOptions())
	mustRegisterEnum(v, "engagement_type", trinityOptions())
	mustRegisterEnum(v, "remote_preference", remoteOptions())
	mustRegisterEnum(v, "onboarding_step", steps)

	return v
}

// mustRegisterEnum panics at startup if a static enum tag cannot be registered
func mustRegisterEnum(v *validator.Validate, tag string, allowed []string) {
	if err := validation.RegisterEnum(v, tag, allowed); err != nil {
		panic(fmt.Sprintf("registering %s validator: %v", tag, err))
	}
}

// ============================================================================
// Tools
// ============================================================================

func (u *onboardingUsecase) Tools() []domain.ToolDescriptor {
	return StepTools()
}

func (u *onboardingUsecase) CallTool(ctx context.Context, name domain.ToolName, input domain.StepInput) (*domain.StepResult, error) {
	result, ok := Dispatch(name, input, domain.NewOnboardingProfile())
	if !ok {
		return nil, unknownTool(name)
	}

	logStepResult(ctx, "", name, result)
	return &result, nil
}

// ============================================================================
// Sessions
// ============================================================================

func (u *onboardingUsecase) StartSession(ctx context.Context, req *domain.StartSessionRequest) (*domain.OnboardingSession, error) {
	if req == nil {
		req = &domain.StartSessionRequest{}
	}

	if err := u.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	now := u.now().UTC()
	session := &domain.OnboardingSession{
		ID: uuid.New().String(),
		User: domain.UserState{
			ID:    strings.TrimSpace(req.UserID),
			Email: strings.TrimSpace(req.Email),
			Name:  strings.TrimSpace(req.Name),
		},
		Onboarding: domain.NewOnboardingProfile(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := u.repo.Create(ctx, session); err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to create onboarding session: "+err.Error(), err)
	}

	logger.Log.InfoContext(ctx, "onboarding session started", "session_id", session.ID, "user_id", session.User.ID)
	return session, nil
}

func (u *onboardingUsecase) GetSession(ctx context.Context, sessionID string) (*domain.OnboardingSession, error) {
	return u.loadSession(ctx, sessionID)
}

func (u *onboardingUsecase) GetOnboardingStatus(ctx context.Context, sessionID string) (*domain.OnboardingStatus, error) {
	session, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &domain.OnboardingStatus{
		CurrentStep:    session.Onboarding.CurrentStep,
		Completed:      session.Onboarding.Completed,
		RolePreference: session.Onboarding.RolePreference,
		Location:       session.Onboarding.Location,
	}, nil
}

func (u *onboardingUsecase) UpdateActiveAgent(ctx context.Context, sessionID string, req *domain.UpdateActiveAgentRequest) (*domain.OnboardingSession, error) {
	if req == nil {
		return nil, apperror.BadRequest("Agent name is required")
	}
	if err := u.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	session, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.ActiveAgent = strings.TrimSpace(req.AgentName)
	session.UpdatedAt = u.now().UTC()

	if err := u.repo.Update(ctx, session); err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to update onboarding session: "+err.Error(), err)
	}

	return session, nil
}

// ============================================================================
// Session Tool Calls
// ============================================================================

func (u *onboardingUsecase) CallSessionTool(ctx context.Context, sessionID string, name domain.ToolName, input domain.StepInput) (*domain.StepResult, error) {
	session, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result, ok := Dispatch(name, input, session.Onboarding)
	if !ok {
		return nil, unknownTool(name)
	}

	logStepResult(ctx, session.ID, name, result)

	if result.Success {
		profile := session.Onboarding
		profile.Apply(result)

		// The merged profile must still satisfy every enum invariant
		if err := u.validate.Struct(profile); err != nil {
			return nil, apperror.Internal(err)
		}

		session.Onboarding = profile
		if profile.Completed {
			session.User.ProfileComplete = true
		}
		session.UpdatedAt = u.now().UTC()

		if err := u.repo.Update(ctx, session); err != nil {
			return nil, apperror.New(http.StatusInternalServerError, "Failed to save onboarding progress: "+err.Error(), err)
		}
	}

	snapshot := session.Onboarding
	result.StateSnapshot = &snapshot

	return &result, nil
}

func (u *onboardingUsecase) loadSession(ctx context.Context, sessionID string) (*domain.OnboardingSession, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, apperror.BadRequest("Invalid session ID")
	}

	session, err := u.repo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, apperror.NotFound("Onboarding session not found")
		}
		return nil, apperror.New(http.StatusInternalServerError, "Failed to load onboarding session: "+err.Error(), err)
	}

	return session, nil
}

func unknownTool(name domain.ToolName) error {
	return apperror.NotFound("Unknown onboarding tool: " + string(name))
}

func validationError(err error) error {
	return apperror.BadRequest("Validation failed: " + strings.Join(validation.FormatValidationErrors(err), "; "))
}

func logStepResult(ctx context.Context, sessionID string, name domain.ToolName, result domain.StepResult) {
	if result.Success {
		logger.Log.DebugContext(ctx, "onboarding step confirmed",
			"session_id", sessionID, "tool", name, "next_step", result.NextStep)
		return
	}
	logger.Log.InfoContext(ctx, "onboarding step rejected",
		"session_id", sessionID, "tool", name, "error_kind", result.ErrorKind, "error", result.Error)
}
