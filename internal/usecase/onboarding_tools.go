package usecase

import (
	"fractional-quest-backend/internal/domain"
)

// stepHandler adapts a StepInput to one of the pure step operations.
// The profile is only read by complete_onboarding.
type stepHandler func(in domain.StepInput, profile domain.OnboardingProfile) domain.StepResult

type stepTool struct {
	descriptor domain.ToolDescriptor
	handle     stepHandler
}

// stepTools lists the step tools in flow order
var stepTools = []stepTool{
	{
		descriptor: domain.ToolDescriptor{
			Name:        domain.ToolConfirmRolePreference,
			Step:        domain.StepRolePreference,
			Description: "Confirm the user's primary executive role preference (cto, cfo, cmo, coo, cro, cpo, chro, ciso, other).",
			Required:    []string{"role"},
		},
		handle: func(in domain.StepInput, _ domain.OnboardingProfile) domain.StepResult {
			return ValidateRolePreference(in.Role)
		},
	},
	{
		descriptor: domain.ToolDescriptor{
			Name:        domain.ToolConfirmTrinity,
			Step:        domain.StepTrinity,
			Description: "Confirm the user's preferred engagement type: fractional, interim, advisory, or all.",
			Required:    []string{"engagement_type"},
		},
		handle: func(in domain.StepInput, _ domain.OnboardingProfile) domain.StepResult {
			return ValidateTrinity(in.EngagementType)
		},
	},
	{
		descriptor: domain.ToolDescriptor{
			Name:        domain.ToolConfirmExperience,
			Step:        domain.StepExperience,
			Description: "Confirm the user's years of executive experience and the industries they have worked in.",
			Required:    []string{"years"},
			Optional:    []string{"industries"},
		},
		handle: func(in domain.StepInput, _ domain.OnboardingProfile) domain.StepResult {
			if in.Years == nil {
				return missingArgument(domain.StepExperience, "years")
			}
			industries := in.Industries
			if industries == nil {
				industries = []string{}
			}
			return ValidateExperience(*in.Years, industries)
		},
	},
	{
		descriptor: domain.ToolDescriptor{
			Name:        domain.ToolConfirmLocation,
			Step:        domain.StepLocation,
			Description: "Confirm the user's location and remote work preference (remote, hybrid, onsite, flexible).",
			Required:    []string{"location", "remote_preference"},
		},
		handle: func(in domain.StepInput, _ domain.OnboardingProfile) domain.StepResult {
			return ValidateLocation(in.Location, in.RemotePreference)
		},
	},
	{
		descriptor: domain.ToolDescriptor{
			Name:        domain.ToolConfirmSearchPrefs,
			Step:        domain.StepSearchPrefs,
			Description: "Confirm the user's target compensation and availability (immediately, 2_weeks, 1_month, ...).",
			Required:    []string{"availability"},
			Optional:    []string{"target_compensation"},
		},
		handle: func(in domain.StepInput, _ domain.OnboardingProfile) domain.StepResult {
			return ValidateSearchPrefs(in.TargetCompensation, in.Availability)
		},
	},
	{
		descriptor: domain.ToolDescriptor{
			Name:        domain.ToolCompleteOnboarding,
			Step:        domain.StepCompleted,
			Description: "Mark onboarding as complete and summarise the user's profile.",
			Required:    []string{},
		},
		handle: func(_ domain.StepInput, profile domain.OnboardingProfile) domain.StepResult {
			return CompleteOnboarding(profile)
		},
	},
}

// stepDispatch maps a tool name to its handler
var stepDispatch = func() map[domain.ToolName]stepHandler {
	m := make(map[domain.ToolName]stepHandler, len(stepTools))
	for _, t := range stepTools {
		m[t.descriptor.Name] = t.handle
	}
	return m
}()

// StepTools returns the step tool descriptors in flow order
func StepTools() []domain.ToolDescriptor {
	out := make([]domain.ToolDescriptor, len(stepTools))
	for i, t := range stepTools {
		out[i] = t.descriptor
	}
	return out
}

// Dispatch runs the named step tool. ok is false for unknown tools.
func Dispatch(name domain.ToolName, in domain.StepInput, profile domain.OnboardingProfile) (domain.StepResult, bool) {
	handle, ok := stepDispatch[name]
	if !ok {
		return domain.StepResult{}, false
	}
	return handle(in, profile), true
}

func missingArgument(step domain.Step, arg string) domain.StepResult {
	return domain.StepResult{
		Step:      step,
		Success:   false,
		Message:   "I still need a bit more information for this step.",
		Error:     "Missing required argument: " + arg,
		ErrorKind: domain.ErrKindMissingArgument,
	}
}
