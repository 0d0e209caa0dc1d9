package domain

import (
	"context"
	"errors"
	"time"
)

// ============================================================================
// Onboarding Steps
// ============================================================================

// Step identifies a stage in the six-step onboarding flow
type Step string

const (
	StepIntro          Step = "intro"
	StepRolePreference Step = "role_preference"
	StepTrinity        Step = "trinity"
	StepExperience     Step = "experience"
	StepLocation       Step = "location"
	StepSearchPrefs    Step = "search_prefs"
	StepCompleted      Step = "completed"
)

// OnboardingSteps returns the fixed step sequence in flow order
func OnboardingSteps() []Step {
	return []Step{
		StepIntro,
		StepRolePreference,
		StepTrinity,
		StepExperience,
		StepLocation,
		StepSearchPrefs,
		StepCompleted,
	}
}

// Index returns the position of the step in the flow, or -1 if unknown
func (s Step) Index() int {
	for i, step := range OnboardingSteps() {
		if s == step {
			return i
		}
	}
	return -1
}

// IsValid checks if the step is part of the flow
func (s Step) IsValid() bool {
	return s.Index() >= 0
}

// After reports whether s comes later in the flow than other
func (s Step) After(other Step) bool {
	return s.Index() > other.Index()
}

// ============================================================================
// Role Preference (Step 2)
// ============================================================================

// RoleKey represents valid executive role options
type RoleKey string

const (
	RoleCTO   RoleKey = "cto"   // Chief Technology Officer
	RoleCFO   RoleKey = "cfo"   // Chief Financial Officer
	RoleCMO   RoleKey = "cmo"   // Chief Marketing Officer
	RoleCOO   RoleKey = "coo"   // Chief Operating Officer
	RoleCRO   RoleKey = "cro"   // Chief Revenue Officer
	RoleCPO   RoleKey = "cpo"   // Chief Product Officer
	RoleCHRO  RoleKey = "chro"  // Chief Human Resources Officer
	RoleCISO  RoleKey = "ciso"  // Chief Information Security Officer
	RoleOther RoleKey = "other" // Other C-level or executive role
)

// ValidRoleKeys returns all valid role keys
func ValidRoleKeys() []RoleKey {
	return []RoleKey{RoleCTO, RoleCFO, RoleCMO, RoleCOO, RoleCRO, RoleCPO, RoleCHRO, RoleCISO, RoleOther}
}

// IsValid checks if the role key is valid
func (k RoleKey) IsValid() bool {
	for _, valid := range ValidRoleKeys() {
		if k == valid {
			return true
		}
	}
	return false
}

// ============================================================================
// Trinity / Engagement Type (Step 3)
// ============================================================================

// TrinityKey represents valid engagement type options
type TrinityKey string

const (
	TrinityFractional TrinityKey = "fractional" // Part-time, ongoing engagement
	TrinityInterim    TrinityKey = "interim"    // Full-time, temporary engagement
	TrinityAdvisory   TrinityKey = "advisory"   // Strategic advisor role
	TrinityAll        TrinityKey = "all"        // Open to all types
)

// ValidTrinityKeys returns all valid engagement type keys
func ValidTrinityKeys() []TrinityKey {
	return []TrinityKey{TrinityFractional, TrinityInterim, TrinityAdvisory, TrinityAll}
}

// IsValid checks if the engagement type key is valid
func (k TrinityKey) IsValid() bool {
	for _, valid := range ValidTrinityKeys() {
		if k == valid {
			return true
		}
	}
	return false
}

// ============================================================================
// Remote Preference (Step 5)
// ============================================================================

// RemotePreferenceKey represents valid work arrangement options
type RemotePreferenceKey string

const (
	RemoteOnly     RemotePreferenceKey = "remote"   // Fully remote only
	RemoteHybrid   RemotePreferenceKey = "hybrid"   // Mix of remote and onsite
	RemoteOnsite   RemotePreferenceKey = "onsite"   // In-person only
	RemoteFlexible RemotePreferenceKey = "flexible" // Open to any arrangement
)

// ValidRemotePreferenceKeys returns all valid remote preference keys
func ValidRemotePreferenceKeys() []RemotePreferenceKey {
	return []RemotePreferenceKey{RemoteOnly, RemoteHybrid, RemoteOnsite, RemoteFlexible}
}

// IsValid checks if the remote preference key is valid
func (k RemotePreferenceKey) IsValid() bool {
	for _, valid := range ValidRemotePreferenceKeys() {
		if k == valid {
			return true
		}
	}
	return false
}

// ============================================================================
// Onboarding Profile
// ============================================================================

// OnboardingProfile tracks progress through the onboarding flow.
// It is owned by the caller; step operations never mutate it.
type OnboardingProfile struct {
	CurrentStep        Step                `json:"current_step" validate:"required,onboarding_step"`
	Completed          bool                `json:"completed"`
	RolePreference     RoleKey             `json:"role_preference,omitempty" validate:"omitempty,executive_role"`
	Trinity            TrinityKey          `json:"trinity,omitempty" validate:"omitempty,engagement_type"`
	YearsExperience    *int                `json:"years_experience,omitempty" validate:"omitempty,min=0"`
	Industries         []string            `json:"industries"`
	Location           string              `json:"location,omitempty"`
	RemotePreference   RemotePreferenceKey `json:"remote_preference,omitempty" validate:"omitempty,remote_preference"`
	TargetCompensation *string             `json:"target_compensation,omitempty"`
	Availability       string              `json:"availability,omitempty"`
}

// NewOnboardingProfile returns a profile positioned at the intro step
func NewOnboardingProfile() OnboardingProfile {
	return OnboardingProfile{
		CurrentStep: StepIntro,
		Industries:  []string{},
	}
}

// Apply merges a successful step result into the profile.
// Failed results are ignored and CurrentStep never moves backward.
func (p *OnboardingProfile) Apply(r StepResult) {
	if !r.Success {
		return
	}

	switch r.Step {
	case StepRolePreference:
		p.RolePreference = r.RolePreference
	case StepTrinity:
		p.Trinity = r.Trinity
	case StepExperience:
		if r.YearsExperience != nil {
			years := *r.YearsExperience
			p.YearsExperience = &years
		}
		p.Industries = append([]string{}, r.Industries...)
	case StepLocation:
		p.Location = r.Location
		p.RemotePreference = r.RemotePreference
	case StepSearchPrefs:
		p.TargetCompensation = cloneString(r.TargetCompensation)
		p.Availability = r.Availability
	case StepCompleted:
		p.Completed = true
	}

	if r.NextStep.After(p.CurrentStep) {
		p.CurrentStep = r.NextStep
	}
}

// Summary assembles a profile summary from whatever fields were collected
func (p OnboardingProfile) Summary() ProfileSummary {
	industries := p.Industries
	if industries == nil {
		industries = []string{}
	}

	return ProfileSummary{
		Role:           p.RolePreference,
		EngagementType: p.Trinity,
		Experience: ExperienceSummary{
			Years:      p.YearsExperience,
			Industries: industries,
		},
		Location: LocationSummary{
			Base:             p.Location,
			RemotePreference: p.RemotePreference,
		},
		SearchPreferences: SearchPreferencesSummary{
			Compensation: p.TargetCompensation,
			Availability: p.Availability,
		},
	}
}

// ProfileSummary is the nested view returned when onboarding completes
type ProfileSummary struct {
	Role              RoleKey                  `json:"role"`
	EngagementType    TrinityKey               `json:"engagement_type"`
	Experience        ExperienceSummary        `json:"experience"`
	Location          LocationSummary          `json:"location"`
	SearchPreferences SearchPreferencesSummary `json:"search_preferences"`
}

type ExperienceSummary struct {
	Years      *int     `json:"years"`
	Industries []string `json:"industries"`
}

type LocationSummary struct {
	Base             string              `json:"base"`
	RemotePreference RemotePreferenceKey `json:"remote_preference"`
}

type SearchPreferencesSummary struct {
	Compensation *string `json:"compensation"`
	Availability string  `json:"availability"`
}

// ============================================================================
// Step Input & Result
// ============================================================================

// StepInput carries the arguments of a step tool call.
// Each tool reads only the fields it needs.
type StepInput struct {
	Role               string   `json:"role,omitempty"`
	EngagementType     string   `json:"engagement_type,omitempty"`
	Years              *int     `json:"years,omitempty"`
	Industries         []string `json:"industries,omitempty"`
	Location           string   `json:"location,omitempty"`
	RemotePreference   string   `json:"remote_preference,omitempty"`
	TargetCompensation *string  `json:"target_compensation,omitempty"`
	Availability       string   `json:"availability,omitempty"`
}

// ErrorKind classifies a failed step result
type ErrorKind string

const (
	ErrKindInvalidEnumValue ErrorKind = "invalid_enum_value"
	ErrKindInvalidRange     ErrorKind = "invalid_range"
	ErrKindMissingArgument  ErrorKind = "missing_argument"
)

// StepResult is the uniform shape returned by every step operation.
// Failures are reported here, never as Go errors.
type StepResult struct {
	Step      Step      `json:"step"`
	Success   bool      `json:"success"`
	Message   string    `json:"message,omitempty"`
	NextStep  Step      `json:"next_step,omitempty"`
	Error     string    `json:"error,omitempty"`
	ErrorKind ErrorKind `json:"error_kind,omitempty"`
	Input     string    `json:"input,omitempty"`

	// Validated fields
	RolePreference     RoleKey             `json:"role_preference,omitempty"`
	Trinity            TrinityKey          `json:"trinity,omitempty"`
	YearsExperience    *int                `json:"years_experience,omitempty"`
	Industries         []string            `json:"industries"`
	Location           string              `json:"location,omitempty"`
	RemotePreference   RemotePreferenceKey `json:"remote_preference,omitempty"`
	TargetCompensation *string             `json:"target_compensation,omitempty"`
	Availability       string              `json:"availability,omitempty"`

	// Re-prompt options
	ValidOptions     []string `json:"valid_options,omitempty"`
	ValidRoles       []string `json:"valid_roles,omitempty"`
	ValidTypes       []string `json:"valid_types,omitempty"`
	ValidPreferences []string `json:"valid_preferences,omitempty"`

	// Completion
	ProfileSummary      *ProfileSummary `json:"profile_summary,omitempty"`
	OnboardingCompleted bool            `json:"onboarding_completed,omitempty"`

	// Set by the session layer after the result is applied
	StateSnapshot *OnboardingProfile `json:"state_snapshot,omitempty"`
}

// ============================================================================
// Tools
// ============================================================================

// ToolName identifies an operation a conversational driver can invoke
type ToolName string

const (
	ToolConfirmRolePreference ToolName = "confirm_role_preference"
	ToolConfirmTrinity        ToolName = "confirm_trinity"
	ToolConfirmExperience     ToolName = "confirm_experience"
	ToolConfirmLocation       ToolName = "confirm_location"
	ToolConfirmSearchPrefs    ToolName = "confirm_search_prefs"
	ToolCompleteOnboarding    ToolName = "complete_onboarding"

	// Orchestrator tools
	ToolGetOnboardingStatus ToolName = "get_onboarding_status"
	ToolUpdateActiveAgent   ToolName = "update_active_agent"
)

// ToolDescriptor describes a step tool for drivers and documentation
type ToolDescriptor struct {
	Name        ToolName `json:"name"`
	Step        Step     `json:"step"`
	Description string   `json:"description"`
	Required    []string `json:"required"`
	Optional    []string `json:"optional,omitempty"`
}

// ============================================================================
// Session
// ============================================================================

var ErrSessionNotFound = errors.New("onboarding session not found")

// UserState holds identity information for a session
type UserState struct {
	ID              string `json:"id,omitempty"`
	Email           string `json:"email,omitempty"`
	Name            string `json:"name,omitempty"`
	ProfileComplete bool   `json:"profile_complete"`
}

// OnboardingSession is the driver-owned record results are merged into
type OnboardingSession struct {
	ID          string            `json:"id"`
	User        UserState         `json:"user"`
	Onboarding  OnboardingProfile `json:"onboarding"`
	ActiveAgent string            `json:"active_agent,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// OnboardingStatus is the orchestrator view of a session
type OnboardingStatus struct {
	CurrentStep    Step    `json:"current_step"`
	Completed      bool    `json:"completed"`
	RolePreference RoleKey `json:"role_preference,omitempty"`
	Location       string  `json:"location,omitempty"`
}

// StartSessionRequest is the payload for opening an onboarding session
type StartSessionRequest struct {
	UserID string `json:"user_id" validate:"omitempty,max=128"`
	Email  string `json:"email" validate:"omitempty,email"`
	Name   string `json:"name" validate:"omitempty,max=200,valid_name,no_emoji"`
}

// UpdateActiveAgentRequest switches the agent shown in the UI
type UpdateActiveAgentRequest struct {
	AgentName string `json:"agent_name" validate:"required,max=64"`
}

// ============================================================================
// Repository Interface
// ============================================================================

type SessionRepository interface {
	Create(ctx context.Context, session *OnboardingSession) error
	GetByID(ctx context.Context, id string) (*OnboardingSession, error)
	Update(ctx context.Context, session *OnboardingSession) error
}

// ============================================================================
// Usecase Interface
// ============================================================================

type OnboardingUsecase interface {
	// Tool catalogue in flow order
	Tools() []ToolDescriptor

	// Stateless step call; the caller merges the result
	CallTool(ctx context.Context, name ToolName, input StepInput) (*StepResult, error)

	// Session management for drivers that do not keep their own state
	StartSession(ctx context.Context, req *StartSessionRequest) (*OnboardingSession, error)
	GetSession(ctx context.Context, sessionID string) (*OnboardingSession, error)
	GetOnboardingStatus(ctx context.Context, sessionID string) (*OnboardingStatus, error)
	UpdateActiveAgent(ctx context.Context, sessionID string, req *UpdateActiveAgentRequest) (*OnboardingSession, error)

	// Step call applied to a stored session
	CallSessionTool(ctx context.Context, sessionID string, name ToolName, input StepInput) (*StepResult, error)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
