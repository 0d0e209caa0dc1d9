package usecase

import (
	"fmt"
	"strings"

	"fractional-quest-backend/internal/domain"
	"fractional-quest-backend/pkg/validation"
)

// The step operations below are pure: they read only their arguments and
// return a result describing what the caller should store next.

// ============================================================================
// Step 2: Role Preference
// ============================================================================

// ValidateRolePreference confirms the user's primary executive role preference
func ValidateRolePreference(role string) domain.StepResult {
	key := domain.RoleKey(validation.Normalize(role))

	if !key.IsValid() {
		options := roleOptions()
		return domain.StepResult{
			Step:         domain.StepRolePreference,
			Success:      false,
			Message:      "That role isn't one I recognise. Please pick one of the listed roles.",
			Error:        "Invalid role. Valid options: " + strings.Join(options, ", "),
			ErrorKind:    domain.ErrKindInvalidEnumValue,
			Input:        role,
			ValidOptions: options,
			ValidRoles:   options,
		}
	}

	return domain.StepResult{
		Step:           domain.StepRolePreference,
		Success:        true,
		Message:        fmt.Sprintf("Great! I've noted that you're looking for %s roles.", strings.ToUpper(string(key))),
		NextStep:       domain.StepTrinity,
		RolePreference: key,
	}
}

// ============================================================================
// Step 3: Trinity (Engagement Type)
// ============================================================================

// ValidateTrinity confirms the user's preferred engagement type
func ValidateTrinity(engagementType string) domain.StepResult {
	key := domain.TrinityKey(validation.Normalize(engagementType))

	if !key.IsValid() {
		options := trinityOptions()
		return domain.StepResult{
			Step:         domain.StepTrinity,
			Success:      false,
			Message:      "Please choose fractional, interim, advisory, or all.",
			Error:        "Invalid engagement type. Valid options: " + strings.Join(options, ", "),
			ErrorKind:    domain.ErrKindInvalidEnumValue,
			Input:        engagementType,
			ValidOptions: options,
			ValidTypes:   options,
		}
	}

	return domain.StepResult{
		Step:     domain.StepTrinity,
		Success:  true,
		Message:  fmt.Sprintf("Perfect! You're interested in %s roles.", key),
		NextStep: domain.StepExperience,
		Trinity:  key,
	}
}

// ============================================================================
// Step 4: Experience
// ============================================================================

// ValidateExperience confirms years of executive experience and industries.
// Industries are accepted as given, including an empty list.
func ValidateExperience(years int, industries []string) domain.StepResult {
	if years < 0 {
		return domain.StepResult{
			Step:      domain.StepExperience,
			Success:   false,
			Message:   "Please tell me how many years of executive experience you have.",
			Error:     "Years of experience must be a positive number",
			ErrorKind: domain.ErrKindInvalidRange,
			Input:     fmt.Sprintf("%d", years),
		}
	}

	message := fmt.Sprintf("Excellent! %d years of experience.", years)
	if len(industries) > 0 {
		message = fmt.Sprintf("Excellent! %d years of experience across %s.", years, strings.Join(industries, ", "))
	}

	return domain.StepResult{
		Step:            domain.StepExperience,
		Success:         true,
		Message:         message,
		NextStep:        domain.StepLocation,
		YearsExperience: &years,
		Industries:      industries,
	}
}

// ============================================================================
// Step 5: Location
// ============================================================================

// ValidateLocation confirms the user's base location and remote work preference.
// The location itself is free text and is not checked.
func ValidateLocation(location, remotePreference string) domain.StepResult {
	key := domain.RemotePreferenceKey(validation.Normalize(remotePreference))

	if !key.IsValid() {
		options := remoteOptions()
		return domain.StepResult{
			Step:             domain.StepLocation,
			Success:          false,
			Message:          "Please choose remote, hybrid, onsite, or flexible.",
			Error:            "Invalid remote preference. Valid options: " + strings.Join(options, ", "),
			ErrorKind:        domain.ErrKindInvalidEnumValue,
			Input:            remotePreference,
			ValidOptions:     options,
			ValidPreferences: options,
		}
	}

	return domain.StepResult{
		Step:             domain.StepLocation,
		Success:          true,
		Message:          fmt.Sprintf("Got it! Based in %s with %s work preference.", location, key),
		NextStep:         domain.StepSearchPrefs,
		Location:         location,
		RemotePreference: key,
	}
}

// ============================================================================
// Step 6: Search Preferences
// ============================================================================

// ValidateSearchPrefs confirms compensation and availability. Neither is checked.
func ValidateSearchPrefs(targetCompensation *string, availability string) domain.StepResult {
	compensation := "competitive compensation"
	if targetCompensation != nil && *targetCompensation != "" {
		compensation = *targetCompensation
	}

	return domain.StepResult{
		Step:    domain.StepSearchPrefs,
		Success: true,
		Message: fmt.Sprintf("Perfect! You're looking for %s and can start %s.",
			compensation, strings.ReplaceAll(availability, "_", " ")),
		NextStep:           domain.StepCompleted,
		TargetCompensation: targetCompensation,
		Availability:       availability,
	}
}

// ============================================================================
// Complete Onboarding
// ============================================================================

// CompleteOnboarding marks onboarding as complete and summarises the profile.
// It always succeeds; an empty profile yields an empty summary.
func CompleteOnboarding(profile domain.OnboardingProfile) domain.StepResult {
	summary := profile.Summary()

	return domain.StepResult{
		Step:                domain.StepCompleted,
		Success:             true,
		Message:             "Your profile is complete! I can now help you find matching opportunities.",
		NextStep:            domain.StepCompleted,
		ProfileSummary:      &summary,
		OnboardingCompleted: true,
	}
}

func roleOptions() []string {
	keys := domain.ValidRoleKeys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}

func trinityOptions() []string {
	keys := domain.ValidTrinityKeys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}

func remoteOptions() []string {
	keys := domain.ValidRemotePreferenceKeys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}
