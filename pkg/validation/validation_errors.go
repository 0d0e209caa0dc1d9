package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Session fields
	"UserID":    "User ID",
	"Email":     "Email",
	"Name":      "Name",
	"AgentName": "Agent name",

	// Onboarding profile fields
	"CurrentStep":      "Current step",
	"RolePreference":   "Role preference",
	"Trinity":          "Engagement type",
	"YearsExperience":  "Years of experience",
	"RemotePreference": "Remote preference",
}

// enumValues records the allowed values of tags registered through RegisterEnum
var (
	enumValues   = map[string][]string{}
	enumValuesMu sync.RWMutex
)

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	tag := e.Tag()
	param := e.Param()

	enumValuesMu.RLock()
	allowed, isEnum := enumValues[tag]
	enumValuesMu.RUnlock()

	if isEnum {
		return fmt.Sprintf("%s: Must be one of: %s", label, strings.Join(allowed, ", "))
	}

	switch tag {
	case "required":
		return fmt.Sprintf("%s: Required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Minimum %s characters", label, param)
		}
		return fmt.Sprintf("%s: Minimum %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Maximum %s characters", label, param)
		}
		return fmt.Sprintf("%s: Maximum %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s: Must be one of: %s", label, strings.Join(strings.Split(param, " "), ", "))

	case "email":
		return fmt.Sprintf("%s: Invalid email format", label)

	case "valid_name":
		return fmt.Sprintf("%s: Only letters, spaces, and common punctuation (. ' - /) are allowed", label)

	case "no_emoji":
		return fmt.Sprintf("%s: Must not contain emoji or special symbols", label)

	default:
		return fmt.Sprintf("%s: Validation failed (%s)", label, tag)
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
