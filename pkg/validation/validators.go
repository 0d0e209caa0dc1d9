package validation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Allow letters, numbers, spaces, and common professional punctuation: . ' - / & ( ) ,
var nameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),-]+$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
}

// RegisterEnum registers tag as a validator accepting only the allowed values.
// Values are compared case-insensitively after trimming whitespace.
func RegisterEnum(v *validator.Validate, tag string, allowed []string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[Normalize(a)] = struct{}{}
	}

	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		_, ok := set[Normalize(fl.Field().String())]
		return ok
	})
	if err != nil {
		return err
	}

	enumValuesMu.Lock()
	enumValues[tag] = allowed
	enumValuesMu.Unlock()
	return nil
}

// Normalize lowercases and trims a value before enum comparison
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidName validates that a string contains only valid name characters
// Rejects most special symbols
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, r := range val {
		// Supplementary planes are mostly emoji/symbols
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) { // Symbol, other / Symbol, modifier
			return false
		}
	}
	return true
}
