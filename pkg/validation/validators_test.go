package validation_test

import (
	"errors"
	"testing"

	"fractional-quest-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type enumPayload struct {
	Remote string `validate:"omitempty,work_mode"`
}

type namePayload struct {
	Name string `validate:"valid_name,no_emoji"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	validation.RegisterValidators(v)
	require.NoError(t, validation.RegisterEnum(v, "work_mode", []string{"remote", "hybrid"}))
	return v
}

func TestRegisterEnum(t *testing.T) {
	v := newValidator(t)

	for _, ok := range []string{"remote", "HYBRID", "  Remote ", ""} {
		assert.NoError(t, v.Struct(enumPayload{Remote: ok}), "value %q", ok)
	}

	err := v.Struct(enumPayload{Remote: "office"})
	require.Error(t, err)
	assert.Equal(t, []string{"Remote: Must be one of: remote, hybrid"}, validation.FormatValidationErrors(err))
}

func TestRegisterEnumRejectsEmptyTag(t *testing.T) {
	v := validator.New()
	assert.Error(t, validation.RegisterEnum(v, "", []string{"a"}))
}

func TestNameValidators(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(namePayload{Name: "Jean-Luc O'Neil"}))
	assert.NoError(t, v.Struct(namePayload{Name: ""}))
	assert.Error(t, v.Struct(namePayload{Name: "Robot <script>"}))
	assert.Error(t, v.Struct(namePayload{Name: "Ada ★"}))
}

func TestFormatValidationErrors(t *testing.T) {
	t.Run("Should pass through non validation errors", func(t *testing.T) {
		assert.Equal(t, []string{"boom"}, validation.FormatValidationErrors(errors.New("boom")))
	})

	t.Run("Should use field labels", func(t *testing.T) {
		type payload struct {
			AgentName string `validate:"required"`
		}
		err := newValidator(t).Struct(payload{})
		assert.Equal(t, []string{"Agent name: Required"}, validation.FormatValidationErrors(err))
	})

	t.Run("Should space unknown camel case fields", func(t *testing.T) {
		type payload struct {
			HomeCity string `validate:"max=3"`
		}
		err := newValidator(t).Struct(payload{HomeCity: "Lisbon"})
		assert.Equal(t, []string{"Home City: Maximum 3 characters"}, validation.FormatValidationErrors(err))
	})
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "cto", validation.Normalize("  CTO\t"))
}
