package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDifficulty(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("difficulty", validateDifficulty))

	type payload struct {
		Difficulty string `validate:"difficulty"`
	}

	tests := []struct {
		name       string
		difficulty string
		valid      bool
	}{
		{"easy", "easy", true},
		{"medium", "medium", true},
		{"difficult", "difficult", true},
		{"capitalized", "Easy", false},
		{"unknown level", "extreme", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(payload{Difficulty: tt.difficulty})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRegisterCustomValidators(t *testing.T) {
	t.Run("does not panic", func(t *testing.T) {
		assert.NotPanics(t, RegisterCustomValidators)
	})
}
