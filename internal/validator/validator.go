// Package validator registers custom request validators.
package validator

import (
	"tourbook/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validateDifficulty checks that a tour difficulty is one of the known levels.
func validateDifficulty(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyDifficult:
		return true
	}
	return false
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("difficulty", validateDifficulty)
	}
}
