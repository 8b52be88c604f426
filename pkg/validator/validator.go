package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/debateclub/arena/internal/domain/entities"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance with debate-specific rules
func New() *CustomValidator {
	v := validator.New()

	// debateformat: one of the known timing profiles
	_ = v.RegisterValidation("debateformat", func(fl validator.FieldLevel) bool {
		return entities.DebateFormat(fl.Field().String()).IsValid()
	})

	// debatemode: team or solo
	_ = v.RegisterValidation("debatemode", func(fl validator.FieldLevel) bool {
		mode := entities.DebateMode(fl.Field().String())
		return mode == entities.DebateModeTeam || mode == entities.DebateModeSolo
	})

	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
