package http

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"courseapi/internal/catalog"
	"courseapi/internal/course"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("level_filter", validateLevelFilter)
}

// validateLevelFilter accepts an empty filter, the "All Levels"
// sentinel, or one of the course difficulty bands.
func validateLevelFilter(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	if v == "" || v == catalog.AllLevels {
		return true
	}
	switch course.Level(strings.ToLower(v)) {
	case course.LevelBeginner, course.LevelIntermediate, course.LevelAdvanced, course.LevelExpert, course.LevelMaster:
		return true
	}
	return false
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func ValidateStruct(s interface{}) []ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errors []ValidationError
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s", field, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s", field, param)
		case "level_filter":
			message = fmt.Sprintf("%s must be a known difficulty level", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		errors = append(errors, ValidationError{
			Field:   fieldName,
			Message: message,
		})
	}

	return errors
}
