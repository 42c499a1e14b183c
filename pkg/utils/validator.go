package utils

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// colorHexPattern accepts values ending in "#" plus exactly six hex
// digits. The match is anchored at the end only: "#1234567" fails, while
// junk before the "#" is irrelevant.
var colorHexPattern = regexp.MustCompile(`#[0-9a-fA-F]{6}$`)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Label color rule, e.g. "#aabbcc".
	_ = validate.RegisterValidation("colorhex", func(fl validator.FieldLevel) bool {
		return colorHexPattern.MatchString(fl.Field().String())
	})
}

func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors flattens a validator error into field -> failed tag.
func GetValidationErrors(err error) map[string]string {
	result := make(map[string]string)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			result[fe.Field()] = fe.Tag()
		}
	}

	return result
}
