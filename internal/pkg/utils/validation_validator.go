package utils

import (
	"mycare-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("language_code", validateLanguageCode)
	validate.RegisterValidation("urgency_level", validateUrgencyLevel)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateLanguageCode(fl validator.FieldLevel) bool {
	_, known := constvars.RecognizedLanguages[fl.Field().String()]
	return known
}

func validateUrgencyLevel(fl validator.FieldLevel) bool {
	level := fl.Field().Int()
	return level >= constvars.UrgencyLevelMin && level <= constvars.UrgencyLevelMax
}
