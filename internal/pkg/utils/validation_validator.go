package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	hhmmPattern     = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	ymdSlashPattern = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("hhmm", validateHHMM)
	validate.RegisterValidation("ymd_slash", validateYMDSlash)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateHHMM(fl validator.FieldLevel) bool {
	return hhmmPattern.MatchString(fl.Field().String())
}

func validateYMDSlash(fl validator.FieldLevel) bool {
	return ymdSlashPattern.MatchString(fl.Field().String())
}
