package user

import (
	"github.com/go-playground/validator/v10"

	"github.com/vazifa-app/vazifa/core"
)

var (
	roleTag  = "role"
	roleText = "invalid role"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(roleTag, roleValidation)
	core.RegisterCustomTranslation(roleTag, roleText)
}

// roleValidation checks that the provided role is one of AllRoles.
func roleValidation(fl validator.FieldLevel) bool {
	return core.ContainsString(AllRoles, fl.Field().String())
}
