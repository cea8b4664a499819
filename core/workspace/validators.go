package workspace

import (
	"github.com/go-playground/validator/v10"

	"github.com/vazifa-app/vazifa/core"
)

var (
	memberRoleTag  = "memberrole"
	memberRoleText = "invalid workspace member role"
)

func init() {
	_ = core.Validate.RegisterValidation(memberRoleTag, memberRoleValidation)
	core.RegisterCustomTranslation(memberRoleTag, memberRoleText)
}

func memberRoleValidation(fl validator.FieldLevel) bool {
	return core.ContainsString(AllMemberRoles, fl.Field().String())
}
