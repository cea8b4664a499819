package task

import (
	"github.com/go-playground/validator/v10"

	"github.com/vazifa-app/vazifa/core"
)

var (
	statusTag  = "taskstatus"
	statusText = "invalid task status"

	priorityTag  = "taskpriority"
	priorityText = "invalid task priority"
)

func init() {
	_ = core.Validate.RegisterValidation(statusTag, statusValidation)
	core.RegisterCustomTranslation(statusTag, statusText)

	_ = core.Validate.RegisterValidation(priorityTag, priorityValidation)
	core.RegisterCustomTranslation(priorityTag, priorityText)
}

func statusValidation(fl validator.FieldLevel) bool {
	return core.ContainsString(AllStatuses, fl.Field().String())
}

func priorityValidation(fl validator.FieldLevel) bool {
	return core.ContainsString(AllPriorities, fl.Field().String())
}
