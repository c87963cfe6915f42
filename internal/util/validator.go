package util

import (
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"sumstats.dev/explorer/internal/constant"
	"sumstats.dev/explorer/internal/model"
)

// choiceLists are the filter values a client may select, by validation parameter.
var choiceLists = lo.Associate(constant.Filters, func(f model.FilterChoice) (string, []string) {
	return f.Name, f.Options
})

func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("choice", choice)

	return validate
}

// choice accepts a value listed in the choice list named by the tag parameter.
// The empty string is accepted only when the list offers it.
func choice(fl validator.FieldLevel) bool {
	list, ok := choiceLists[fl.Param()]
	if !ok {
		return false
	}
	return lo.Contains(list, fl.Field().String())
}
