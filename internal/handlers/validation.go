package handlers

import (
	"sitebuilder-backend/internal/constants"
	"sitebuilder-backend/internal/sections"
	"sitebuilder-backend/pkg/validator"
)

// RegisterValidationRules installs the binding rules request types rely on.
func RegisterValidationRules() {
	validator.Init()
	validator.RegisterStringRule("page_kind", constants.IsPageKind)
	validator.RegisterStringRule("section_type", func(value string) bool {
		return sections.Resolve(value) != sections.Unknown
	})
}
