package validator

import (
	"html"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	validate  = validator.New()
	sanitizer = bluemonday.UGCPolicy()
	stripper  = bluemonday.StrictPolicy()

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	urlPattern  = regexp.MustCompile(`^(https?://[a-zA-Z0-9\-\.]+\.[a-zA-Z]{2,}(:\d+)?(/.*)?|/.*|#.*|mailto:.+|tel:.+)$`)
)

// Init registers the custom rules on the package validator and on gin's binding engine.
func Init() {
	registerCustomValidations(validate)

	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustomValidations(engine)
	}
}

func registerCustomValidations(v *validator.Validate) {
	v.RegisterValidation("slug", validateSlug)
	v.RegisterValidation("no_html", validateNoHTML)
	v.RegisterValidation("link", validateLink)
}

// RegisterStringRule adds a rule whose verdict depends only on the field's string value.
func RegisterStringRule(tag string, fn func(string) bool) {
	rule := func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String())
	}

	validate.RegisterValidation(tag, rule)
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		engine.RegisterValidation(tag, rule)
	}
}

func Validate(s interface{}) error {
	return validate.Struct(s)
}

// SanitizeHTML keeps user-generated markup such as links, lists and emphasis.
func SanitizeHTML(html string) string {
	return sanitizer.Sanitize(html)
}

// SanitizeString strips every tag and returns plain text. Entities are decoded
// again because the result is escaped once more wherever it is rendered.
func SanitizeString(s string) string {
	return strings.TrimSpace(html.UnescapeString(stripper.Sanitize(s)))
}

func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// ValidateLink accepts absolute http(s) URLs, site-relative paths, anchors, mailto and tel links.
func ValidateLink(link string) bool {
	link = strings.TrimSpace(link)
	if strings.HasPrefix(strings.ToLower(link), "javascript:") {
		return false
	}
	return urlPattern.MatchString(link)
}

func validateSlug(fl validator.FieldLevel) bool {
	return IsSlug(fl.Field().String())
}

func validateNoHTML(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return !strings.Contains(value, "<") && !strings.Contains(value, ">")
}

func validateLink(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return ValidateLink(value)
}

func TrimSpaces(s string) string {
	return strings.TrimSpace(s)
}

func NormalizeSpaces(s string) string {
	space := regexp.MustCompile(`\s+`)
	return space.ReplaceAllString(s, " ")
}
