// Package validation fronts every mutation path: it either accepts a fully
// typed input or reports the complete list of violated constraints.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hoangtran/portfolio-api/pkg/apperror"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates every tagged constraint on v and reports all violations
// at once.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.NewInvalidInput("validation failed", err)
	}

	violations := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, describe(fe))
	}
	return apperror.NewValidation(violations)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed constraint '%s'", fe.Field(), fe.Tag())
	}
}

func IsURL(s string) bool {
	return validate.Var(s, "url") == nil
}

func IsEmail(s string) bool {
	return validate.Var(s, "email") == nil
}

// Violations accumulates hand-checked constraints, such as those on
// tri-state patch fields, so they surface together like struct tags do.
type Violations struct {
	list []string
}

func (v *Violations) Add(msg string) {
	v.list = append(v.list, msg)
}

func (v *Violations) Addf(format string, args ...any) {
	v.list = append(v.list, fmt.Sprintf(format, args...))
}

func (v *Violations) Err() error {
	if len(v.list) == 0 {
		return nil
	}
	return apperror.NewValidation(v.list)
}
