package model

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validate is the package-level validator instance used for struct validation.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
		return identifierPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// problemFields holds the constrained subset of a Problem's fields.
type problemFields struct {
	FunctionName string      `json:"function_name" validate:"required,identifier"`
	Parameters   []Parameter `json:"parameters" validate:"unique=Name,dive"`
}

func (f *problemFields) validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Reason: err.Error()}
	}

	fe := verrs[0]
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	switch fe.Tag() {
	case "required":
		return &ValidationError{Field: field, Reason: "must not be empty"}
	case "identifier":
		return &ValidationError{Field: field, Reason: "must be a valid identifier"}
	case "unique":
		return &ValidationError{Field: field, Reason: "duplicate parameter name " + quote(duplicateName(f.Parameters))}
	default:
		return &ValidationError{Field: field, Reason: "failed " + fe.Tag() + " check"}
	}
}

func duplicateName(params []Parameter) string {
	seen := make(map[string]struct{}, len(params))
	for _, p := range params {
		if _, ok := seen[p.Name]; ok {
			return p.Name
		}
		seen[p.Name] = struct{}{}
	}
	return ""
}

func quote(s string) string { return `"` + s + `"` }
