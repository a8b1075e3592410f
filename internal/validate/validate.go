package validate

import (
	"strings"

	"github.com/gallerykit/portal/internal"
	"github.com/go-playground/validator/v10"
)

// Validator singleton object
var validate *validator.Validate

func init() {
	New()
}

// New initializes singleton object
func New() *validator.Validate {
	if validate != nil {
		return validate
	}
	validate = validator.New()
	return validate
}

// Check validates a structs exposed fields, and automatically validates nested structs, unless otherwise specified.
//
// The first failing field is surfaced as an InvalidArgument error with a
// user-renderable message.
func Check(o interface{}) error {
	e := validate.Struct(o)
	if e != nil {
		for _, ev := range e.(validator.ValidationErrors) {
			ns := ev.Field()
			sn := ev.StructNamespace()
			return internal.NewErrorf(internal.ErrorCodeInvalidArgument, "[%s] invalid %s provided: %v", sn, strings.ToLower(ns), ev.Value())
		}
	}
	return nil
}

// Var validates a single variable using tag style validation. eg. var i int validate.Var(i, "gt=1,lt=10")
func Var(o interface{}, tag string) error {
	if err := validate.Var(o, tag); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "invalid value provided")
	}
	return nil
}
