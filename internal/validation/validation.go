// Package validation contains the request pipes: binding of route
// parameters and bodies, and rule checks on the bound values.
//
// It uses the `validator` library to enforce rules defined in struct
// tags and turns failures into field errors the client can understand.
package validation

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// TagPositiveInt is the struct tag rule accepting integers strictly
// greater than zero.
const TagPositiveInt = "positive_int"

// validate is shared; validator caches struct metadata and is safe for
// concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation(TagPositiveInt, isPositiveInt)
	return v
}

// isPositiveInt accepts signed and unsigned integers > 0.
func isPositiveInt(fl validator.FieldLevel) bool {
	field := fl.Field()

	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return field.Int() > 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return field.Uint() > 0
	default:
		return false
	}
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return validate.Struct(s)
}
