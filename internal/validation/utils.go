package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/deppfellow/cats-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable is implemented by request payload types that know how to
// validate themselves, usually by calling Struct(req).
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a validation issue that cannot be
// expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// ParamTypeMessage is returned when a path parameter cannot be coerced
// into the field type.
const ParamTypeMessage = "Validation failed (numeric string is expected)"

var binder = &echo.DefaultBinder{}

// integerParam is the accepted form of an integer route parameter:
// an optional minus sign and decimal digits only.
var integerParam = regexp.MustCompile(`^-?\d+$`)

// BindAndValidate runs the pipes for a request:
//  1. integer path parameters must be plain decimal strings
//  2. path parameters are coerced into payload fields (`param` tags)
//  3. payload.Validate() applies the rules
//
// Request bodies are never read here; routes that need one bind it
// themselves. Every failure is a 400 *errs.HTTPError, returned before
// the handler runs. payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if !integerParamsWellFormed(c, payload) {
		return errs.NewBadRequestError(ParamTypeMessage, false, nil, nil)
	}

	if err := binder.BindPathParams(c, payload); err != nil {
		return errs.NewBadRequestError(ParamTypeMessage, false, nil, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}

	return nil
}

// integerParamsWellFormed rejects forms strconv would accept but a
// numeric string is not, such as "+5".
func integerParamsWellFormed(c echo.Context, payload any) bool {
	v := reflect.ValueOf(payload)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return true
	}

	typ := v.Elem().Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		name := field.Tag.Get("param")
		if name == "" {
			continue
		}

		switch field.Type.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if !integerParam.MatchString(c.Param(name)) {
				return false
			}
		}
	}
	return true
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		var customValidationErrors CustomValidationErrors
		if errors.As(err, &customValidationErrors) {
			for _, err := range customValidationErrors {
				fieldErrors = append(fieldErrors, errs.FieldError{
					Field: err.Field,
					Error: err.Message,
				})
			}
			return "Validation failed", fieldErrors
		}

		// Neither kind: surface the message as a single payload error.
		return errs.ValidationError(err).Message, []errs.FieldError{{Field: "payload", Error: err.Error()}}
	}

	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case TagPositiveInt:
			msg = "must be a positive integer"

		case "gt":
			msg = fmt.Sprintf("must be greater than %s", err.Param())

		case "min":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
