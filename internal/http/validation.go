package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Field names in error reports use
// the json tag rather than the Go field name.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindStrict decodes the JSON request body into obj, rejecting unknown extra
// fields, then validates it. Every mutating endpoint binds its body through
// this single contract before any handler logic runs. On failure it writes a
// 400 with a field-level error report and returns false.
func bindStrict(c *gin.Context, obj any) bool {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(obj); err != nil {
		respondValidationError(c, map[string][]string{"body": {decodeErrorMessage(err)}})
		return false
	}

	if err := validate.Struct(obj); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			respondValidationError(c, fieldErrorReport(fieldErrs))
			return false
		}
		respondBadRequest(c, "invalid request body")
		return false
	}

	return true
}

func decodeErrorMessage(err error) string {
	msg := err.Error()
	if strings.Contains(msg, "unknown field") {
		return msg
	}
	return "invalid JSON body"
}

// fieldErrorReport turns validator errors into a field → messages map.
func fieldErrorReport(fieldErrs validator.ValidationErrors) map[string][]string {
	report := make(map[string][]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		report[fe.Field()] = append(report[fe.Field()], fieldErrorMessage(fe))
	}
	return report
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("should have a minimum length of %s characters", fe.Param())
		}
		return fmt.Sprintf("should be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("should be greater than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("should be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
