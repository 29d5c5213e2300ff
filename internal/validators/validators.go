package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domain "github.com/BruksfildServices01/doctor-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/doctor-booking/internal/httperr"
)

const TimeSlotLayout = domain.TimeSlotLayout

var once sync.Once

// Register wires json field names and the custom rules into gin's
// validator. Safe to call more than once.
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonName)
		_ = v.RegisterValidation("timeslot", validateTimeSlot)
	})
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func validateTimeSlot(fl validator.FieldLevel) bool {
	return IsTimeSlot(fl.Field().String())
}

func IsTimeSlot(label string) bool {
	_, err := time.Parse(TimeSlotLayout, label)
	return err == nil
}

// FieldErrors flattens a binding error into one entry per failing field.
// Decode errors never expose Go type names: a wrong JSON type is reported
// against its field, anything else as a malformed body.
func FieldErrors(err error) []httperr.FieldError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make([]httperr.FieldError, 0, len(ve))
		for _, fe := range ve {
			out = append(out, httperr.FieldError{
				Field:   fe.Field(),
				Rule:    fe.Tag(),
				Message: message(fe),
			})
		}
		return out
	}

	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		field := te.Field
		if field == "" {
			field = "body"
		}
		return []httperr.FieldError{{
			Field:   field,
			Rule:    "type",
			Message: fmt.Sprintf("%s must be a JSON %s", field, jsonKind(te.Type)),
		}}
	}

	msg := "request body must be valid JSON"
	if errors.Is(err, io.EOF) {
		msg = "request body is required"
	}
	return []httperr.FieldError{{
		Field:   "body",
		Rule:    "json",
		Message: msg,
	}}
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Ptr:
		return jsonKind(t.Elem())
	default:
		return "object"
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format", fe.Field(), fe.Param())
	case "timeslot":
		return fmt.Sprintf("%s must be a time like 9:00 AM", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
