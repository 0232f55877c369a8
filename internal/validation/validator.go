package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Message is the summary returned alongside field errors
const Message = "The given data was invalid."

// Error carries field-level validation failures keyed by request field path
// (dot separated, e.g. "working_days.1" or "inventory_stock.reorder_level").
type Error struct {
	Fields map[string][]string `json:"errors"`
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("validation failed on %s", strings.Join(keys, ", "))
}

// Add records one message for field
func (e *Error) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Field builds an Error holding a single message
func Field(field, message string) *Error {
	e := &Error{}
	e.Add(field, message)
	return e
}

// Validator adapts go-playground/validator to echo.Validator
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their JSON names
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate implements echo.Validator
func (cv *Validator) Validate(i interface{}) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	out := &Error{}
	for _, fe := range fieldErrors {
		key := fieldKey(fe.Namespace())
		out.Add(key, message(fe, key))
	}
	return out
}

var indexPattern = regexp.MustCompile(`\[(\d+)\]`)

// fieldKey drops the root struct and any embedded struct names (which keep
// their Go names, JSON names are lower case) and rewrites slice indexes to
// dot notation.
func fieldKey(namespace string) string {
	namespace = indexPattern.ReplaceAllString(namespace, ".$1")
	parts := strings.Split(namespace, ".")
	kept := make([]string, 0, len(parts))
	for i, p := range parts {
		if i == 0 || p == "" {
			continue
		}
		if r := []rune(p)[0]; unicode.IsUpper(r) {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, ".")
}

func message(fe validator.FieldError, key string) string {
	label := "The " + strings.ReplaceAll(key, "_", " ") + " field"

	switch fe.Tag() {
	case "required":
		return label + " is required."
	case "email":
		return label + " must be a valid email address."
	case "datetime":
		switch fe.Param() {
		case "15:04":
			return label + " must match the format HH:MM."
		case "2006-01-02":
			return label + " must be a valid date in YYYY-MM-DD format."
		default:
			return label + " must be a valid RFC 3339 timestamp."
		}
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid; allowed: %s.",
			strings.ReplaceAll(key, "_", " "), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte", "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s.", label, fe.Param())
	case "lte", "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must not be greater than %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("%s must not be greater than %s.", label, fe.Param())
	case "unique":
		return label + " has a duplicate value."
	default:
		return label + " is invalid."
	}
}
