package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"cookbook/apperr"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var langCodeRe = regexp.MustCompile(`^[a-z]{2,3}(-[A-Za-z]{2,4})?$`)

// IsLanguageCode accepts short codes such as "fr", "en-GB" or "pt-br".
func IsLanguageCode(s string) bool {
	return langCodeRe.MatchString(s)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	v.RegisterValidation("langcode", func(fl validator.FieldLevel) bool {
		return IsLanguageCode(fl.Field().String())
	})
	v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	})
	return v
}

// check runs the struct tags and folds any failure into a single KindInvalid error.
func check(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Invalid("Invalid request", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return &apperr.Error{Kind: apperr.KindInvalid, Message: strings.Join(msgs, "; ")}
}

func describe(fe validator.FieldError) string {
	field := fieldPath(fe.Namespace())
	switch fe.Tag() {
	case "required", "required_without":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must not be empty", field)
	case "url":
		return field + " must be a URL"
	case "uuid":
		return field + " must be a UUID"
	case "langcode":
		return fmt.Sprintf("%s must be a language code, got '%v'", field, fe.Value())
	case "objectid":
		return fmt.Sprintf("%s must be an ingredient ID, got '%v'", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed on '%s'", field, fe.Tag())
	}
}

// fieldPath drops the leading struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// CleanSet trims entries, drops blanks and duplicates, keeping first-seen order.
func CleanSet(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
