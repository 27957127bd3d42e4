package config

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/v2"
)

// Validate checks cfg against the configuration rules.
// It returns one "FIELD: message" line per problem, or nil if cfg is valid.
func Validate(cfg *Configuration) []string {
	err := newValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s: %s", fe.Field(), fieldMessage(fe)))
	}
	return problems
}

// newValidator returns a validator that reports fields by their config key.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("koanf")
	})
	return v
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " cannot be empty"
	case "alphanum":
		return fe.Field() + " must contain only alphanumeric characters"
	case "min":
		if fe.Field() == KeyBusyTime {
			return fmt.Sprintf("%s must be at least %s second", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed the '%s' rule", fe.Field(), fe.Tag())
	}
}

// checkTypes reports keys whose raw value has the wrong JSON type.
func checkTypes(k *koanf.Koanf) []string {
	var problems []string

	for _, key := range []string{KeyAPIKey, KeyUserKey} {
		if !k.Exists(key) {
			continue
		}
		if _, ok := k.Get(key).(string); !ok {
			problems = append(problems, fmt.Sprintf("%s: %s must be a string", key, key))
		}
	}

	for _, key := range []string{KeyBusyTime, KeyHistoryLimit} {
		n, ok := toNumber(k.Get(key))
		switch {
		case !ok:
			problems = append(problems, fmt.Sprintf("%s: %s must be a number", key, key))
		case key == KeyHistoryLimit && n != math.Trunc(n):
			problems = append(problems, fmt.Sprintf("%s: %s must be a whole number", key, key))
		}
	}

	return problems
}

func toNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
