// Package validation holds the client-side form schemas. A form is checked
// before anything is sent; failures come back as Errors keyed by the JSON
// field name, one message per field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Errors maps a field's JSON name to its message.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Form is implemented by every schema in this package. messages maps
// "field.tag" to the text shown when that rule fails.
type Form interface {
	messages() map[string]string
}

var (
	usernameRe       = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	githubUsernameRe = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

	// now is replaced in tests.
	now = time.Now

	engineOnce sync.Once
	engine     *validator.Validate
)

func validate() *validator.Validate {
	engineOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})

		_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernameRe.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("ghuser", func(fl validator.FieldLevel) bool {
			return githubUsernameRe.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("future", func(fl validator.FieldLevel) bool {
			d, err := time.Parse(DateLayout, fl.Field().String())
			if err != nil {
				return false
			}
			return !d.Before(now())
		})

		engine = v
	})
	return engine
}

// Validate checks form against its schema. It returns nil, Errors, or an
// error when form is not a struct the validator understands.
func Validate(form Form) error {
	err := validate().Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := form.messages()
	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		if msg, ok := msgs[field+"."+fe.Tag()]; ok {
			out[field] = msg
		} else {
			out[field] = fmt.Sprintf("%s is invalid", field)
		}
	}
	return out
}

// FieldForServerError picks the registration field a server error belongs
// to: "username" or "email" when the message mentions one, "password"
// otherwise. The match is case-insensitive.
func FieldForServerError(msg string) string {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "username"):
		return "username"
	case strings.Contains(lower, "email"):
		return "email"
	default:
		return "password"
	}
}
