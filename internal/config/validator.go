package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	rgbHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// ErrValidation is wrapped by every error Validate returns.
var ErrValidation = errors.New("config: validation failed")

// validatorInstance configures and returns the shared validator.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		_ = v.RegisterValidation("rgbhex", func(fl validator.FieldLevel) bool {
			return rgbHexPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks field constraints, then that every bar lies on the display
// and every step names a known bar.
func Validate(s *Scenario) error {
	if err := validatorInstance().Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, describe(fe))
			}
			return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	for _, b := range s.Bars {
		if b.X+b.Width > s.Display.Width || b.Y+b.Height > s.Display.Height {
			return fmt.Errorf("%w: bar %q at (%d,%d) size %dx%d exceeds display %dx%d",
				ErrValidation, b.Name, b.X, b.Y, b.Width, b.Height, s.Display.Width, s.Display.Height)
		}
	}

	for i, step := range s.Steps {
		for _, a := range step.Set {
			if _, ok := s.Bar(a.Bar); !ok {
				return fmt.Errorf("%w: steps[%d] references unknown bar %q", ErrValidation, i, a.Bar)
			}
		}
	}
	return nil
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Scenario.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %v", field, fe.Param(), fe.Value())
	case "gtfield":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "rgbhex", "rgbhex|eq=none":
		return fmt.Sprintf("%s must be a #rrggbb color, got %q", field, fe.Value())
	case "unique":
		return fmt.Sprintf("%s must have unique %s values", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s=%s (got %v)", field, fe.Tag(), fe.Param(), fe.Value())
	}
}
