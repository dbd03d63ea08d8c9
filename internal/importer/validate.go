package importer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/go-playground/validator/v10"
)

// ErrValidation is wrapped by every shape validation failure.
var ErrValidation = errors.New("validation failed")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("position", func(fl validator.FieldLevel) bool {
		_, err := domain.ParsePosition(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks the shape of an import value and returns every problem
// joined into one error, or nil.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	errs := make([]error, 0, len(verrs))
	for _, e := range verrs {
		errs = append(errs, fmt.Errorf("%w: %s", ErrValidation, describe(e)))
	}
	return errors.Join(errs...)
}

// ValidateWizard validates w and, when requireProfile is set, insists the
// profile is present.
func ValidateWizard(w *WizardImport, requireProfile bool) error {
	var errs []error
	if requireProfile && w.Profile == nil {
		errs = append(errs, fmt.Errorf("%w: profile is required", ErrValidation))
	}
	if err := Validate(w); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func describe(e validator.FieldError) string {
	field := fieldPath(e.Namespace())
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "position":
		return fmt.Sprintf("%s: unknown position %q", field, e.Value())
	case "gte":
		return field + " must be at least " + e.Param()
	default:
		return field + " is invalid"
	}
}

// fieldPath drops the root type name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
