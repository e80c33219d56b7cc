package artist

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jaki95/lineup-genre-sorter/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their seed (json) names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return v
}

// ValidateSeed checks that a seed artist carries every required field.
func ValidateSeed(seed domain.SeedArtist) error {
	err := validate.Struct(seed)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	fields := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		fields = append(fields, fmt.Sprintf("%s %s", e.Field(), friendlyMessage(e)))
	}
	return fmt.Errorf("%w: %s", ErrInvalidSeed, strings.Join(fields, ", "))
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	default:
		return fmt.Sprintf("failed %s validation", e.Tag())
	}
}
