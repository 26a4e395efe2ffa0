package thumbor

import (
	"fmt"

	validatorV10 "github.com/go-playground/validator/v10"

	apperrors "github.com/sudacode/thumburl/errors"
)

// Request describes one URL generation: the source image, the crop
// parameters, and the target server. It is built once per invocation from
// the resolved settings and discarded after the URL is produced.
type Request struct {
	ImageURL string `validate:"required"`
	Width    int    `validate:"gte=0"`
	Height   int    `validate:"gte=0"`
	Smart    bool
	Unsafe   bool
	BaseURL  string `validate:"required"`
}

var validate *validatorV10.Validate

func init() {
	validate = validatorV10.New()
	validate.RegisterStructValidation(validateDimensions, Request{})
}

// validateDimensions enforces that at least one axis is positive. The
// server treats a zero dimension as "auto" only when the other is set;
// both zero is meaningless.
func validateDimensions(sl validatorV10.StructLevel) {
	req := sl.Current().Interface().(Request)
	if req.Width == 0 && req.Height == 0 {
		sl.ReportError(req.Width, "Width", "Width", "dimensions", "")
	}
}

// Validate checks the request invariants and returns a configuration
// error naming the first violated condition.
func (r Request) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validatorV10.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return apperrors.NewConfiguration("invalid request").WithInnerError(err)
	}

	fe := validationErrors[0]
	return apperrors.NewConfiguration(validationMessage(fe)).
		WithDetail("field", fe.Field()).
		WithInnerError(err)
}

func validationMessage(fe validatorV10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldName(fe.Field()))
	case "gte":
		return fmt.Sprintf("%s must be non-negative", fieldName(fe.Field()))
	case "dimensions":
		return "at least one of width and height must be positive"
	default:
		return fmt.Sprintf("%s failed validation for '%s'", fieldName(fe.Field()), fe.Tag())
	}
}

func fieldName(field string) string {
	switch field {
	case "ImageURL":
		return "image URL"
	case "BaseURL":
		return "base URL"
	case "Width":
		return "width"
	case "Height":
		return "height"
	}
	return field
}
