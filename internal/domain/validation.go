package domain

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validation struct {
	validator *validator.Validate
}

func NewValidation() *Validation {
	v := validator.New()
	v.RegisterValidation("notblank", validateNotBlank)
	return &Validation{validator: v}
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ValidationError wraps the validator's FieldError
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (v ValidationError) Error() string {
	return fmt.Sprintf("Field '%s': %s", v.Field, v.Message)
}

// ValidationErrors is a slice of ValidationError
type ValidationErrors []ValidationError

func (v *Validation) Validate(i interface{}) ValidationErrors {
	var errors ValidationErrors

	err := v.validator.Struct(i)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		for _, ve := range validationErrors {
			errors = append(errors, ValidationError{
				Field:   ve.Field(),
				Message: fmt.Sprintf("failed on the '%s' tag", ve.Tag()),
			})
		}
	}

	return errors
}

// ValidQuote reports whether a quote satisfies the result-set invariants:
// non-empty sku, name and retailer, and a non-negative price. Quotes that
// fail are dropped during aggregation rather than failing the request.
func ValidQuote(q PriceQuote) bool {
	return q.SKU != "" && q.Name != "" && q.Retailer != "" && q.Price >= 0
}
