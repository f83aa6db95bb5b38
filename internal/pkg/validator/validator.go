package validator

import (
	"errors"
	"fmt"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

const MaxTextLength = 2000

type Validator struct {
	validate *playground.Validate
}

func New() *Validator {
	return &Validator{
		validate: playground.New(),
	}
}

// ValidateText rejects blank values and values over MaxTextLength characters.
func (v *Validator) ValidateText(field, value string) error {
	err := v.validate.Var(strings.TrimSpace(value), fmt.Sprintf("required,max=%d", MaxTextLength))
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		switch fieldErrs[0].Tag() {
		case "required":
			return fmt.Errorf("%s is required", field)
		case "max":
			return fmt.Errorf("%s exceeds maximum length of %d characters", field, MaxTextLength)
		}
	}

	return fmt.Errorf("%s is invalid: %v", field, err)
}
