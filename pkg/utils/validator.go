package utils

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground/validator for request structs.
type CustomValidator struct {
	validate *validator.Validate
}

// Validate checks struct tags and returns the first tag failure.
func (v *CustomValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

var (
	validatorOnce     sync.Once
	validatorInstance *CustomValidator
)

// GetValidator returns the shared validator instance.
func GetValidator() *CustomValidator {
	validatorOnce.Do(func() {
		validatorInstance = &CustomValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
	})
	return validatorInstance
}
