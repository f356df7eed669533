// internal/util/validator.go
package util

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateStruct checks s against its `validate` struct tags.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
