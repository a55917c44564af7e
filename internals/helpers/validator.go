// file: internals/helpers/validator.go
package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateStruct menjalankan validator.v10 atas DTO request.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// JsonValidationErrorFrom: terjemahkan error validator.v10 ke response 422.
// Error lain dianggap payload rusak (400).
func JsonValidationErrorFrom(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	fieldErrors := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
	}
	return JsonValidationError(c, fieldErrors)
}
