package response

import (
	"errors"
	"strings"

	"github.com/bsthun/gut"
	"github.com/contentmine/cproject"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

func FiberError(c fiber.Ctx, err error) error {
	// * construct success
	success := false

	// * case of `*fiber.Error`
	var fiberError *fiber.Error
	if errors.As(err, &fiberError) {
		return c.Status(fiberError.Code).JSON(&ErrorResponse{
			Success: &success,
			Message: &fiberError.Message,
		})
	}

	// * case of a missing project folder
	if errors.Is(err, cproject.ErrProjectNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(&ErrorResponse{
			Success: &success,
			Message: gut.Ptr("project not found"),
			Error:   gut.Ptr(err.Error()),
		})
	}

	// * case of `validator.ValidationErrors`
	var validatorErr validator.ValidationErrors
	if errors.As(err, &validatorErr) {
		var lists []string
		for _, err := range validatorErr {
			lists = append(lists, err.Field()+" ("+err.Tag()+")")
		}

		message := strings.Join(lists[:], ", ")

		return c.Status(fiber.StatusBadRequest).JSON(&ErrorResponse{
			Success: gut.Ptr(false),
			Message: gut.Ptr("validation failed on " + message),
			Error:   gut.Ptr(validatorErr.Error()),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(&ErrorResponse{
		Success: gut.Ptr(false),
		Message: gut.Ptr("unknown server error"),
		Error:   gut.Ptr(err.Error()),
	})
}
