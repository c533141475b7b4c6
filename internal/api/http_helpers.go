package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/spanteq/console/internal/models"
	"github.com/spanteq/console/internal/services"
)

// serviceError maps the engine error taxonomy onto HTTP statuses.
// Validation errors carry their per-field messages through so forms can
// highlight every offending input.
func serviceError(c *fiber.Ctx, err error) error {
	var validation *services.ValidationError
	if errors.As(err, &validation) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  validation.Message,
			"fields": validation.Fields,
		})
	}

	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFound.Error()})
	}

	var permission *services.PermissionError
	if errors.As(err, &permission) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": permission.Error()})
	}

	var conflict *services.ConflictError
	if errors.As(err, &conflict) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": conflict.Error()})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}

func currentUser(c *fiber.Ctx) models.User {
	user, _ := c.Locals(contextUserKey).(models.User)
	return user
}
