package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/spanteq/console/internal/services"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuthCredentialsInvalid) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid email or password"})
		}
		return serviceError(c, err)
	}

	token, err := handler.issueToken(user)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"token": token, "user": user})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	return c.JSON(currentUser(c))
}

func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	var input createUserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	user, err := handler.authService.CreateUser(currentUser(c), input.Email, input.Password, input.Name, input.Role)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.authService.ListUsers(currentUser(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}
