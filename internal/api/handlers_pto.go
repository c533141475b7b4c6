package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListPTORequests(c *fiber.Ctx) error {
	requests, err := handler.ptoService.List(currentUser(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"requests": requests})
}

func (handler *Handler) CreatePTORequest(c *fiber.Ctx) error {
	var input ptoInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	request, err := handler.ptoService.Create(currentUser(c), input.Month, input.Days, input.Reason)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

func (handler *Handler) DecidePTORequest(c *fiber.Ctx) error {
	var input ptoDecisionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	request, err := handler.ptoService.Decide(currentUser(c), c.Params("id"), input.Approve)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(request)
}
