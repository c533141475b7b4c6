package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListFields(c *fiber.Ctx) error {
	fields, err := handler.sectionService.ListFields(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"fields": fields})
}

func (handler *Handler) AddField(c *fiber.Ctx) error {
	var input fieldInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	field, err := handler.sectionService.AddField(currentUser(c), c.Params("id"), input.toModel())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(field)
}

func (handler *Handler) UpdateField(c *fiber.Ctx) error {
	var input fieldInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	field, err := handler.sectionService.UpdateField(currentUser(c), c.Params("id"), c.Params("fieldId"), input.toModel())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(field)
}

func (handler *Handler) DeleteField(c *fiber.Ctx) error {
	if err := handler.sectionService.DeleteField(currentUser(c), c.Params("id"), c.Params("fieldId")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReorderFields applies a full-permutation order rewrite or nothing.
func (handler *Handler) ReorderFields(c *fiber.Ctx) error {
	orders, err := parseReorderPayload(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := handler.sectionService.ReorderFields(currentUser(c), c.Params("id"), orders); err != nil {
		return serviceError(c, err)
	}

	fields, err := handler.sectionService.ListFields(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"fields": fields})
}
