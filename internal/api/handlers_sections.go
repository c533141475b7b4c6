package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListSections(c *fiber.Ctx) error {
	sections, err := handler.sectionService.List()
	if err != nil {
		return serviceError(c, err)
	}

	// Non-admins only see sections their role may read.
	requester := currentUser(c)
	visible := sections[:0]
	for _, section := range sections {
		if section.CanRead(requester.Role) {
			visible = append(visible, section)
		}
	}
	return c.JSON(fiber.Map{"sections": visible})
}

func (handler *Handler) GetSection(c *fiber.Ctx) error {
	section, fields, err := handler.sectionService.GetBySlug(c.Params("slug"))
	if err != nil {
		return serviceError(c, err)
	}
	if !section.CanRead(currentUser(c).Role) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "role may not read this section"})
	}
	return c.JSON(fiber.Map{"section": section, "fields": fields})
}

func (handler *Handler) CreateSection(c *fiber.Ctx) error {
	var input sectionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	section, err := handler.sectionService.Create(currentUser(c), input.toModel())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(section)
}

func (handler *Handler) UpdateSection(c *fiber.Ctx) error {
	var input sectionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	section, err := handler.sectionService.Update(currentUser(c), c.Params("id"), input.toModel())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(section)
}

func (handler *Handler) DeleteSection(c *fiber.Ctx) error {
	if err := handler.sectionService.Delete(currentUser(c), c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
