package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListRecords(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	// Every query parameter besides page/limit is a candidate data
	// filter; keys that name no field are ignored downstream.
	filters := map[string]string{}
	for key, value := range c.Queries() {
		if key == "page" || key == "limit" {
			continue
		}
		filters[key] = value
	}

	result, err := handler.recordService.List(currentUser(c), c.Params("slug"), page, limit, filters)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(result)
}

func (handler *Handler) CreateRecord(c *fiber.Ctx) error {
	var input recordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	record, err := handler.recordService.Create(currentUser(c), c.Params("slug"), input.Data)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) UpdateRecord(c *fiber.Ctx) error {
	var input recordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	record, err := handler.recordService.Update(currentUser(c), c.Params("slug"), c.Params("recordId"), input.Data)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(record)
}

func (handler *Handler) DeleteRecord(c *fiber.Ctx) error {
	if err := handler.recordService.Delete(currentUser(c), c.Params("slug"), c.Params("recordId")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
