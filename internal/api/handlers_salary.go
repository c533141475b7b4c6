package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListSalaries(c *fiber.Ctx) error {
	salaries, err := handler.salaryService.List(currentUser(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"salaries": salaries})
}

func (handler *Handler) CreateSalary(c *fiber.Ctx) error {
	var input salaryInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	salary, err := handler.salaryService.Create(currentUser(c), input.toModel())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(salary)
}

func (handler *Handler) UpdateSalary(c *fiber.Ctx) error {
	var input salaryInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	salary, err := handler.salaryService.Update(currentUser(c), c.Params("id"), input.toModel())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(salary)
}

func (handler *Handler) DeleteSalary(c *fiber.Ctx) error {
	if err := handler.salaryService.Delete(currentUser(c), c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SalaryProjections computes a forward series from a transient
// configuration. Nothing is persisted.
func (handler *Handler) SalaryProjections(c *fiber.Ctx) error {
	var input projectionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	series, err := handler.salaryService.Projection(input.toModel(), input.Months)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"projections": series})
}

// SendSlip recomputes the breakdown and hands it to the notifier; the
// salary row itself is untouched.
func (handler *Handler) SendSlip(c *fiber.Ctx) error {
	requester := currentUser(c)
	salary, err := handler.salaryService.Get(requester, c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}

	breakdown, err := handler.salaryService.Breakdown(salary)
	if err != nil {
		return serviceError(c, err)
	}

	user, err := handler.authService.FindByID(salary.UserID)
	if err != nil {
		return serviceError(c, err)
	}

	reference, err := handler.slipNotifier.SendSlip(user, salary, breakdown)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"reference": reference, "breakdown": breakdown})
}
