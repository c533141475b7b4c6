package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	users := api.Group("/users", handler.AuthRequired, handler.AdminOnly)
	users.Get("", handler.ListUsers)
	users.Post("", handler.CreateUser)

	sections := api.Group("/sections", handler.AuthRequired)
	sections.Get("", handler.ListSections)
	sections.Post("", handler.AdminOnly, handler.CreateSection)
	sections.Get("/:slug", handler.GetSection)
	sections.Put("/:id", handler.AdminOnly, handler.UpdateSection)
	sections.Delete("/:id", handler.AdminOnly, handler.DeleteSection)
	sections.Get("/:id/fields", handler.ListFields)
	sections.Post("/:id/fields", handler.AdminOnly, handler.AddField)
	sections.Patch("/:id/fields/reorder", handler.AdminOnly, handler.ReorderFields)
	sections.Put("/:id/fields/:fieldId", handler.AdminOnly, handler.UpdateField)
	sections.Delete("/:id/fields/:fieldId", handler.AdminOnly, handler.DeleteField)

	data := api.Group("/data", handler.AuthRequired)
	data.Get("/:slug", handler.ListRecords)
	data.Post("/:slug", handler.CreateRecord)
	data.Get("/:slug/export", handler.ExportRecordsCSV)
	data.Put("/:slug/:recordId", handler.UpdateRecord)
	data.Delete("/:slug/:recordId", handler.DeleteRecord)

	salary := api.Group("/salary", handler.AuthRequired)
	salary.Get("", handler.ListSalaries)
	salary.Post("", handler.CreateSalary)
	salary.Post("/projections", handler.SalaryProjections)
	salary.Get("/export/csv", handler.ExportSalariesCSV)
	salary.Put("/:id", handler.UpdateSalary)
	salary.Delete("/:id", handler.DeleteSalary)
	salary.Post("/:id/send-slip", handler.SendSlip)

	pto := api.Group("/pto", handler.AuthRequired)
	pto.Get("", handler.ListPTORequests)
	pto.Post("", handler.CreatePTORequest)
	pto.Post("/:id/decision", handler.AdminOnly, handler.DecidePTORequest)
}
