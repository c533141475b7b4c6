package api

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/spanteq/console/internal/services"
)

func (handler *Handler) ExportRecordsCSV(c *fiber.Ctx) error {
	slug := c.Params("slug")
	fields, records, err := handler.recordService.ListForExport(currentUser(c), slug)
	if err != nil {
		return serviceError(c, err)
	}

	rows := handler.exportService.BuildRecordRows(fields, records)
	return sendCSV(c, fmt.Sprintf("%s-records.csv", slug), rows)
}

func (handler *Handler) ExportSalariesCSV(c *fiber.Ctx) error {
	requester := currentUser(c)
	salaries, err := handler.salaryService.List(requester)
	if err != nil {
		return serviceError(c, err)
	}

	breakdowns := make([]services.PayBreakdown, 0, len(salaries))
	for _, salary := range salaries {
		breakdown, err := handler.salaryService.Breakdown(salary)
		if err != nil {
			return serviceError(c, err)
		}
		breakdowns = append(breakdowns, breakdown)
	}

	rows := handler.exportService.BuildSalaryRows(salaries, breakdowns)
	return sendCSV(c, "salaries.csv", rows)
}

func sendCSV(c *fiber.Ctx, fileName string, rows [][]string) error {
	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.WriteAll(rows); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to render csv"})
	}
	writer.Flush()

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return c.Send(output.Bytes())
}
