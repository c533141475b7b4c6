package services

import (
	"strconv"
	"strings"

	"github.com/spanteq/console/internal/models"
)

// ExportService renders tabular CSV row sets for sections and salaries.
// Cell rendering is the only formatting it does; writing the bytes is
// the transport's job.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// BuildRecordRows returns a header of field labels in schema order plus
// one row per record. Values under keys of deleted fields are omitted.
func (service *ExportService) BuildRecordRows(fields []models.Field, records []models.Record) [][]string {
	header := make([]string, 0, len(fields)+1)
	header = append(header, "Created At")
	for _, field := range fields {
		header = append(header, field.Label)
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, header)
	for _, record := range records {
		row := make([]string, 0, len(fields)+1)
		row = append(row, record.CreatedAt.Format("2006-01-02 15:04:05"))
		for _, field := range fields {
			row = append(row, renderCell(field.Kind, record.Data[field.Key]))
		}
		rows = append(rows, row)
	}
	return rows
}

var salaryCSVHeader = []string{
	"User ID",
	"Month",
	"Currency",
	"Pay Type",
	"Base Pay",
	"Bonus",
	"Deduction",
	"Unpaid Leave Days",
	"Final Amount",
}

// BuildSalaryRows renders one row per salary with its recomputed
// breakdown.
func (service *ExportService) BuildSalaryRows(salaries []models.Salary, breakdowns []PayBreakdown) [][]string {
	rows := make([][]string, 0, len(salaries)+1)
	rows = append(rows, salaryCSVHeader)
	for index, salary := range salaries {
		breakdown := breakdowns[index]
		rows = append(rows, []string{
			strconv.FormatUint(uint64(salary.UserID), 10),
			salary.Month,
			salary.Currency,
			salary.PayType,
			formatAmount(breakdown.BasePay),
			formatAmount(breakdown.Bonus),
			formatAmount(breakdown.Deduction),
			strconv.FormatFloat(breakdown.UnpaidLeaveDays, 'f', -1, 64),
			formatAmount(breakdown.FinalAmount),
		})
	}
	return rows
}

func renderCell(kind models.FieldKind, value any) string {
	if value == nil {
		return ""
	}
	switch kind {
	case models.FieldMultiSelect:
		items, ok := value.([]any)
		if !ok {
			return stringifyValue(value)
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, stringifyValue(item))
		}
		return strings.Join(parts, ", ")
	case models.FieldBoolean:
		if truthy, ok := value.(bool); ok {
			if truthy {
				return "yes"
			}
			return "no"
		}
		return stringifyValue(value)
	default:
		return stringifyValue(value)
	}
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
