package services

import (
	"testing"
	"time"

	"github.com/spanteq/console/internal/models"
)

func TestBuildRecordRowsFollowsSchemaOrder(t *testing.T) {
	fields := []models.Field{
		{Key: "name", Label: "Vendor Name", Kind: models.FieldText, Order: 1},
		{Key: "active", Label: "Active", Kind: models.FieldBoolean, Order: 2},
		{Key: "tags", Label: "Tags", Kind: models.FieldMultiSelect, Order: 3},
	}
	records := []models.Record{
		{
			Data: map[string]any{
				"name":    "Acme",
				"active":  true,
				"tags":    []any{"vendor", "preferred"},
				"orphan":  "left behind by a deleted field",
				"ignored": 42,
			},
			CreatedAt: time.Date(2025, time.June, 2, 9, 30, 0, 0, time.UTC),
		},
		{
			Data:      map[string]any{"name": "Globex", "active": false},
			CreatedAt: time.Date(2025, time.June, 3, 9, 30, 0, 0, time.UTC),
		},
	}

	rows := NewExportService().BuildRecordRows(fields, records)
	if len(rows) != 3 {
		t.Fatalf("expected header plus two rows, got %d", len(rows))
	}

	header := rows[0]
	if header[0] != "Created At" || header[1] != "Vendor Name" || header[2] != "Active" || header[3] != "Tags" {
		t.Fatalf("unexpected header: %v", header)
	}

	first := rows[1]
	if first[0] != "2025-06-02 09:30:00" {
		t.Fatalf("unexpected created at cell: %q", first[0])
	}
	if first[1] != "Acme" || first[2] != "yes" || first[3] != "vendor, preferred" {
		t.Fatalf("unexpected first row: %v", first)
	}

	second := rows[2]
	if second[2] != "no" || second[3] != "" {
		t.Fatalf("unexpected second row: %v", second)
	}
}

func TestBuildSalaryRows(t *testing.T) {
	salaries := []models.Salary{
		{UserID: 7, Month: "2025-06", Currency: "USD", PayType: models.PayTypeFixed},
	}
	breakdowns := []PayBreakdown{
		{Month: "2025-06", BasePay: 4000, Bonus: 500, Deduction: 0, UnpaidLeaveDays: 0, FinalAmount: 4500, Currency: "USD"},
	}

	rows := NewExportService().BuildSalaryRows(salaries, breakdowns)
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d", len(rows))
	}

	row := rows[1]
	expected := []string{"7", "2025-06", "USD", "fixed", "4000.00", "500.00", "0.00", "0", "4500.00"}
	for index, cell := range expected {
		if row[index] != cell {
			t.Fatalf("column %d: expected %q, got %q", index, cell, row[index])
		}
	}
}
