package services

import (
	"reflect"
	"testing"

	"github.com/spanteq/console/internal/models"
)

func TestProjectCoversHorizonInOrder(t *testing.T) {
	salary := models.Salary{
		Base:    6000,
		Mode:    models.PayModeMonth,
		PayType: models.PayTypeFixed,
	}

	series := Project(salary, mustMonth(t, "2024-11"), 4)
	if len(series) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(series))
	}

	expectedMonths := []string{"2024-11", "2024-12", "2025-01", "2025-02"}
	for index, entry := range series {
		if entry.Month != expectedMonths[index] {
			t.Fatalf("entry %d: expected month %s, got %s", index, expectedMonths[index], entry.Month)
		}
	}
}

func TestProjectIsDeterministic(t *testing.T) {
	salary := models.Salary{
		Base:             5000,
		Mode:             models.PayModeMonth,
		PayType:          models.PayTypeFixed,
		BonusAmount:      250,
		BonusType:        models.BonusRecurring,
		BonusFrequency:   models.BonusQuarterly,
		BonusStartDate:   datePtr("2024-01-01"),
		EnablePTO:        true,
		PTOType:          models.PTOMonthly,
		PTODaysAllocated: 1,
		OffDaysTaken:     2,
	}

	first := Project(salary, mustMonth(t, "2024-01"), 12)
	second := Project(salary, mustMonth(t, "2024-01"), 12)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical projection series, got %#v vs %#v", first, second)
	}
}

func TestProjectGracePhaseEvolvesAcrossHorizon(t *testing.T) {
	salary := models.Salary{
		Base:                 4000,
		Mode:                 models.PayModeMonth,
		PayType:              models.PayTypePercentage,
		PayTypeEffectiveDate: datePtr("2024-01-01"),
		FixedPhaseDuration:   2,
		VendorBillRate:       10000,
		CandidateShare:       50,
	}

	series := Project(salary, mustMonth(t, "2024-01"), 4)
	expectedBases := []float64{4000, 4000, 5000, 5000}
	for index, entry := range series {
		if entry.BasePay != expectedBases[index] {
			t.Fatalf("entry %s: expected base %.2f, got %.2f", entry.Month, expectedBases[index], entry.BasePay)
		}
	}
}

func TestProjectQuarterlyBonusAppearsOnCadence(t *testing.T) {
	salary := models.Salary{
		Base:           3000,
		Mode:           models.PayModeMonth,
		PayType:        models.PayTypeFixed,
		BonusAmount:    200,
		BonusType:      models.BonusRecurring,
		BonusFrequency: models.BonusQuarterly,
		BonusStartDate: datePtr("2024-01-01"),
	}

	series := Project(salary, mustMonth(t, "2024-01"), 6)
	withBonus := make([]string, 0)
	for _, entry := range series {
		if entry.Bonus > 0 {
			withBonus = append(withBonus, entry.Month)
		}
	}
	if !reflect.DeepEqual(withBonus, []string{"2024-01", "2024-04"}) {
		t.Fatalf("expected bonus in Jan and Apr only, got %v", withBonus)
	}
}

func TestProjectNegativeHorizonIsEmpty(t *testing.T) {
	series := Project(models.Salary{Base: 1000, Mode: models.PayModeMonth, PayType: models.PayTypeFixed}, mustMonth(t, "2024-01"), -3)
	if len(series) != 0 {
		t.Fatalf("expected empty series, got %d entries", len(series))
	}
}
