package services

import (
	"math"

	"github.com/spanteq/console/internal/models"
)

const hoursPerWorkingDay = 8

// PayBreakdown is the result of computing one month of pay. All amounts
// are rounded to 2 decimals and carry the configuration's currency
// unchanged; amounts of different currencies must never be summed.
type PayBreakdown struct {
	Month           string  `json:"month"`
	BasePay         float64 `json:"base_pay"`
	Bonus           float64 `json:"bonus"`
	Deduction       float64 `json:"deduction"`
	UnpaidLeaveDays float64 `json:"unpaid_leave_days"`
	FinalAmount     float64 `json:"final_amount"`
	Currency        string  `json:"currency"`
}

// ComputeMonth derives the pay breakdown for one month from a salary
// configuration. It is a pure function: no clock, no store, no side
// effects, so identical inputs always produce identical output.
func ComputeMonth(salary models.Salary, month Month, offDaysTaken float64, calendar Calendar) PayBreakdown {
	workingDays := calendar.WorkingDays(month)

	basePay := baseSalaryForMonth(salary, month, workingDays)
	bonus := bonusForMonth(salary, month)
	unpaidDays, deduction := ptoDeductionForMonth(salary, offDaysTaken, basePay, workingDays)

	basePay = round2(basePay)
	bonus = round2(bonus)
	deduction = round2(deduction)

	return PayBreakdown{
		Month:           month.String(),
		BasePay:         basePay,
		Bonus:           bonus,
		Deduction:       deduction,
		UnpaidLeaveDays: unpaidDays,
		FinalAmount:     round2(basePay - deduction + bonus),
		Currency:        salary.Currency,
	}
}

// baseSalaryForMonth resolves the effective pay type first: a percentage
// candidate is paid as fixed until the fixed phase following the
// effective date has elapsed.
func baseSalaryForMonth(salary models.Salary, month Month, workingDays int) float64 {
	if payTypeForMonth(salary, month) == models.PayTypePercentage {
		return salary.VendorBillRate * (salary.CandidateShare / 100)
	}

	switch salary.Mode {
	case models.PayModeAnnum:
		return salary.Base / 12
	case models.PayModeHourly:
		return salary.Base * float64(workingDays*hoursPerWorkingDay)
	default:
		return salary.Base
	}
}

func payTypeForMonth(salary models.Salary, month Month) string {
	if salary.PayType != models.PayTypePercentage {
		return models.PayTypeFixed
	}
	if salary.PayTypeEffectiveDate == nil {
		return models.PayTypePercentage
	}
	percentageFrom := MonthOf(*salary.PayTypeEffectiveDate).AddMonths(salary.FixedPhaseDuration)
	if month.Before(percentageFrom) {
		return models.PayTypeFixed
	}
	return models.PayTypePercentage
}

func bonusForMonth(salary models.Salary, month Month) float64 {
	if salary.BonusAmount == 0 || salary.BonusStartDate == nil {
		return 0
	}

	start := MonthOf(*salary.BonusStartDate)
	if isRecurringBonus(salary) {
		return recurringBonusForMonth(salary, month, start)
	}

	if month == start {
		return salary.BonusAmount
	}
	return 0
}

func isRecurringBonus(salary models.Salary) bool {
	return salary.IsBonusRecurring || salary.BonusType == models.BonusRecurring
}

func recurringBonusForMonth(salary models.Salary, month Month, start Month) float64 {
	if month.Before(start) {
		return 0
	}
	if salary.BonusEndDate != nil {
		end := MonthOf(*salary.BonusEndDate)
		// An inverted window pays nothing rather than erroring; input
		// validation rejects it on new writes.
		if end.Before(start) || month.After(end) {
			return 0
		}
	}

	switch salary.BonusFrequency {
	case models.BonusQuarterly:
		if MonthsBetween(start, month)%3 == 0 {
			return salary.BonusAmount
		}
		return 0
	case models.BonusAnnually:
		if month.Mon == start.Mon {
			return salary.BonusAmount
		}
		return 0
	default:
		return salary.BonusAmount
	}
}

// ptoDeductionForMonth converts off days beyond the allowance into an
// unpaid-leave deduction against base pay.
func ptoDeductionForMonth(salary models.Salary, offDaysTaken float64, basePay float64, workingDays int) (float64, float64) {
	if !salary.EnablePTO || workingDays == 0 {
		return 0, 0
	}

	allowed := salary.PTODaysAllocated
	if salary.PTOType == models.PTOYearly {
		allowed = salary.PTODaysAllocated / 12
	}

	unpaidDays := offDaysTaken - allowed
	if unpaidDays <= 0 {
		return 0, 0
	}

	return unpaidDays, unpaidDays * (basePay / float64(workingDays))
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
