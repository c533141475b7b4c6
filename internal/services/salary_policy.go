package services

import "github.com/spanteq/console/internal/models"

// ValidateSalaryInput checks a salary configuration before any mutation.
// Once a row passes here it is always computable; the engine itself never
// rejects.
func ValidateSalaryInput(salary models.Salary, targetRole string) error {
	validation := NewValidationError("invalid salary configuration")

	if salary.UserID == 0 {
		validation.WithField("user_id", "User is required")
	}
	if salary.Month == "" {
		validation.WithField("month", "Month is required")
	} else if _, err := ParseMonth(salary.Month); err != nil {
		validation.WithField("month", "Month must be in YYYY-MM format")
	}

	if salary.Base < 0 {
		validation.WithField("base", "Base pay must not be negative")
	}
	switch salary.Mode {
	case models.PayModeMonth, models.PayModeAnnum, models.PayModeHourly:
	default:
		validation.WithField("mode", "Unknown pay mode")
	}

	switch salary.PayType {
	case models.PayTypeFixed:
	case models.PayTypePercentage:
		if targetRole != "" && targetRole != models.RoleCandidate {
			validation.WithField("pay_type", "Percentage pay applies to candidates only")
		}
		if salary.VendorBillRate < 0 {
			validation.WithField("vendor_bill_rate", "Vendor bill rate must not be negative")
		}
		if salary.CandidateShare < 0 || salary.CandidateShare > 100 {
			validation.WithField("candidate_share", "Candidate share must be between 0 and 100")
		}
	default:
		validation.WithField("pay_type", "Unknown pay type")
	}
	if salary.FixedPhaseDuration < 0 {
		validation.WithField("fixed_phase_duration", "Fixed phase duration must not be negative")
	}

	switch salary.BonusType {
	case models.BonusOneTime, models.BonusRecurring:
	default:
		validation.WithField("bonus_type", "Unknown bonus type")
	}
	switch salary.BonusFrequency {
	case models.BonusMonthly, models.BonusQuarterly, models.BonusAnnually:
	default:
		validation.WithField("bonus_frequency", "Unknown bonus frequency")
	}
	if salary.BonusAmount < 0 {
		validation.WithField("bonus_amount", "Bonus amount must not be negative")
	}
	if salary.BonusStartDate != nil && salary.BonusEndDate != nil &&
		salary.BonusEndDate.Before(*salary.BonusStartDate) {
		validation.WithField("bonus_end_date", "Bonus end date must not precede its start date")
	}

	if salary.EnablePTO {
		switch salary.PTOType {
		case models.PTOMonthly, models.PTOYearly:
		default:
			validation.WithField("pto_type", "Unknown PTO type")
		}
		if salary.PTODaysAllocated < 0 {
			validation.WithField("pto_days_allocated", "Allocated PTO days must not be negative")
		}
	}
	if salary.OffDaysTaken < 0 {
		validation.WithField("off_days_taken", "Off days taken must not be negative")
	}

	if validation.HasFields() {
		return validation
	}
	return nil
}

// CanManageSalary reports whether requester may create or edit pay for
// the target user. Recruiters manage recruiter pay only.
func CanManageSalary(requester models.User, targetRole string) bool {
	switch requester.Role {
	case models.RoleAdmin:
		return true
	case models.RoleRecruiter:
		return targetRole == models.RoleRecruiter
	default:
		return false
	}
}
