package models

import "time"

const (
	PayModeMonth  = "month"
	PayModeAnnum  = "annum"
	PayModeHourly = "hourly"

	PayTypeFixed      = "fixed"
	PayTypePercentage = "percentage"

	BonusOneTime   = "one-time"
	BonusRecurring = "recurring"

	BonusMonthly   = "monthly"
	BonusQuarterly = "quarterly"
	BonusAnnually  = "annually"

	PTOMonthly = "monthly"
	PTOYearly  = "yearly"
)

// Salary is the pay configuration of one user for one month ("YYYY-MM").
// FinalAmount and UnpaidLeaveDays are caches derived from the other
// fields; they are recomputed on every write and never edited directly.
type Salary struct {
	ID                   string         `gorm:"primaryKey;type:text" json:"id"`
	UserID               uint           `gorm:"not null;uniqueIndex:uidx_salary_user_month" json:"user_id"`
	Month                string         `gorm:"not null;uniqueIndex:uidx_salary_user_month" json:"month"`
	Base                 float64        `gorm:"not null;default:0" json:"base"`
	Currency             string         `gorm:"not null;default:USD" json:"currency"`
	Mode                 string         `gorm:"not null;default:month" json:"mode"`
	PayType              string         `gorm:"not null;default:fixed" json:"pay_type"`
	PayTypeEffectiveDate *time.Time     `json:"pay_type_effective_date,omitempty"`
	FixedPhaseDuration   int            `gorm:"not null;default:0" json:"fixed_phase_duration"`
	VendorBillRate       float64        `gorm:"not null;default:0" json:"vendor_bill_rate"`
	CandidateShare       float64        `gorm:"not null;default:0" json:"candidate_share"`
	BonusAmount          float64        `gorm:"not null;default:0" json:"bonus_amount"`
	BonusType            string         `gorm:"not null;default:one-time" json:"bonus_type"`
	BonusFrequency       string         `gorm:"not null;default:monthly" json:"bonus_frequency"`
	BonusStartDate       *time.Time     `json:"bonus_start_date,omitempty"`
	BonusEndDate         *time.Time     `json:"bonus_end_date,omitempty"`
	IsBonusRecurring     bool           `gorm:"not null;default:false" json:"is_bonus_recurring"`
	EnablePTO            bool           `gorm:"not null;default:false" json:"enable_pto"`
	PTOType              string         `gorm:"column:pto_type;not null;default:monthly" json:"pto_type"`
	PTODaysAllocated     float64        `gorm:"column:pto_days_allocated;not null;default:0" json:"pto_days_allocated"`
	OffDaysTaken         float64        `gorm:"not null;default:0" json:"off_days_taken"`
	UnpaidLeaveDays      float64        `gorm:"not null;default:0" json:"unpaid_leave_days"`
	FinalAmount          float64        `gorm:"not null;default:0" json:"final_amount"`
	CustomFields         map[string]any `gorm:"serializer:json" json:"custom_fields,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}
