package api

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/spanteq/console/internal/models"
	"github.com/spanteq/console/internal/services"
)

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createUserInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type sectionInput struct {
	Name       string   `json:"name"`
	Slug       string   `json:"slug"`
	Icon       string   `json:"icon"`
	ReadRoles  []string `json:"read_roles"`
	WriteRoles []string `json:"write_roles"`
}

func (input sectionInput) toModel() models.Section {
	return models.Section{
		Name:       input.Name,
		Slug:       input.Slug,
		Icon:       input.Icon,
		ReadRoles:  input.ReadRoles,
		WriteRoles: input.WriteRoles,
	}
}

type fieldInput struct {
	Key      string               `json:"key"`
	Label    string               `json:"label"`
	Type     string               `json:"type"`
	Options  []models.FieldOption `json:"options"`
	Required bool                 `json:"required"`
	Order    int                  `json:"order"`
}

func (input fieldInput) toModel() models.Field {
	return models.Field{
		Key:      input.Key,
		Label:    input.Label,
		Kind:     models.FieldKind(input.Type),
		Options:  input.Options,
		Required: input.Required,
		Order:    input.Order,
	}
}

type fieldOrderInput struct {
	FieldID string
	Order   int
}

// Clients send the field id as field_id or fieldId; both are accepted.
func (input *fieldOrderInput) UnmarshalJSON(raw []byte) error {
	var payload struct {
		FieldID      string `json:"field_id"`
		FieldIDCamel string `json:"fieldId"`
		Order        int    `json:"order"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return err
	}
	input.FieldID = payload.FieldID
	if input.FieldID == "" {
		input.FieldID = payload.FieldIDCamel
	}
	input.Order = payload.Order
	return nil
}

type reorderInput struct {
	Orders []fieldOrderInput `json:"orders"`
}

// parseReorderPayload accepts the order list either as a bare JSON array
// or wrapped in an "orders" object.
func parseReorderPayload(body []byte) ([]services.FieldOrder, error) {
	trimmed := bytes.TrimSpace(body)
	entries := make([]fieldOrderInput, 0)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, err
		}
	} else {
		var wrapped reorderInput
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, err
		}
		entries = wrapped.Orders
	}

	orders := make([]services.FieldOrder, 0, len(entries))
	for _, entry := range entries {
		orders = append(orders, services.FieldOrder{FieldID: entry.FieldID, Order: entry.Order})
	}
	return orders, nil
}

type recordInput struct {
	Data map[string]any `json:"data"`
}

type salaryInput struct {
	UserID               uint           `json:"user_id"`
	Month                string         `json:"month"`
	Base                 float64        `json:"base"`
	Currency             string         `json:"currency"`
	Mode                 string         `json:"mode"`
	PayType              string         `json:"pay_type"`
	PayTypeEffectiveDate *time.Time     `json:"pay_type_effective_date"`
	FixedPhaseDuration   int            `json:"fixed_phase_duration"`
	VendorBillRate       float64        `json:"vendor_bill_rate"`
	CandidateShare       float64        `json:"candidate_share"`
	BonusAmount          float64        `json:"bonus_amount"`
	BonusType            string         `json:"bonus_type"`
	BonusFrequency       string         `json:"bonus_frequency"`
	BonusStartDate       *time.Time     `json:"bonus_start_date"`
	BonusEndDate         *time.Time     `json:"bonus_end_date"`
	IsBonusRecurring     bool           `json:"is_bonus_recurring"`
	EnablePTO            bool           `json:"enable_pto"`
	PTOType              string         `json:"pto_type"`
	PTODaysAllocated     float64        `json:"pto_days_allocated"`
	OffDaysTaken         float64        `json:"off_days_taken"`
	CustomFields         map[string]any `json:"custom_fields"`
}

func (input salaryInput) toModel() models.Salary {
	salary := models.Salary{
		UserID:               input.UserID,
		Month:                input.Month,
		Base:                 input.Base,
		Currency:             input.Currency,
		Mode:                 input.Mode,
		PayType:              input.PayType,
		PayTypeEffectiveDate: input.PayTypeEffectiveDate,
		FixedPhaseDuration:   input.FixedPhaseDuration,
		VendorBillRate:       input.VendorBillRate,
		CandidateShare:       input.CandidateShare,
		BonusAmount:          input.BonusAmount,
		BonusType:            input.BonusType,
		BonusFrequency:       input.BonusFrequency,
		BonusStartDate:       input.BonusStartDate,
		BonusEndDate:         input.BonusEndDate,
		IsBonusRecurring:     input.IsBonusRecurring,
		EnablePTO:            input.EnablePTO,
		PTOType:              input.PTOType,
		PTODaysAllocated:     input.PTODaysAllocated,
		OffDaysTaken:         input.OffDaysTaken,
		CustomFields:         input.CustomFields,
	}
	if salary.Mode == "" {
		salary.Mode = models.PayModeMonth
	}
	if salary.PayType == "" {
		salary.PayType = models.PayTypeFixed
	}
	if salary.BonusType == "" {
		salary.BonusType = models.BonusOneTime
	}
	if salary.BonusFrequency == "" {
		salary.BonusFrequency = models.BonusMonthly
	}
	if salary.PTOType == "" {
		salary.PTOType = models.PTOMonthly
	}
	return salary
}

type projectionInput struct {
	salaryInput
	Months int `json:"months"`
}

type ptoInput struct {
	Month  string  `json:"month"`
	Days   float64 `json:"days"`
	Reason string  `json:"reason"`
}

type ptoDecisionInput struct {
	Approve bool `json:"approve"`
}
