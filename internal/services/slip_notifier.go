package services

import (
	"github.com/rs/zerolog"
	"github.com/spanteq/console/internal/models"
	"github.com/spanteq/console/internal/security"
)

const slipReferenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// SlipNotifier delivers a computed pay slip to the user. Delivery (mail,
// chat) lives outside this repo; implementations adapt to whatever
// channel is configured.
type SlipNotifier interface {
	SendSlip(user models.User, salary models.Salary, breakdown PayBreakdown) (reference string, err error)
}

// LogSlipNotifier records slips on the structured log. It stands in for
// a mail gateway in development and tests.
type LogSlipNotifier struct {
	logger zerolog.Logger
}

func NewLogSlipNotifier(logger zerolog.Logger) *LogSlipNotifier {
	return &LogSlipNotifier{logger: logger}
}

func (notifier *LogSlipNotifier) SendSlip(user models.User, salary models.Salary, breakdown PayBreakdown) (string, error) {
	reference, err := security.RandomString(10, slipReferenceAlphabet)
	if err != nil {
		return "", err
	}

	notifier.logger.Info().
		Str("reference", reference).
		Uint("user_id", user.ID).
		Str("email", user.Email).
		Str("month", breakdown.Month).
		Str("currency", breakdown.Currency).
		Float64("base_pay", breakdown.BasePay).
		Float64("bonus", breakdown.Bonus).
		Float64("deduction", breakdown.Deduction).
		Float64("final_amount", breakdown.FinalAmount).
		Msg("salary slip sent")

	return reference, nil
}
