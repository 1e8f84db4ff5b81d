package domain

import (
	"github.com/shopspring/decimal"
)

// SimulationInput describes one before/after projection request. The
// adjusted terms usually come from a matched RestructuringPlan. A nil
// AdjustedInterestRate or AdjustedPeriodMonths falls back to the engine
// defaults (5.0% / 60 months); an explicit zero rate selects the
// straight-line payment path.
type SimulationInput struct {
	CurrentDebt           decimal.Decimal  `yaml:"current_debt" json:"currentDebt"`
	CurrentMonthlyPayment decimal.Decimal  `yaml:"current_monthly_payment" json:"currentMonthlyPayment"`
	CurrentInterestRate   decimal.Decimal  `yaml:"current_interest_rate" json:"currentInterestRate"` // annual %
	AdjustedInterestRate  *decimal.Decimal `yaml:"adjusted_interest_rate,omitempty" json:"adjustedInterestRate,omitempty"`
	AdjustedPeriodMonths  *int             `yaml:"adjusted_period_months,omitempty" json:"adjustedPeriodMonths,omitempty"`
	DebtReductionRate     *decimal.Decimal `yaml:"debt_reduction_rate,omitempty" json:"debtReductionRate,omitempty"` // %
}

// PlanProjection is the projected cost of carrying one payment plan to
// completion.
type PlanProjection struct {
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
	TotalInterest  decimal.Decimal `json:"totalInterest"`
	TotalPayment   decimal.Decimal `json:"totalPayment"`
	PeriodMonths   int             `json:"periodMonths"`
}

// SimulationSavings is the delta between the original and adjusted plans.
type SimulationSavings struct {
	Monthly      decimal.Decimal `json:"monthly"`
	Total        decimal.Decimal `json:"total"`
	Interest     decimal.Decimal `json:"interest"`
	DebtForgiven decimal.Decimal `json:"debtForgiven"`
}

// SimulationResult pairs the before and after projections with their
// savings delta.
type SimulationResult struct {
	OriginalPlan   PlanProjection    `json:"originalPlan"`
	AdjustedPlan   PlanProjection    `json:"adjustedPlan"`
	Savings        SimulationSavings `json:"savings"`
	BreakEvenMonth int               `json:"breakEvenMonth"`
}

// AmortizationEntry is one month of an amortization schedule.
type AmortizationEntry struct {
	Month     int             `json:"month"`
	Payment   decimal.Decimal `json:"payment"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Balance   decimal.Decimal `json:"balance"`
}
