package domain

import (
	"github.com/shopspring/decimal"
)

// PlanType identifies a government debt-relief program, or CUSTOM for a
// plan built outside the five named programs.
type PlanType string

const (
	PlanPreWorkout         PlanType = "PRE_WORKOUT"
	PlanFreshStartFund     PlanType = "FRESH_START_FUND"
	PlanIndividualRecovery PlanType = "INDIVIDUAL_RECOVERY"
	PlanPersonalBankruptcy PlanType = "PERSONAL_BANKRUPTCY"
	PlanCreditAdjustment   PlanType = "CREDIT_ADJUSTMENT"
	PlanCustom             PlanType = "CUSTOM"
)

// ComparisonMetrics carries the three numbers the plan comparison scores on.
type ComparisonMetrics struct {
	MonthlySavings decimal.Decimal `json:"monthlySavings"`
	TotalSavings   decimal.Decimal `json:"totalSavings"`
	PeriodMonths   int             `json:"periodMonths"`
}

// RestructuringPlan is one fully detailed, eligible program proposal.
// Numeric fields come from the matcher's program formulas; the text fields
// come from the program catalog.
type RestructuringPlan struct {
	PlanType              PlanType          `json:"planType"`
	Name                  string            `json:"name"`
	Description           string            `json:"description"`
	AdjustedPayment       decimal.Decimal   `json:"adjustedPayment"`
	AdjustedInterestRate  decimal.Decimal   `json:"adjustedInterestRate"` // annual %
	AdjustedPeriodMonths  int               `json:"adjustedPeriodMonths"`
	TotalSavings          decimal.Decimal   `json:"totalSavings"`
	DebtReductionRate     decimal.Decimal   `json:"debtReductionRate"` // %
	EligibilityConditions []string          `json:"eligibilityConditions"`
	RequiredDocuments     []string          `json:"requiredDocuments"`
	Pros                  []string          `json:"pros"`
	Cons                  []string          `json:"cons"`
	IsRecommended         bool              `json:"isRecommended"`
	Priority              int               `json:"priority"`
	ComparisonMetrics     ComparisonMetrics `json:"comparisonMetrics"`
}
