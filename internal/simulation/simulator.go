// Package simulation projects amortization for a debt before and after a
// restructuring plan's adjusted terms, and scores candidate plans against
// each other. Like the rest of the engine it is pure computation: no I/O,
// no shared state, no clocks.
package simulation

import (
	"github.com/shopspring/decimal"

	"github.com/dohyun-im/saegil/internal/domain"
)

const (
	// MaxProjectionMonths caps the month-by-month projection loop.
	MaxProjectionMonths = 360

	// DefaultAdjustedPeriodMonths applies when a simulation request leaves
	// the adjusted period unspecified.
	DefaultAdjustedPeriodMonths = 60

	// breakEvenMonth is a fixed placeholder. No application or transaction
	// fee is modeled yet, so there is nothing to derive it from; it becomes
	// a real computation if a fee model is ever added.
	breakEvenMonth = 2
)

// DefaultAdjustedRate is the annual rate assumed when a request leaves the
// adjusted rate unspecified. An explicit zero instead selects the
// straight-line payment path.
var DefaultAdjustedRate = decimal.NewFromFloat(5.0)

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// Simulate projects the original and adjusted plans and their savings
// delta. Every input is handled; there is no error path here.
func Simulate(input domain.SimulationInput) domain.SimulationResult {
	original := projectOriginal(input.CurrentDebt, input.CurrentMonthlyPayment, input.CurrentInterestRate)

	rate := DefaultAdjustedRate
	if input.AdjustedInterestRate != nil {
		rate = *input.AdjustedInterestRate
	}
	period := DefaultAdjustedPeriodMonths
	if input.AdjustedPeriodMonths != nil {
		period = *input.AdjustedPeriodMonths
	}
	reduction := decimal.Zero
	if input.DebtReductionRate != nil {
		reduction = *input.DebtReductionRate
	}

	adjustedDebt := input.CurrentDebt.Mul(one.Sub(reduction.Div(hundred)))
	adjusted := projectAdjusted(adjustedDebt, rate, period)

	return domain.SimulationResult{
		OriginalPlan: original,
		AdjustedPlan: adjusted,
		Savings: domain.SimulationSavings{
			Monthly:      original.MonthlyPayment.Sub(adjusted.MonthlyPayment),
			Total:        original.TotalPayment.Sub(adjusted.TotalPayment),
			Interest:     original.TotalInterest.Sub(adjusted.TotalInterest),
			DebtForgiven: input.CurrentDebt.Sub(adjustedDebt),
		},
		BreakEvenMonth: breakEvenMonth,
	}
}

// projectOriginal walks the current plan month by month. When the payment
// does not even cover the first month's interest the loop would never
// terminate, so the projection short-circuits to a 360-month horizon with
// the interest derived algebraically.
func projectOriginal(principal, payment, annualRate decimal.Decimal) domain.PlanProjection {
	monthlyRate := annualRate.Div(hundred).Div(twelve)

	balance := principal
	totalInterest := decimal.Zero
	months := 0

	for months < MaxProjectionMonths && balance.GreaterThan(decimal.Zero) {
		interest := balance.Mul(monthlyRate)
		principalPart := payment.Sub(interest)

		if principalPart.LessThanOrEqual(decimal.Zero) {
			// Perpetual debt: report the capped horizon instead of looping.
			total := payment.Mul(decimal.NewFromInt(MaxProjectionMonths))
			return domain.PlanProjection{
				MonthlyPayment: payment,
				TotalInterest:  total.Sub(principal),
				TotalPayment:   total,
				PeriodMonths:   MaxProjectionMonths,
			}
		}

		months++
		totalInterest = totalInterest.Add(interest)
		if principalPart.GreaterThanOrEqual(balance) {
			balance = decimal.Zero
		} else {
			balance = balance.Sub(principalPart)
		}
	}

	return domain.PlanProjection{
		MonthlyPayment: payment,
		TotalInterest:  totalInterest,
		TotalPayment:   principal.Add(totalInterest),
		PeriodMonths:   months,
	}
}

// projectAdjusted prices the adjusted plan with the closed-form annuity
// payment = L·c(1+c)^n / ((1+c)^n − 1), falling back to straight-line L/n
// when the rate is zero. Payments are rounded to whole won.
func projectAdjusted(principal decimal.Decimal, annualRate decimal.Decimal, periodMonths int) domain.PlanProjection {
	if periodMonths <= 0 {
		periodMonths = DefaultAdjustedPeriodMonths
	}
	n := decimal.NewFromInt(int64(periodMonths))
	monthlyRate := annualRate.Div(hundred).Div(twelve)

	var payment decimal.Decimal
	if monthlyRate.IsZero() {
		payment = principal.Div(n).Round(0)
	} else {
		compound := one.Add(monthlyRate).Pow(n)
		payment = principal.Mul(monthlyRate.Mul(compound)).
			Div(compound.Sub(one)).Round(0)
	}

	totalPayment := payment.Mul(n)
	return domain.PlanProjection{
		MonthlyPayment: payment,
		TotalInterest:  totalPayment.Sub(principal),
		TotalPayment:   totalPayment,
		PeriodMonths:   periodMonths,
	}
}
