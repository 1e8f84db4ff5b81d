package policy

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dohyun-im/saegil/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// MatchContext carries the borrower facts the matchers need beyond the
// analysis result itself.
type MatchContext struct {
	MonthlyIncome    decimal.Decimal
	HasRegularIncome bool
}

// Matcher evaluates the five program rule sets. Stateless; safe for
// concurrent use.
type Matcher struct {
	catalog Catalog
}

// NewMatcher returns a matcher with the built-in Korean catalog.
func NewMatcher() *Matcher {
	return &Matcher{catalog: DefaultCatalog()}
}

// NewMatcherWithCatalog returns a matcher using custom program copy.
func NewMatcherWithCatalog(catalog Catalog) *Matcher {
	return &Matcher{catalog: catalog}
}

// MatchAll runs every program matcher and returns the eligible plans
// sorted by (isRecommended desc, priority desc), stable for ties.
func (m *Matcher) MatchAll(analysis *domain.DebtAnalysisResult, ctx MatchContext) []domain.RestructuringPlan {
	matchers := []func(*domain.DebtAnalysisResult, MatchContext) *domain.RestructuringPlan{
		m.matchPreWorkout,
		m.matchFreshStartFund,
		m.matchIndividualRecovery,
		m.matchPersonalBankruptcy,
		m.matchCreditAdjustment,
	}

	plans := []domain.RestructuringPlan{}
	for _, match := range matchers {
		if plan := match(analysis, ctx); plan != nil {
			plans = append(plans, *plan)
		}
	}

	sort.SliceStable(plans, func(i, j int) bool {
		if plans[i].IsRecommended != plans[j].IsRecommended {
			return plans[i].IsRecommended
		}
		return plans[i].Priority > plans[j].Priority
	})

	return plans
}

// currentPayment reconstructs the monthly payment from income and DTI,
// exactly as the analysis computed the ratio.
func currentPayment(analysis *domain.DebtAnalysisResult, ctx MatchContext) decimal.Decimal {
	return ctx.MonthlyIncome.Mul(analysis.DTI).Div(hundred)
}

func (m *Matcher) matchPreWorkout(analysis *domain.DebtAnalysisResult, ctx MatchContext) *domain.RestructuringPlan {
	debt := analysis.TotalDebt
	if debt.LessThan(preWorkoutDebtMin) || debt.GreaterThan(preWorkoutDebtMax) {
		return nil
	}
	if !ctx.HasRegularIncome || ctx.MonthlyIncome.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	cur := currentPayment(analysis, ctx)
	adjusted := cur.Mul(preWorkoutHaircut).Round(0)
	savings := cur.Sub(adjusted).Mul(decimal.NewFromInt(preWorkoutPeriodMonths))
	recommended := analysis.DTI.GreaterThanOrEqual(preWorkoutRecDTIMin) &&
		analysis.DTI.LessThanOrEqual(preWorkoutRecDTIMax)

	return m.buildPlan(domain.PlanPreWorkout, planTerms{
		currentPayment:  cur,
		adjustedPayment: adjusted,
		adjustedRate:    haircutAdjustedRate,
		periodMonths:    preWorkoutPeriodMonths,
		totalSavings:    savings,
		reductionRate:   decimal.Zero,
		isRecommended:   recommended,
		priority:        preWorkoutPriority,
	})
}

func (m *Matcher) matchFreshStartFund(analysis *domain.DebtAnalysisResult, ctx MatchContext) *domain.RestructuringPlan {
	debt := analysis.TotalDebt
	if debt.LessThan(freshStartDebtMin) || debt.GreaterThan(freshStartDebtMax) {
		return nil
	}
	if ctx.MonthlyIncome.LessThanOrEqual(decimal.Zero) || ctx.MonthlyIncome.GreaterThan(freshStartIncomeMax) {
		return nil
	}

	cur := currentPayment(analysis, ctx)
	adjusted := debt.Mul(freshStartRepayRatio).
		Div(decimal.NewFromInt(freshStartPeriodMonths)).Round(0)
	forgiven := debt.Mul(freshStartReduction).Div(hundred)
	recommended := ctx.MonthlyIncome.LessThanOrEqual(freshStartRecIncome) &&
		analysis.DTI.GreaterThan(freshStartRecDTI)

	return m.buildPlan(domain.PlanFreshStartFund, planTerms{
		currentPayment:  cur,
		adjustedPayment: adjusted,
		adjustedRate:    reductionAdjustedRate,
		periodMonths:    freshStartPeriodMonths,
		totalSavings:    forgiven,
		reductionRate:   freshStartReduction,
		isRecommended:   recommended,
		priority:        freshStartPriority,
	})
}

func (m *Matcher) matchIndividualRecovery(analysis *domain.DebtAnalysisResult, ctx MatchContext) *domain.RestructuringPlan {
	debt := analysis.TotalDebt
	if debt.LessThan(recoveryDebtMin) || debt.GreaterThan(recoveryDebtMax) {
		return nil
	}
	if !ctx.HasRegularIncome {
		return nil
	}

	cur := currentPayment(analysis, ctx)
	adjusted := debt.Mul(recoveryRepayRatio).
		Div(decimal.NewFromInt(recoveryPeriodMonths)).Round(0)
	forgiven := debt.Mul(recoveryReduction).Div(hundred)
	recommended := debt.GreaterThanOrEqual(recoveryRecDebt) && ctx.HasRegularIncome

	return m.buildPlan(domain.PlanIndividualRecovery, planTerms{
		currentPayment:  cur,
		adjustedPayment: adjusted,
		adjustedRate:    reductionAdjustedRate,
		periodMonths:    recoveryPeriodMonths,
		totalSavings:    forgiven,
		reductionRate:   recoveryReduction,
		isRecommended:   recommended,
		priority:        recoveryPriority,
	})
}

func (m *Matcher) matchPersonalBankruptcy(analysis *domain.DebtAnalysisResult, ctx MatchContext) *domain.RestructuringPlan {
	debt := analysis.TotalDebt
	insolvent := analysis.DTI.GreaterThan(bankruptcyDTIMin) ||
		ctx.MonthlyIncome.LessThan(bankruptcyIncomeMax)
	if !insolvent || debt.LessThanOrEqual(bankruptcyDebtMin) {
		return nil
	}

	cur := currentPayment(analysis, ctx)
	recommended := ctx.MonthlyIncome.LessThan(bankruptcyIncomeMax) &&
		debt.GreaterThan(bankruptcyRecDebt)

	return m.buildPlan(domain.PlanPersonalBankruptcy, planTerms{
		currentPayment:  cur,
		adjustedPayment: decimal.Zero,
		adjustedRate:    reductionAdjustedRate,
		periodMonths:    bankruptcyPeriodMonths, // procedural, not a repayment term
		totalSavings:    debt,
		reductionRate:   hundred,
		isRecommended:   recommended,
		priority:        bankruptcyPriority,
	})
}

func (m *Matcher) matchCreditAdjustment(analysis *domain.DebtAnalysisResult, ctx MatchContext) *domain.RestructuringPlan {
	debt := analysis.TotalDebt
	if debt.LessThan(creditAdjustDebtMin) || debt.GreaterThan(creditAdjustDebtMax) {
		return nil
	}
	if analysis.DTI.LessThan(creditAdjustDTIMin) {
		return nil
	}

	cur := currentPayment(analysis, ctx)
	adjusted := cur.Mul(creditAdjustHaircut).Round(0)
	savings := cur.Sub(adjusted).Mul(decimal.NewFromInt(creditAdjustPeriodMonths))
	recommended := analysis.DTI.GreaterThanOrEqual(creditAdjustDTIMin) &&
		analysis.DTI.LessThanOrEqual(creditAdjustRecDTIMax)

	return m.buildPlan(domain.PlanCreditAdjustment, planTerms{
		currentPayment:  cur,
		adjustedPayment: adjusted,
		adjustedRate:    haircutAdjustedRate,
		periodMonths:    creditAdjustPeriodMonths,
		totalSavings:    savings,
		reductionRate:   decimal.Zero,
		isRecommended:   recommended,
		priority:        creditAdjustPriority,
	})
}

// planTerms is the numeric outcome of one matcher, before catalog copy is
// attached.
type planTerms struct {
	currentPayment  decimal.Decimal
	adjustedPayment decimal.Decimal
	adjustedRate    decimal.Decimal
	periodMonths    int
	totalSavings    decimal.Decimal
	reductionRate   decimal.Decimal
	isRecommended   bool
	priority        int
}

func (m *Matcher) buildPlan(planType domain.PlanType, terms planTerms) *domain.RestructuringPlan {
	text := m.catalog[planType]
	return &domain.RestructuringPlan{
		PlanType:              planType,
		Name:                  text.Name,
		Description:           text.Description,
		AdjustedPayment:       terms.adjustedPayment,
		AdjustedInterestRate:  terms.adjustedRate,
		AdjustedPeriodMonths:  terms.periodMonths,
		TotalSavings:          terms.totalSavings,
		DebtReductionRate:     terms.reductionRate,
		EligibilityConditions: text.EligibilityConditions,
		RequiredDocuments:     text.RequiredDocuments,
		Pros:                  text.Pros,
		Cons:                  text.Cons,
		IsRecommended:         terms.isRecommended,
		Priority:              terms.priority,
		ComparisonMetrics: domain.ComparisonMetrics{
			MonthlySavings: terms.currentPayment.Sub(terms.adjustedPayment),
			TotalSavings:   terms.totalSavings,
			PeriodMonths:   terms.periodMonths,
		},
	}
}
