package simulation

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dohyun-im/saegil/internal/domain"
)

// CompareError is the engine's only raised failure; it comes out of
// ComparePlans when there is nothing to compare.
type CompareError struct {
	Operation string
	Message   string
}

func (e *CompareError) Error() string {
	return fmt.Sprintf("simulation %s: %s", e.Operation, e.Message)
}

// Score weights: monthly savings up to 40 points, total savings up to 30,
// shorter periods up to 30.
var (
	scoreMonthlyDenom = decimal.NewFromInt(500_000)
	scoreTotalDenom   = decimal.NewFromInt(50_000_000)
	scorePeriodDenom  = decimal.NewFromInt(120)
	scoreMonthlyCap   = decimal.NewFromInt(40)
	scoreTotalCap     = decimal.NewFromInt(30)
	scorePeriodCap    = decimal.NewFromInt(30)
)

// PlanCandidate is the comparable surface of one restructuring plan.
type PlanCandidate struct {
	PlanType       domain.PlanType `json:"planType"`
	Name           string          `json:"name"`
	MonthlySavings decimal.Decimal `json:"monthlySavings"`
	TotalSavings   decimal.Decimal `json:"totalSavings"`
	PeriodMonths   int             `json:"periodMonths"`
}

// ScoredPlan pairs a candidate with its comparison score.
type ScoredPlan struct {
	PlanCandidate
	Score decimal.Decimal `json:"score"`
}

// PlanComparison holds three independent best picks plus the full ranking.
type PlanComparison struct {
	BestMonthlySavings PlanCandidate `json:"bestMonthlySavings"`
	BestTotalSavings   PlanCandidate `json:"bestTotalSavings"`
	ShortestPeriod     PlanCandidate `json:"shortestPeriod"`
	Ranked             []ScoredPlan  `json:"ranked"`
}

// CandidatesFromPlans adapts matched restructuring plans into comparison
// candidates using their comparison metrics.
func CandidatesFromPlans(plans []domain.RestructuringPlan) []PlanCandidate {
	candidates := make([]PlanCandidate, 0, len(plans))
	for _, plan := range plans {
		candidates = append(candidates, PlanCandidate{
			PlanType:       plan.PlanType,
			Name:           plan.Name,
			MonthlySavings: plan.ComparisonMetrics.MonthlySavings,
			TotalSavings:   plan.ComparisonMetrics.TotalSavings,
			PeriodMonths:   plan.ComparisonMetrics.PeriodMonths,
		})
	}
	return candidates
}

// ComparePlans scores every candidate and returns the best picks and the
// score-descending ranking. An empty candidate list is rejected.
func ComparePlans(candidates []PlanCandidate) (*PlanComparison, error) {
	if len(candidates) == 0 {
		return nil, &CompareError{
			Operation: "compare_plans",
			Message:   "empty plan list",
		}
	}

	ranked := make([]ScoredPlan, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, ScoredPlan{PlanCandidate: c, Score: Score(c)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score.GreaterThan(ranked[j].Score)
	})

	best := PlanComparison{
		BestMonthlySavings: candidates[0],
		BestTotalSavings:   candidates[0],
		ShortestPeriod:     candidates[0],
		Ranked:             ranked,
	}
	for _, c := range candidates[1:] {
		if c.MonthlySavings.GreaterThan(best.BestMonthlySavings.MonthlySavings) {
			best.BestMonthlySavings = c
		}
		if c.TotalSavings.GreaterThan(best.BestTotalSavings.TotalSavings) {
			best.BestTotalSavings = c
		}
		if c.PeriodMonths < best.ShortestPeriod.PeriodMonths {
			best.ShortestPeriod = c
		}
	}

	return &best, nil
}

// Score computes the weighted comparison score for one candidate:
// min(monthly/500,000×40, 40) + min(total/50,000,000×30, 30) +
// max(30 − period/120×30, 0).
func Score(c PlanCandidate) decimal.Decimal {
	monthly := c.MonthlySavings.Div(scoreMonthlyDenom).Mul(scoreMonthlyCap)
	if monthly.GreaterThan(scoreMonthlyCap) {
		monthly = scoreMonthlyCap
	}

	total := c.TotalSavings.Div(scoreTotalDenom).Mul(scoreTotalCap)
	if total.GreaterThan(scoreTotalCap) {
		total = scoreTotalCap
	}

	period := scorePeriodCap.Sub(
		decimal.NewFromInt(int64(c.PeriodMonths)).Div(scorePeriodDenom).Mul(scorePeriodCap))
	if period.LessThan(decimal.Zero) {
		period = decimal.Zero
	}

	return monthly.Add(total).Add(period)
}
